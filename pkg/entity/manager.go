package entity

import (
	"github.com/storhub/bqsync/pkg/warehouse"
)

// Manager is a facility manager account.
type Manager struct {
	ManagerID          *string `db:"manager_id"`
	ManagerName        *string `db:"manager_name"`
	ManagerUsername    *string `db:"manager_username"`
	ManagerEmail       *string `db:"manager_email"`
	ManagerPhone       *string `db:"manager_phone"`
	ManagerPermissions *string `db:"manager_permissions"`
}

// MapManager projects a raw warehouse row onto a Manager.
func MapManager(row warehouse.Row) Manager {
	return Manager{
		ManagerID:          warehouse.ToString(row, "manager_id"),
		ManagerName:        warehouse.ToString(row, "manager_name"),
		ManagerUsername:    warehouse.ToString(row, "manager_username"),
		ManagerEmail:       warehouse.ToString(row, "manager_email"),
		ManagerPhone:       warehouse.ToString(row, "manager_phone"),
		ManagerPermissions: warehouse.ToString(row, "manager_permissions"),
	}
}
