package entity

import (
	"time"

	"github.com/storhub/bqsync/pkg/warehouse"
)

// Contact is a customer contact record.
type Contact struct {
	ContactID   *string    `db:"contact_id"`
	OrgID       *string    `db:"org_id"`
	Name        *string    `db:"name"`
	Address     *string    `db:"address"`
	Address2    *string    `db:"address2"`
	CompanyName *string    `db:"company_name"`
	City        *string    `db:"city"`
	State       *string    `db:"state"`
	Country     *string    `db:"country"`
	Zip         *string    `db:"zip"`
	Email       *string    `db:"email"`
	Phone       *string    `db:"phone"`
	CreatedAt   time.Time  `db:"created_at"`
	DateOfBirth *time.Time `db:"date_of_birth"`
	LeadID      *string    `db:"lead_id"`
	LeadSource  *string    `db:"lead_source"`
}

// MapContact projects a raw warehouse row onto a Contact.
func MapContact(row warehouse.Row) Contact {
	return Contact{
		ContactID:   warehouse.ToString(row, "contact_id"),
		OrgID:       warehouse.ToString(row, "org_id"),
		Name:        warehouse.ToString(row, "name"),
		Address:     warehouse.ToString(row, "address"),
		Address2:    warehouse.ToString(row, "address2"),
		CompanyName: warehouse.ToString(row, "company_name"),
		City:        warehouse.ToString(row, "city"),
		State:       warehouse.ToString(row, "state"),
		Country:     warehouse.ToString(row, "country"),
		Zip:         warehouse.ToString(row, "zip"),
		Email:       warehouse.ToString(row, "email"),
		Phone:       warehouse.ToString(row, "phone"),
		CreatedAt:   dateOrNow(row, "created_at"),
		DateOfBirth: warehouse.ToDate(row, "date_of_birth"),
		LeadID:      warehouse.ToString(row, "lead_id"),
		LeadSource:  warehouse.ToString(row, "lead_source"),
	}
}
