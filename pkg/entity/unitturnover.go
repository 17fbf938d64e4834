package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/storhub/bqsync/pkg/warehouse"
)

// UnitTurnover is a move-in or move-out event for a unit.
type UnitTurnover struct {
	MoveType                  *string          `db:"move_type"`
	MoveDate                  time.Time        `db:"move_date"`
	FacilityID                *string          `db:"facility_id"`
	FacilityName              *string          `db:"facility_name"`
	UnitID                    *string          `db:"unit_id"`
	UnitName                  *string          `db:"unit_name"`
	UnitType                  *string          `db:"unit_type"`
	UnitFeatures              *string          `db:"unit_features"`
	UnitFloorNum              *int64           `db:"unit_floor_num"`
	UnitBuildingName          *string          `db:"unit_building_name"`
	UnitWidth                 *decimal.Decimal `db:"unit_width"`
	UnitDepth                 *decimal.Decimal `db:"unit_depth"`
	UnitHeight                *decimal.Decimal `db:"unit_height"`
	LeaseID                   *string          `db:"lease_id"`
	LeaseCreatedBy            *string          `db:"lease_created_by"`
	LeaseRent                 *decimal.Decimal `db:"lease_rent"`
	LeaseStartDate            *time.Time       `db:"lease_start_date"`
	LeaseEndDate              *time.Time       `db:"lease_end_date"`
	LeaseCreatedByTransfer    *string          `db:"lease_created_by_transfer"`
	LeaseTerminatedByTransfer *string          `db:"lease_terminated_by_transfer"`
	LeaseDaysRented           *int64           `db:"lease_days_rented"`
	LeaseDiscountsApplied     *string          `db:"lease_discounts_applied"`
	InsPremium                *decimal.Decimal `db:"ins_premium"`
	InsCoverageLevel          *decimal.Decimal `db:"ins_coverage_level"`
	ContactID                 *string          `db:"contact_id"`
	ContactName               *string          `db:"contact_name"`
	ContactEmail              *string          `db:"contact_email"`
	ContactPhone              *string          `db:"contact_phone"`
	PgID                      *string          `db:"pg_id"`
	PgName                    *string          `db:"pg_name"`
	PgStandardRate            *decimal.Decimal `db:"pg_standard_rate"`
}

// MapUnitTurnover projects a raw warehouse row onto a UnitTurnover.
func MapUnitTurnover(row warehouse.Row) UnitTurnover {
	return UnitTurnover{
		MoveType:                  warehouse.ToString(row, "move_type"),
		MoveDate:                  dateOrNow(row, "move_date"),
		FacilityID:                warehouse.ToString(row, "facility_id"),
		FacilityName:              warehouse.ToString(row, "facility_name"),
		UnitID:                    warehouse.ToString(row, "unit_id"),
		UnitName:                  warehouse.ToString(row, "unit_name"),
		UnitType:                  warehouse.ToString(row, "unit_type"),
		UnitFeatures:              warehouse.ToString(row, "unit_features"),
		UnitFloorNum:              warehouse.ToInteger(row, "unit_floor_num"),
		UnitBuildingName:          warehouse.ToString(row, "unit_building_name"),
		UnitWidth:                 warehouse.ToDecimal(row, "unit_width"),
		UnitDepth:                 warehouse.ToDecimal(row, "unit_depth"),
		UnitHeight:                warehouse.ToDecimal(row, "unit_height"),
		LeaseID:                   warehouse.ToString(row, "lease_id"),
		LeaseCreatedBy:            warehouse.ToString(row, "lease_created_by"),
		LeaseRent:                 warehouse.ToDecimal(row, "lease_rent"),
		LeaseStartDate:            warehouse.ToDate(row, "lease_start_date"),
		LeaseEndDate:              warehouse.ToDate(row, "lease_end_date"),
		LeaseCreatedByTransfer:    warehouse.ToBoolString(row, "lease_created_by_transfer"),
		LeaseTerminatedByTransfer: warehouse.ToBoolString(row, "lease_terminated_by_transfer"),
		LeaseDaysRented:           warehouse.ToInteger(row, "lease_days_rented"),
		LeaseDiscountsApplied:     warehouse.ToString(row, "lease_discounts_applied"),
		InsPremium:                warehouse.ToDecimal(row, "ins_premium"),
		InsCoverageLevel:          warehouse.ToDecimal(row, "ins_coverage_level"),
		ContactID:                 warehouse.ToString(row, "contact_id"),
		ContactName:               warehouse.ToString(row, "contact_name"),
		ContactEmail:              warehouse.ToString(row, "contact_email"),
		ContactPhone:              warehouse.ToString(row, "contact_phone"),
		PgID:                      warehouse.ToString(row, "pg_id"),
		PgName:                    warehouse.ToString(row, "pg_name"),
		PgStandardRate:            warehouse.ToDecimal(row, "pg_standard_rate"),
	}
}
