package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/storhub/bqsync/pkg/warehouse"
)

// SpacesHistorical is a daily snapshot of a unit's occupancy state.
type SpacesHistorical struct {
	Date                 time.Time        `db:"date"`
	OrgID                *string          `db:"org_id"`
	UnitID               *string          `db:"unit_id"`
	UnitName             *string          `db:"unit_name"`
	UnitDescription      *string          `db:"unit_description"`
	FacilityName         *string          `db:"facility_name"`
	FacilityID           *string          `db:"facility_id"`
	FacilityAddress      *string          `db:"facility_address"`
	BuildingName         *string          `db:"building_name"`
	IsOccupied           *int64           `db:"is_occupied"`
	IsUnrentable         *string          `db:"is_unrentable"`
	UnrentableReason     *string          `db:"unrentable_reason"`
	UnrentableReasonNote *string          `db:"unrentable_reason_note"`
	Width                *decimal.Decimal `db:"width"`
	Height               *decimal.Decimal `db:"height"`
	Depth                *decimal.Decimal `db:"depth"`
	IsOverlocked         *string          `db:"is_overlocked"`
	PricingGroupName     *string          `db:"pricing_group_name"`
	StreetRate           *decimal.Decimal `db:"street_rate"`
	PgID                 *string          `db:"pg_id"`
	LeaseID              *string          `db:"lease_id"`
	OccRate              *decimal.Decimal `db:"occ_rate"`
	OccStartDt           *time.Time       `db:"occ_start_dt"`
	OccTenantID          *string          `db:"occ_tenant_id"`
	OccTenantName        *string          `db:"occ_tenant_name"`
	IsAutopayEnabled     *string          `db:"is_autopay_enabled"`
	IsInsuranceActive    *string          `db:"is_insurance_active"`
	ContactID            *string          `db:"contact_id"`
}

// MapSpacesHistorical projects a raw warehouse row onto a SpacesHistorical
// snapshot. A row without a usable date keeps the current wall clock so the
// snapshot still lands somewhere queryable.
func MapSpacesHistorical(row warehouse.Row) SpacesHistorical {
	return SpacesHistorical{
		Date:                 dateOrNow(row, "date"),
		OrgID:                warehouse.ToString(row, "org_id"),
		UnitID:               warehouse.ToString(row, "unit_id"),
		UnitName:             warehouse.ToString(row, "unit_name"),
		UnitDescription:      warehouse.ToString(row, "unit_description"),
		FacilityName:         warehouse.ToString(row, "facility_name"),
		FacilityID:           warehouse.ToString(row, "facility_id"),
		FacilityAddress:      warehouse.ToString(row, "facility_address"),
		BuildingName:         warehouse.ToString(row, "building_name"),
		IsOccupied:           warehouse.ToInteger(row, "is_occupied"),
		IsUnrentable:         warehouse.ToBoolString(row, "is_unrentable"),
		UnrentableReason:     warehouse.ToString(row, "unrentable_reason"),
		UnrentableReasonNote: warehouse.ToString(row, "unrentable_reason_note"),
		Width:                warehouse.ToDecimal(row, "width"),
		Height:               warehouse.ToDecimal(row, "height"),
		Depth:                warehouse.ToDecimal(row, "depth"),
		IsOverlocked:         warehouse.ToBoolString(row, "is_overlocked"),
		PricingGroupName:     warehouse.ToString(row, "pricing_group_name"),
		StreetRate:           warehouse.ToDecimal(row, "street_rate"),
		PgID:                 warehouse.ToString(row, "pg_id"),
		LeaseID:              warehouse.ToString(row, "lease_id"),
		OccRate:              warehouse.ToDecimal(row, "occ_rate"),
		OccStartDt:           warehouse.ToDate(row, "occ_start_dt"),
		OccTenantID:          warehouse.ToString(row, "occ_tenant_id"),
		OccTenantName:        warehouse.ToString(row, "occ_tenant_name"),
		IsAutopayEnabled:     warehouse.ToBoolString(row, "is_autopay_enabled"),
		IsInsuranceActive:    warehouse.ToBoolString(row, "is_insurance_active"),
		ContactID:            warehouse.ToString(row, "contact_id"),
	}
}
