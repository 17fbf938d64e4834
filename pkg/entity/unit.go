package entity

import (
	"github.com/shopspring/decimal"

	"github.com/storhub/bqsync/pkg/warehouse"
)

// Unit is the current state of a rentable storage unit. Units are the one
// entity whose destination rows are updated in place, keyed by UnitID, so
// rate and occupancy always reflect the latest observation.
type Unit struct {
	FacilityID                 *string          `db:"facility_id"`
	FacilityName               *string          `db:"facility_name"`
	UnitID                     *string          `db:"unit_id"`
	UnitName                   *string          `db:"unit_name"`
	UnitType                   *string          `db:"unit_type"`
	UnitFeatures               *string          `db:"unit_features"`
	PgID                       *string          `db:"pg_id"`
	PricingGroup               *string          `db:"pricing_group"`
	RateManaged                *decimal.Decimal `db:"rate_managed"`
	UnitFloorNum               *int64           `db:"unit_floor_num"`
	UnitBuildingName           *string          `db:"unit_building_name"`
	UnitWidth                  *decimal.Decimal `db:"unit_width"`
	UnitDepth                  *decimal.Decimal `db:"unit_depth"`
	UnitHeight                 *decimal.Decimal `db:"unit_height"`
	IsLeased                   *int64           `db:"is_leased"`
	IsInsurable                *int64           `db:"is_insurable"`
	IsRentable                 *int64           `db:"is_rentable"`
	IsOverlocked               *int64           `db:"is_overlocked"`
	UnitUnrentableReason       *string          `db:"unit_unrentable_reason"`
	UnitUnrentableNote         *string          `db:"unit_unrentable_note"`
	UnitKeypadZone             *int64           `db:"unit_keypad_zone"`
	UnitTimeZone               *int64           `db:"unit_time_zone"`
	WebRateOverride            *int64           `db:"web_rate_override"`
	StrikethroughPriceOverride *int64           `db:"strikethrough_price_override"`
	WalkInRateOverride         *int64           `db:"walk_in_rate_override"`
}

// MapUnit projects a raw warehouse row onto a Unit. A row without a
// unit_id is passed through as-is; the destination's constraints decide
// its fate.
func MapUnit(row warehouse.Row) Unit {
	return Unit{
		FacilityID:                 warehouse.ToString(row, "facility_id"),
		FacilityName:               warehouse.ToString(row, "facility_name"),
		UnitID:                     warehouse.ToString(row, "unit_id"),
		UnitName:                   warehouse.ToString(row, "unit_name"),
		UnitType:                   warehouse.ToString(row, "unit_type"),
		UnitFeatures:               warehouse.ToString(row, "unit_features"),
		PgID:                       warehouse.ToString(row, "pg_id"),
		PricingGroup:               warehouse.ToString(row, "pricing_group"),
		RateManaged:                warehouse.ToDecimal(row, "rate_managed"),
		UnitFloorNum:               warehouse.ToInteger(row, "unit_floor_num"),
		UnitBuildingName:           warehouse.ToString(row, "unit_building_name"),
		UnitWidth:                  warehouse.ToDecimal(row, "unit_width"),
		UnitDepth:                  warehouse.ToDecimal(row, "unit_depth"),
		UnitHeight:                 warehouse.ToDecimal(row, "unit_height"),
		IsLeased:                   warehouse.ToInteger(row, "is_leased"),
		IsInsurable:                warehouse.ToInteger(row, "is_insurable"),
		IsRentable:                 warehouse.ToInteger(row, "is_rentable"),
		IsOverlocked:               warehouse.ToInteger(row, "is_overlocked"),
		UnitUnrentableReason:       warehouse.ToString(row, "unit_unrentable_reason"),
		UnitUnrentableNote:         warehouse.ToString(row, "unit_unrentable_note"),
		UnitKeypadZone:             warehouse.ToInteger(row, "unit_keypad_zone"),
		UnitTimeZone:               warehouse.ToInteger(row, "unit_time_zone"),
		WebRateOverride:            warehouse.ToInteger(row, "web_rate_override"),
		StrikethroughPriceOverride: warehouse.ToInteger(row, "strikethrough_price_override"),
		WalkInRateOverride:         warehouse.ToInteger(row, "walk_in_rate_override"),
	}
}
