package entity

import (
	"github.com/shopspring/decimal"

	"github.com/storhub/bqsync/pkg/warehouse"
)

// PricingGroup groups units that share pricing and dimensions.
type PricingGroup struct {
	PgID       *string          `db:"pg_id"`
	Name       *string          `db:"name"`
	Price      *decimal.Decimal `db:"price"`
	FacilityID *string          `db:"facility_id"`
	Width      *decimal.Decimal `db:"width"`
	Height     *decimal.Decimal `db:"height"`
	Depth      *decimal.Decimal `db:"depth"`
	Features   *string          `db:"features"`
}

// MapPricingGroup projects a raw warehouse row onto a PricingGroup.
func MapPricingGroup(row warehouse.Row) PricingGroup {
	return PricingGroup{
		PgID:       warehouse.ToString(row, "pg_id"),
		Name:       warehouse.ToString(row, "name"),
		Price:      warehouse.ToDecimal(row, "price"),
		FacilityID: warehouse.ToString(row, "facility_id"),
		Width:      warehouse.ToDecimal(row, "width"),
		Height:     warehouse.ToDecimal(row, "height"),
		Depth:      warehouse.ToDecimal(row, "depth"),
		Features:   warehouse.ToString(row, "features"),
	}
}
