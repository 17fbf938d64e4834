package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/storhub/bqsync/pkg/warehouse"
)

// Payment is a point-in-time payment observation. Payments are append-only;
// re-observing the same payment is expected and skipped at load time.
type Payment struct {
	FacilityID          *string          `db:"facility_id"`
	FacilityName        *string          `db:"facility_name"`
	OrgID               *string          `db:"org_id"`
	ContactID           *string          `db:"contact_id"`
	ContactName         *string          `db:"contact_name"`
	PaymentDate         *time.Time       `db:"payment_date"`
	PaymentDatetime     *time.Time       `db:"payment_datetime"`
	PaymentAmount       *decimal.Decimal `db:"payment_amount"`
	PaymentType         *string          `db:"payment_type"`
	PaymentStatus       *string          `db:"payment_status"`
	PaymentMethod       *string          `db:"payment_method"`
	PaymentCardBrand    *string          `db:"payment_card_brand"`
	PaymentCardLastFour *string          `db:"payment_card_last_four"`
	PaymentCheckNumber  *string          `db:"payment_check_number"`
	PaymentChannel      *string          `db:"payment_channel"`
}

// MapPayment projects a raw warehouse row onto a Payment.
func MapPayment(row warehouse.Row) Payment {
	return Payment{
		FacilityID:          warehouse.ToString(row, "facility_id"),
		FacilityName:        warehouse.ToString(row, "facility_name"),
		OrgID:               warehouse.ToString(row, "org_id"),
		ContactID:           warehouse.ToString(row, "contact_id"),
		ContactName:         warehouse.ToString(row, "contact_name"),
		PaymentDate:         warehouse.ToDate(row, "payment_date"),
		PaymentDatetime:     warehouse.ToDate(row, "payment_datetime"),
		PaymentAmount:       warehouse.ToDecimal(row, "payment_amount"),
		PaymentType:         warehouse.ToString(row, "payment_type"),
		PaymentStatus:       warehouse.ToString(row, "payment_status"),
		PaymentMethod:       warehouse.ToString(row, "payment_method"),
		PaymentCardBrand:    warehouse.ToString(row, "payment_card_brand"),
		PaymentCardLastFour: warehouse.ToString(row, "payment_card_last_four"),
		PaymentCheckNumber:  warehouse.ToString(row, "payment_check_number"),
		PaymentChannel:      warehouse.ToString(row, "payment_channel"),
	}
}
