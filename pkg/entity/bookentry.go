package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/storhub/bqsync/pkg/warehouse"
)

// BookEntry is an accounting ledger line. EntryDateTime and CreatedAt are
// carried over from the warehouse and fall back to the current wall clock
// when the source omits them.
type BookEntry struct {
	Facility        *string          `db:"facility"`
	OrgID           *string          `db:"org_id"`
	EntryDateTime   time.Time        `db:"entry_date_time"`
	TxnID           *string          `db:"txn_id"`
	Type            *string          `db:"type"`
	Amount          *decimal.Decimal `db:"amount"`
	Book            *string          `db:"book"`
	LeaseID         *string          `db:"lease_id"`
	Unit            *string          `db:"unit"`
	UnitID          *string          `db:"unit_id"`
	ContactID       *string          `db:"contact_id"`
	ContactName     *string          `db:"contact_name"`
	AccrualStart    *time.Time       `db:"accrual_start"`
	ExplanationText *string          `db:"explanation_text"`
	EntryNum        *string          `db:"entry_num"`
	AppliesTo       *string          `db:"applies_to"`
	ArEntryCategory *string          `db:"ar_entry_category"`
	Explanation     *string          `db:"explanation"`
	TaxCategory     *string          `db:"tax_category"`
	TaxExempt       *string          `db:"tax_exempt"`
	AmtRevenue      *decimal.Decimal `db:"amt_revenue"`
	AmtPayment      *decimal.Decimal `db:"amt_payment"`
	AmtAsset        *decimal.Decimal `db:"amt_asset"`
	AmtLiability    *decimal.Decimal `db:"amt_liability"`
	AmtTransfer     *decimal.Decimal `db:"amt_transfer"`
	CreatedAt       time.Time        `db:"created_at"`
}

// MapBookEntry projects a raw warehouse row onto a BookEntry.
func MapBookEntry(row warehouse.Row) BookEntry {
	return BookEntry{
		Facility:        warehouse.ToString(row, "facility"),
		OrgID:           warehouse.ToString(row, "org_id"),
		EntryDateTime:   dateOrNow(row, "entry_date_time"),
		TxnID:           warehouse.ToString(row, "txn_id"),
		Type:            warehouse.ToString(row, "type"),
		Amount:          warehouse.ToDecimal(row, "amount"),
		Book:            warehouse.ToString(row, "book"),
		LeaseID:         warehouse.ToString(row, "lease_id"),
		Unit:            warehouse.ToString(row, "unit"),
		UnitID:          warehouse.ToString(row, "unit_id"),
		ContactID:       warehouse.ToString(row, "contact_id"),
		ContactName:     warehouse.ToString(row, "contact_name"),
		AccrualStart:    warehouse.ToDate(row, "accrual_start"),
		ExplanationText: warehouse.ToString(row, "explanation_text"),
		EntryNum:        warehouse.ToString(row, "entry_num"),
		AppliesTo:       warehouse.ToString(row, "applies_to"),
		ArEntryCategory: warehouse.ToString(row, "ar_entry_category"),
		Explanation:     warehouse.ToString(row, "explanation"),
		TaxCategory:     warehouse.ToString(row, "tax_category"),
		TaxExempt:       warehouse.ToString(row, "tax_exempt"),
		AmtRevenue:      warehouse.ToDecimal(row, "amt_revenue"),
		AmtPayment:      warehouse.ToDecimal(row, "amt_payment"),
		AmtAsset:        warehouse.ToDecimal(row, "amt_asset"),
		AmtLiability:    warehouse.ToDecimal(row, "amt_liability"),
		AmtTransfer:     warehouse.ToDecimal(row, "amt_transfer"),
		CreatedAt:       dateOrNow(row, "created_at"),
	}
}

// dateOrNow substitutes the current wall-clock time when the source date
// is absent or unparsable.
func dateOrNow(row warehouse.Row, field string) time.Time {
	if ts := warehouse.ToDate(row, field); ts != nil {
		return *ts
	}
	return time.Now().UTC()
}
