package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/storhub/bqsync/pkg/warehouse"
)

// Lease is a lease snapshot, including the contact details and balances
// denormalized onto it by the warehouse view.
type Lease struct {
	FacilityID            *string          `db:"facility_id"`
	FacilityName          *string          `db:"facility_name"`
	OrgID                 *string          `db:"org_id"`
	LeaseID               *string          `db:"lease_id"`
	UnitName              *string          `db:"unit_name"`
	UnitID                *string          `db:"unit_id"`
	IsActive              *string          `db:"is_active"`
	LeaseCreatedBy        *string          `db:"lease_created_by"`
	LeaseStarted          *time.Time       `db:"lease_started"`
	LeaseEnded            *time.Time       `db:"lease_ended"`
	LeaseRentOriginal     *decimal.Decimal `db:"lease_rent_original"`
	LeaseRentCurrent      *decimal.Decimal `db:"lease_rent_current"`
	LeaseRentNext         *decimal.Decimal `db:"lease_rent_next"`
	LeaseRentNextChgDate  *time.Time       `db:"lease_rent_next_chg_date"`
	LeaseRentLastChgDate  *time.Time       `db:"lease_rent_last_chg_date"`
	LeaseAllDiscounts     *string          `db:"lease_all_discounts"`
	IsLeasePaid           *string          `db:"is_lease_paid"`
	StatusLateSinceDate   *time.Time       `db:"status_late_since_date"`
	StatusPaidThroughDate *time.Time       `db:"status_paid_through_date"`
	StatusPaidOnDate      *time.Time       `db:"status_paid_on_date"`
	IsNeedsOverlock       *string          `db:"is_needs_overlock"`
	IsInAuction           *string          `db:"is_in_auction"`
	IsAutopayEnabled      *string          `db:"is_autopay_enabled"`
	InsPremium            *decimal.Decimal `db:"ins_premium"`
	InsCoverageLevel      *decimal.Decimal `db:"ins_coverage_level"`
	AccessCode            *string          `db:"access_code"`
	IsAccessCodeEnabled   *string          `db:"is_access_code_enabled"`
	ContactID             *string          `db:"contact_id"`
	ContactPinnedNote     *string          `db:"contact_pinned_note"`
	IsMilitary            *string          `db:"is_military"`
	ContactName           *string          `db:"contact_name"`
	ContactCompanyName    *string          `db:"contact_company_name"`
	ContactEmail          *string          `db:"contact_email"`
	ContactPhone          *string          `db:"contact_phone"`
	ContactAddress1       *string          `db:"contact_address_1"`
	ContactAddress2       *string          `db:"contact_address_2"`
	ContactCity           *string          `db:"contact_city"`
	ContactState          *string          `db:"contact_state"`
	ContactZip            *string          `db:"contact_zip"`
	LeaseLifetimePayments *decimal.Decimal `db:"lease_lifetime_payments"`
	BalanceAr             *decimal.Decimal `db:"balance_ar"`
	BalanceDeposit        *decimal.Decimal `db:"balance_deposit"`
	BalancePrepaid        *decimal.Decimal `db:"balance_prepaid"`
}

// MapLease projects a raw warehouse row onto a Lease.
func MapLease(row warehouse.Row) Lease {
	return Lease{
		FacilityID:            warehouse.ToString(row, "facility_id"),
		FacilityName:          warehouse.ToString(row, "facility_name"),
		OrgID:                 warehouse.ToString(row, "org_id"),
		LeaseID:               warehouse.ToString(row, "lease_id"),
		UnitName:              warehouse.ToString(row, "unit_name"),
		UnitID:                warehouse.ToString(row, "unit_id"),
		IsActive:              warehouse.ToBoolString(row, "is_active"),
		LeaseCreatedBy:        warehouse.ToString(row, "lease_created_by"),
		LeaseStarted:          warehouse.ToDate(row, "lease_started"),
		LeaseEnded:            warehouse.ToDate(row, "lease_ended"),
		LeaseRentOriginal:     warehouse.ToDecimal(row, "lease_rent_original"),
		LeaseRentCurrent:      warehouse.ToDecimal(row, "lease_rent_current"),
		LeaseRentNext:         warehouse.ToDecimal(row, "lease_rent_next"),
		LeaseRentNextChgDate:  warehouse.ToDate(row, "lease_rent_next_chg_date"),
		LeaseRentLastChgDate:  warehouse.ToDate(row, "lease_rent_last_chg_date"),
		LeaseAllDiscounts:     warehouse.ToString(row, "lease_all_discounts"),
		IsLeasePaid:           warehouse.ToBoolString(row, "is_lease_paid"),
		StatusLateSinceDate:   warehouse.ToDate(row, "status_late_since_date"),
		StatusPaidThroughDate: warehouse.ToDate(row, "status_paid_through_date"),
		StatusPaidOnDate:      warehouse.ToDate(row, "status_paid_on_date"),
		IsNeedsOverlock:       warehouse.ToBoolString(row, "is_needs_overlock"),
		IsInAuction:           warehouse.ToBoolString(row, "is_in_auction"),
		IsAutopayEnabled:      warehouse.ToBoolString(row, "is_autopay_enabled"),
		InsPremium:            warehouse.ToDecimal(row, "ins_premium"),
		InsCoverageLevel:      warehouse.ToDecimal(row, "ins_coverage_level"),
		AccessCode:            warehouse.ToString(row, "access_code"),
		IsAccessCodeEnabled:   warehouse.ToBoolString(row, "is_access_code_enabled"),
		ContactID:             warehouse.ToString(row, "contact_id"),
		ContactPinnedNote:     warehouse.ToString(row, "contact_pinned_note"),
		IsMilitary:            warehouse.ToBoolString(row, "is_military"),
		ContactName:           warehouse.ToString(row, "contact_name"),
		ContactCompanyName:    warehouse.ToString(row, "contact_company_name"),
		ContactEmail:          warehouse.ToString(row, "contact_email"),
		ContactPhone:          warehouse.ToString(row, "contact_phone"),
		ContactAddress1:       warehouse.ToString(row, "contact_address_1"),
		ContactAddress2:       warehouse.ToString(row, "contact_address_2"),
		ContactCity:           warehouse.ToString(row, "contact_city"),
		ContactState:          warehouse.ToString(row, "contact_state"),
		ContactZip:            warehouse.ToString(row, "contact_zip"),
		LeaseLifetimePayments: warehouse.ToDecimal(row, "lease_lifetime_payments"),
		BalanceAr:             warehouse.ToDecimal(row, "balance_ar"),
		BalanceDeposit:        warehouse.ToDecimal(row, "balance_deposit"),
		BalancePrepaid:        warehouse.ToDecimal(row, "balance_prepaid"),
	}
}
