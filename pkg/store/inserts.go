package store

import (
	"context"

	"github.com/storhub/bqsync/pkg/entity"
)

// The append-only loaders below all funnel through insertSkipDuplicates.
// Column lists are spelled out per entity so a schema drift fails at the
// database instead of silently shifting values between columns.
//
// created_at/updated_at are stamped at load time, except where the entity
// carries its own created_at from the warehouse (contacts, book entries,
// customer touches).

var paymentColumns = []string{
	"facility_id", "facility_name", "org_id", "contact_id", "contact_name",
	"payment_date", "payment_datetime", "payment_amount", "payment_type",
	"payment_status", "payment_method", "payment_card_brand",
	"payment_card_last_four", "payment_check_number", "payment_channel",
	"created_at", "updated_at",
}

// InsertPayments appends payment observations, skipping duplicates.
func (s *Store) InsertPayments(ctx context.Context, payments []entity.Payment) error {
	rows := make([][]any, len(payments))
	for i := range payments {
		p := &payments[i]
		ts := now()
		rows[i] = []any{
			p.FacilityID, p.FacilityName, p.OrgID, p.ContactID, p.ContactName,
			p.PaymentDate, p.PaymentDatetime, p.PaymentAmount, p.PaymentType,
			p.PaymentStatus, p.PaymentMethod, p.PaymentCardBrand,
			p.PaymentCardLastFour, p.PaymentCheckNumber, p.PaymentChannel,
			ts, ts,
		}
	}
	return s.insertSkipDuplicates(ctx, "payments", paymentColumns, rows)
}

var leaseColumns = []string{
	"facility_id", "facility_name", "org_id", "lease_id", "unit_name",
	"unit_id", "is_active", "lease_created_by", "lease_started", "lease_ended",
	"lease_rent_original", "lease_rent_current", "lease_rent_next",
	"lease_rent_next_chg_date", "lease_rent_last_chg_date",
	"lease_all_discounts", "is_lease_paid", "status_late_since_date",
	"status_paid_through_date", "status_paid_on_date", "is_needs_overlock",
	"is_in_auction", "is_autopay_enabled", "ins_premium", "ins_coverage_level",
	"access_code", "is_access_code_enabled", "contact_id",
	"contact_pinned_note", "is_military", "contact_name",
	"contact_company_name", "contact_email", "contact_phone",
	"contact_address_1", "contact_address_2", "contact_city", "contact_state",
	"contact_zip", "lease_lifetime_payments", "balance_ar", "balance_deposit",
	"balance_prepaid", "created_at", "updated_at",
}

// InsertLeases appends lease snapshots, skipping duplicates.
func (s *Store) InsertLeases(ctx context.Context, leases []entity.Lease) error {
	rows := make([][]any, len(leases))
	for i := range leases {
		l := &leases[i]
		ts := now()
		rows[i] = []any{
			l.FacilityID, l.FacilityName, l.OrgID, l.LeaseID, l.UnitName,
			l.UnitID, l.IsActive, l.LeaseCreatedBy, l.LeaseStarted, l.LeaseEnded,
			l.LeaseRentOriginal, l.LeaseRentCurrent, l.LeaseRentNext,
			l.LeaseRentNextChgDate, l.LeaseRentLastChgDate,
			l.LeaseAllDiscounts, l.IsLeasePaid, l.StatusLateSinceDate,
			l.StatusPaidThroughDate, l.StatusPaidOnDate, l.IsNeedsOverlock,
			l.IsInAuction, l.IsAutopayEnabled, l.InsPremium, l.InsCoverageLevel,
			l.AccessCode, l.IsAccessCodeEnabled, l.ContactID,
			l.ContactPinnedNote, l.IsMilitary, l.ContactName,
			l.ContactCompanyName, l.ContactEmail, l.ContactPhone,
			l.ContactAddress1, l.ContactAddress2, l.ContactCity, l.ContactState,
			l.ContactZip, l.LeaseLifetimePayments, l.BalanceAr, l.BalanceDeposit,
			l.BalancePrepaid, ts, ts,
		}
	}
	return s.insertSkipDuplicates(ctx, "leases", leaseColumns, rows)
}

var leadColumns = []string{
	"lead_id", "age_of_lead_minutes", "status", "contact_id", "contact_name",
	"facility_id", "facility_name", "pg_id", "pg_name", "pg_features",
	"created_by", "org_id", "converted_by", "converted_datetime",
	"time_to_convert", "time_to_unqualified", "converted_lease_id",
	"lead_source", "first_touch_source", "ga_source", "source",
	"first_touch_action", "ga_session", "ga_session_id",
	"created_at", "updated_at",
}

// InsertLeads appends lead observations, skipping duplicates.
func (s *Store) InsertLeads(ctx context.Context, leads []entity.Lead) error {
	rows := make([][]any, len(leads))
	for i := range leads {
		l := &leads[i]
		ts := now()
		rows[i] = []any{
			l.LeadID, l.AgeOfLeadMinutes, l.Status, l.ContactID, l.ContactName,
			l.FacilityID, l.FacilityName, l.PgID, l.PgName, l.PgFeatures,
			l.CreatedBy, l.OrgID, l.ConvertedBy, l.ConvertedDatetime,
			l.TimeToConvert, l.TimeToUnqualified, l.ConvertedLeaseID,
			l.LeadSource, l.FirstTouchSource, l.GaSource, l.Source,
			l.FirstTouchAction, l.GaSession, l.GaSessionID,
			ts, ts,
		}
	}
	return s.insertSkipDuplicates(ctx, "leads", leadColumns, rows)
}

var contactColumns = []string{
	"contact_id", "org_id", "name", "address", "address2", "company_name",
	"city", "state", "country", "zip", "email", "phone", "created_at",
	"date_of_birth", "lead_id", "lead_source", "updated_at",
}

// InsertContacts appends contact records, skipping duplicates. The
// created_at carried from the warehouse is preserved.
func (s *Store) InsertContacts(ctx context.Context, contacts []entity.Contact) error {
	rows := make([][]any, len(contacts))
	for i := range contacts {
		c := &contacts[i]
		rows[i] = []any{
			c.ContactID, c.OrgID, c.Name, c.Address, c.Address2, c.CompanyName,
			c.City, c.State, c.Country, c.Zip, c.Email, c.Phone, c.CreatedAt,
			c.DateOfBirth, c.LeadID, c.LeadSource, now(),
		}
	}
	return s.insertSkipDuplicates(ctx, "contacts", contactColumns, rows)
}

var managerColumns = []string{
	"manager_id", "manager_name", "manager_username", "manager_email",
	"manager_phone", "manager_permissions", "created_at", "updated_at",
}

// InsertManagers appends manager accounts, skipping duplicates.
func (s *Store) InsertManagers(ctx context.Context, managers []entity.Manager) error {
	rows := make([][]any, len(managers))
	for i := range managers {
		m := &managers[i]
		ts := now()
		rows[i] = []any{
			m.ManagerID, m.ManagerName, m.ManagerUsername, m.ManagerEmail,
			m.ManagerPhone, m.ManagerPermissions, ts, ts,
		}
	}
	return s.insertSkipDuplicates(ctx, "managers", managerColumns, rows)
}

var pricingGroupColumns = []string{
	"pg_id", "name", "price", "facility_id", "width", "height", "depth",
	"features", "created_at", "updated_at",
}

// InsertPricingGroups appends pricing groups, skipping duplicates.
func (s *Store) InsertPricingGroups(ctx context.Context, groups []entity.PricingGroup) error {
	rows := make([][]any, len(groups))
	for i := range groups {
		g := &groups[i]
		ts := now()
		rows[i] = []any{
			g.PgID, g.Name, g.Price, g.FacilityID, g.Width, g.Height, g.Depth,
			g.Features, ts, ts,
		}
	}
	return s.insertSkipDuplicates(ctx, "pricing_groups", pricingGroupColumns, rows)
}

var spacesHistoricalColumns = []string{
	"date", "org_id", "unit_id", "unit_name", "unit_description",
	"facility_name", "facility_id", "facility_address", "building_name",
	"is_occupied", "is_unrentable", "unrentable_reason",
	"unrentable_reason_note", "width", "height", "depth", "is_overlocked",
	"pricing_group_name", "street_rate", "pg_id", "lease_id", "occ_rate",
	"occ_start_dt", "occ_tenant_id", "occ_tenant_name", "is_autopay_enabled",
	"is_insurance_active", "contact_id", "created_at", "updated_at",
}

// InsertSpacesHistorical appends daily occupancy snapshots, skipping
// duplicates.
func (s *Store) InsertSpacesHistorical(ctx context.Context, snapshots []entity.SpacesHistorical) error {
	rows := make([][]any, len(snapshots))
	for i := range snapshots {
		sh := &snapshots[i]
		ts := now()
		rows[i] = []any{
			sh.Date, sh.OrgID, sh.UnitID, sh.UnitName, sh.UnitDescription,
			sh.FacilityName, sh.FacilityID, sh.FacilityAddress, sh.BuildingName,
			sh.IsOccupied, sh.IsUnrentable, sh.UnrentableReason,
			sh.UnrentableReasonNote, sh.Width, sh.Height, sh.Depth, sh.IsOverlocked,
			sh.PricingGroupName, sh.StreetRate, sh.PgID, sh.LeaseID, sh.OccRate,
			sh.OccStartDt, sh.OccTenantID, sh.OccTenantName, sh.IsAutopayEnabled,
			sh.IsInsuranceActive, sh.ContactID, ts, ts,
		}
	}
	return s.insertSkipDuplicates(ctx, "spaces_historical", spacesHistoricalColumns, rows)
}

var unitTurnoverColumns = []string{
	"move_type", "move_date", "facility_id", "facility_name", "unit_id",
	"unit_name", "unit_type", "unit_features", "unit_floor_num",
	"unit_building_name", "unit_width", "unit_depth", "unit_height",
	"lease_id", "lease_created_by", "lease_rent", "lease_start_date",
	"lease_end_date", "lease_created_by_transfer",
	"lease_terminated_by_transfer", "lease_days_rented",
	"lease_discounts_applied", "ins_premium", "ins_coverage_level",
	"contact_id", "contact_name", "contact_email", "contact_phone", "pg_id",
	"pg_name", "pg_standard_rate", "created_at", "updated_at",
}

// InsertUnitTurnovers appends move events, skipping duplicates.
func (s *Store) InsertUnitTurnovers(ctx context.Context, turnovers []entity.UnitTurnover) error {
	rows := make([][]any, len(turnovers))
	for i := range turnovers {
		t := &turnovers[i]
		ts := now()
		rows[i] = []any{
			t.MoveType, t.MoveDate, t.FacilityID, t.FacilityName, t.UnitID,
			t.UnitName, t.UnitType, t.UnitFeatures, t.UnitFloorNum,
			t.UnitBuildingName, t.UnitWidth, t.UnitDepth, t.UnitHeight,
			t.LeaseID, t.LeaseCreatedBy, t.LeaseRent, t.LeaseStartDate,
			t.LeaseEndDate, t.LeaseCreatedByTransfer,
			t.LeaseTerminatedByTransfer, t.LeaseDaysRented,
			t.LeaseDiscountsApplied, t.InsPremium, t.InsCoverageLevel,
			t.ContactID, t.ContactName, t.ContactEmail, t.ContactPhone, t.PgID,
			t.PgName, t.PgStandardRate, ts, ts,
		}
	}
	return s.insertSkipDuplicates(ctx, "unit_turnovers", unitTurnoverColumns, rows)
}

var bookEntryColumns = []string{
	"facility", "org_id", "entry_date_time", "txn_id", "type", "amount",
	"book", "lease_id", "unit", "unit_id", "contact_id", "contact_name",
	"accrual_start", "explanation_text", "entry_num", "applies_to",
	"ar_entry_category", "explanation", "tax_category", "tax_exempt",
	"amt_revenue", "amt_payment", "amt_asset", "amt_liability", "amt_transfer",
	"created_at", "updated_at",
}

// InsertBookEntries appends ledger lines, skipping duplicates. The
// created_at carried from the warehouse is preserved.
func (s *Store) InsertBookEntries(ctx context.Context, entries []entity.BookEntry) error {
	rows := make([][]any, len(entries))
	for i := range entries {
		e := &entries[i]
		rows[i] = []any{
			e.Facility, e.OrgID, e.EntryDateTime, e.TxnID, e.Type, e.Amount,
			e.Book, e.LeaseID, e.Unit, e.UnitID, e.ContactID, e.ContactName,
			e.AccrualStart, e.ExplanationText, e.EntryNum, e.AppliesTo,
			e.ArEntryCategory, e.Explanation, e.TaxCategory, e.TaxExempt,
			e.AmtRevenue, e.AmtPayment, e.AmtAsset, e.AmtLiability, e.AmtTransfer,
			e.CreatedAt, now(),
		}
	}
	return s.insertSkipDuplicates(ctx, "book_entries", bookEntryColumns, rows)
}

var customerTouchColumns = []string{
	"ga_session", "source", "gclid", "action", "created_at", "contact_id",
	"lease_id", "lead_id", "org_id", "updated_at",
}

// InsertCustomerTouches appends touch events, skipping duplicates. The
// created_at carried from the warehouse is preserved.
func (s *Store) InsertCustomerTouches(ctx context.Context, touches []entity.CustomerTouch) error {
	rows := make([][]any, len(touches))
	for i := range touches {
		t := &touches[i]
		rows[i] = []any{
			t.GaSession, t.Source, t.Gclid, t.Action, t.CreatedAt, t.ContactID,
			t.LeaseID, t.LeadID, t.OrgID, now(),
		}
	}
	return s.insertSkipDuplicates(ctx, "customer_touches", customerTouchColumns, rows)
}

var gaEventColumns = []string{
	"org_id", "ga_session_id", "event_date", "event_name", "event_timestamp",
	"hostname", "device_category", "geo_city", "geo_country", "geo_continent",
	"geo_region", "geo_metro", "traffic_source_name", "traffic_source_source",
	"traffic_source_medium", "ecommerce_transaction_id",
	"ecommerce_purchase_revenue", "created_at", "updated_at",
}

// InsertGAEvents appends analytics events, skipping duplicates.
func (s *Store) InsertGAEvents(ctx context.Context, events []entity.GAEvent) error {
	rows := make([][]any, len(events))
	for i := range events {
		e := &events[i]
		ts := now()
		rows[i] = []any{
			e.OrgID, e.GaSessionID, e.EventDate, e.EventName, e.EventTimestamp,
			e.Hostname, e.DeviceCategory, e.GeoCity, e.GeoCountry, e.GeoContinent,
			e.GeoRegion, e.GeoMetro, e.TrafficSourceName, e.TrafficSourceSource,
			e.TrafficSourceMedium, e.EcommerceTransactionID,
			e.EcommercePurchaseRevenue, ts, ts,
		}
	}
	return s.insertSkipDuplicates(ctx, "ga_events", gaEventColumns, rows)
}
