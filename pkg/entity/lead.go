package entity

import (
	"time"

	"github.com/storhub/bqsync/pkg/warehouse"
)

// Lead is a sales lead observation.
type Lead struct {
	LeadID            *string    `db:"lead_id"`
	AgeOfLeadMinutes  *int64     `db:"age_of_lead_minutes"`
	Status            *string    `db:"status"`
	ContactID         *string    `db:"contact_id"`
	ContactName       *string    `db:"contact_name"`
	FacilityID        *string    `db:"facility_id"`
	FacilityName      *string    `db:"facility_name"`
	PgID              *string    `db:"pg_id"`
	PgName            *string    `db:"pg_name"`
	PgFeatures        *string    `db:"pg_features"`
	CreatedBy         *string    `db:"created_by"`
	OrgID             *string    `db:"org_id"`
	ConvertedBy       *string    `db:"converted_by"`
	ConvertedDatetime *time.Time `db:"converted_datetime"`
	TimeToConvert     *int64     `db:"time_to_convert"`
	TimeToUnqualified *int64     `db:"time_to_unqualified"`
	ConvertedLeaseID  *string    `db:"converted_lease_id"`
	LeadSource        *string    `db:"lead_source"`
	FirstTouchSource  *string    `db:"first_touch_source"`
	GaSource          *string    `db:"ga_source"`
	Source            *string    `db:"source"`
	FirstTouchAction  *string    `db:"first_touch_action"`
	GaSession         *string    `db:"ga_session"`
	GaSessionID       *string    `db:"ga_session_id"`
}

// MapLead projects a raw warehouse row onto a Lead.
func MapLead(row warehouse.Row) Lead {
	return Lead{
		LeadID:            warehouse.ToString(row, "lead_id"),
		AgeOfLeadMinutes:  warehouse.ToInteger(row, "age_of_lead_minutes"),
		Status:            warehouse.ToString(row, "status"),
		ContactID:         warehouse.ToString(row, "contact_id"),
		ContactName:       warehouse.ToString(row, "contact_name"),
		FacilityID:        warehouse.ToString(row, "facility_id"),
		FacilityName:      warehouse.ToString(row, "facility_name"),
		PgID:              warehouse.ToString(row, "pg_id"),
		PgName:            warehouse.ToString(row, "pg_name"),
		PgFeatures:        warehouse.ToString(row, "pg_features"),
		CreatedBy:         warehouse.ToString(row, "created_by"),
		OrgID:             warehouse.ToString(row, "org_id"),
		ConvertedBy:       warehouse.ToString(row, "converted_by"),
		ConvertedDatetime: warehouse.ToDate(row, "converted_datetime"),
		TimeToConvert:     warehouse.ToInteger(row, "time_to_convert"),
		TimeToUnqualified: warehouse.ToInteger(row, "time_to_unqualified"),
		ConvertedLeaseID:  warehouse.ToString(row, "converted_lease_id"),
		LeadSource:        warehouse.ToString(row, "lead_source"),
		FirstTouchSource:  warehouse.ToString(row, "first_touch_source"),
		GaSource:          warehouse.ToString(row, "ga_source"),
		Source:            warehouse.ToString(row, "source"),
		FirstTouchAction:  warehouse.ToString(row, "first_touch_action"),
		GaSession:         warehouse.ToString(row, "ga_session"),
		GaSessionID:       warehouse.ToString(row, "ga_session_id"),
	}
}
