package entity

import (
	"strings"
	"time"

	"github.com/storhub/bqsync/pkg/warehouse"
)

// CustomerTouch is a single marketing/contact touch event. Touches have no
// strict unique key of their own, so GaSession is guaranteed non-nil: when
// the warehouse value is absent a synthetic identifier is built from the
// touch's source and action.
type CustomerTouch struct {
	GaSession *string    `db:"ga_session"`
	Source    *string    `db:"source"`
	Gclid     *string    `db:"gclid"`
	Action    *string    `db:"action"`
	CreatedAt *time.Time `db:"created_at"`
	ContactID *string    `db:"contact_id"`
	LeaseID   *string    `db:"lease_id"`
	LeadID    *string    `db:"lead_id"`
	OrgID     *string    `db:"org_id"`
}

// MapCustomerTouch projects a raw warehouse row onto a CustomerTouch,
// synthesizing the session identifier for manual touches.
func MapCustomerTouch(row warehouse.Row) CustomerTouch {
	touch := CustomerTouch{
		GaSession: warehouse.ToString(row, "ga_session"),
		Source:    warehouse.ToString(row, "source"),
		Gclid:     warehouse.ToString(row, "gclid"),
		Action:    warehouse.ToString(row, "action"),
		CreatedAt: warehouse.ToDate(row, "created_at"),
		ContactID: warehouse.ToString(row, "contact_id"),
		LeaseID:   warehouse.ToString(row, "lease_id"),
		LeadID:    warehouse.ToString(row, "lead_id"),
		OrgID:     warehouse.ToString(row, "org_id"),
	}

	if touch.GaSession == nil {
		session := manualSession(touch.Source, touch.Action)
		touch.GaSession = &session
	}

	return touch
}

// manualSession builds the deduplication identifier for touches recorded
// outside the analytics pipeline.
func manualSession(source, action *string) string {
	var src, act string
	if source != nil {
		src = strings.ToLower(*source)
	}
	if action != nil {
		act = strings.ToLower(*action)
	}
	return "manual_" + src + "_" + act
}
