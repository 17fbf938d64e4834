package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storhub/bqsync/pkg/warehouse"
)

func TestMapUnit(t *testing.T) {
	row := warehouse.Row{
		"facility_id":  "F1",
		"unit_id":      "U1",
		"unit_name":    "A-101",
		"rate_managed": map[string]any{"value": "12.345"},
		"is_leased":    "0",
		"unit_width":   10.0,
	}

	unit := MapUnit(row)

	require.NotNil(t, unit.FacilityID)
	assert.Equal(t, "F1", *unit.FacilityID)
	require.NotNil(t, unit.UnitID)
	assert.Equal(t, "U1", *unit.UnitID)

	require.NotNil(t, unit.RateManaged)
	assert.Equal(t, "12.35", unit.RateManaged.StringFixed(2))

	require.NotNil(t, unit.IsLeased)
	assert.Equal(t, int64(0), *unit.IsLeased)

	require.NotNil(t, unit.UnitWidth)
	assert.Equal(t, "10.00", unit.UnitWidth.StringFixed(2))

	// Absent columns stay null rather than zero.
	assert.Nil(t, unit.PgID)
	assert.Nil(t, unit.UnitFloorNum)
	assert.Nil(t, unit.UnitHeight)
}

func TestMapCustomerTouchSynthesizesSession(t *testing.T) {
	touch := MapCustomerTouch(warehouse.Row{
		"source": "Web",
		"action": "Click",
	})

	require.NotNil(t, touch.GaSession)
	assert.Equal(t, "manual_web_click", *touch.GaSession)
}

func TestMapCustomerTouchKeepsWarehouseSession(t *testing.T) {
	touch := MapCustomerTouch(warehouse.Row{
		"ga_session": "GA123",
		"source":     "Web",
		"action":     "Click",
	})

	require.NotNil(t, touch.GaSession)
	assert.Equal(t, "GA123", *touch.GaSession)
}

func TestMapCustomerTouchSynthesizesWithMissingSegments(t *testing.T) {
	touch := MapCustomerTouch(warehouse.Row{"action": "Call"})

	require.NotNil(t, touch.GaSession)
	assert.Equal(t, "manual__call", *touch.GaSession)
}

func TestMapBookEntryFallsBackToWallClock(t *testing.T) {
	before := time.Now().UTC()
	entry := MapBookEntry(warehouse.Row{
		"txn_id": "T1",
		"amount": "100.00",
	})
	after := time.Now().UTC()

	assert.False(t, entry.EntryDateTime.Before(before))
	assert.False(t, entry.EntryDateTime.After(after))
	assert.False(t, entry.CreatedAt.Before(before))
	assert.False(t, entry.CreatedAt.After(after))

	require.NotNil(t, entry.Amount)
	assert.Equal(t, "100.00", entry.Amount.StringFixed(2))
}

func TestMapBookEntryKeepsWarehouseTimestamps(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	entry := MapBookEntry(warehouse.Row{
		"entry_date_time": ts,
		"created_at":      ts,
	})

	assert.True(t, entry.EntryDateTime.Equal(ts))
	assert.True(t, entry.CreatedAt.Equal(ts))
}

func TestMapUnitTurnoverCoercesTransferFlag(t *testing.T) {
	turnover := MapUnitTurnover(warehouse.Row{
		"lease_terminated_by_transfer": true,
		"lease_created_by_transfer":    "manual",
	})

	require.NotNil(t, turnover.LeaseTerminatedByTransfer)
	assert.Equal(t, "true", *turnover.LeaseTerminatedByTransfer)
	require.NotNil(t, turnover.LeaseCreatedByTransfer)
	assert.Equal(t, "manual", *turnover.LeaseCreatedByTransfer)
}

func TestMapUnitTurnoverMoveDateFallback(t *testing.T) {
	turnover := MapUnitTurnover(warehouse.Row{"unit_id": "U1"})
	assert.WithinDuration(t, time.Now().UTC(), turnover.MoveDate, time.Minute)
}

func TestMapGAEventHostnameSourceColumn(t *testing.T) {
	event := MapGAEvent(warehouse.Row{
		"host_name":  "example.com",
		"event_date": "2024-03-15",
	})

	require.NotNil(t, event.Hostname)
	assert.Equal(t, "example.com", *event.Hostname)
	assert.Equal(t, 2024, event.EventDate.Year())
}

func TestMapContactCreatedAtFallback(t *testing.T) {
	contact := MapContact(warehouse.Row{"contact_id": "C1"})
	assert.WithinDuration(t, time.Now().UTC(), contact.CreatedAt, time.Minute)
}

func TestMapLeaseBooleanFlags(t *testing.T) {
	lease := MapLease(warehouse.Row{
		"lease_id":      "L1",
		"is_active":     true,
		"is_military":   "false",
		"is_in_auction": nil,
	})

	require.NotNil(t, lease.IsActive)
	assert.Equal(t, "true", *lease.IsActive)
	require.NotNil(t, lease.IsMilitary)
	assert.Equal(t, "false", *lease.IsMilitary)
	assert.Nil(t, lease.IsInAuction)
}
