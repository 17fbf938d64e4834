package syncer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storhub/bqsync/pkg/config"
	"github.com/storhub/bqsync/pkg/entity"
	"github.com/storhub/bqsync/pkg/warehouse"
)

// fakeRunner serves canned rows per operation name and can fail selected
// operations.
type fakeRunner struct {
	rows    map[string][]warehouse.Row
	failOps map[string]error
	queries []string
}

func (f *fakeRunner) Query(_ context.Context, operation, query string, _ ...warehouse.Param) ([]warehouse.Row, error) {
	f.queries = append(f.queries, query)
	if err, ok := f.failOps[operation]; ok {
		return nil, err
	}
	return f.rows[operation], nil
}

// fakeStore records what was loaded and can fail selected loaders.
type fakeStore struct {
	loaded  map[string]int
	failing map[string]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{loaded: map[string]int{}, failing: map[string]error{}}
}

func (f *fakeStore) load(name string, n int) error {
	if err, ok := f.failing[name]; ok {
		return err
	}
	f.loaded[name] = n
	return nil
}

func (f *fakeStore) UpsertUnits(_ context.Context, units []entity.Unit) error {
	return f.load("units", len(units))
}

func (f *fakeStore) InsertPayments(_ context.Context, payments []entity.Payment) error {
	return f.load("payments", len(payments))
}

func (f *fakeStore) InsertLeases(_ context.Context, leases []entity.Lease) error {
	return f.load("leases", len(leases))
}

func (f *fakeStore) InsertLeads(_ context.Context, leads []entity.Lead) error {
	return f.load("leads", len(leads))
}

func (f *fakeStore) InsertContacts(_ context.Context, contacts []entity.Contact) error {
	return f.load("contacts", len(contacts))
}

func (f *fakeStore) InsertManagers(_ context.Context, managers []entity.Manager) error {
	return f.load("managers", len(managers))
}

func (f *fakeStore) InsertPricingGroups(_ context.Context, groups []entity.PricingGroup) error {
	return f.load("pricing_groups", len(groups))
}

func (f *fakeStore) InsertSpacesHistorical(_ context.Context, snapshots []entity.SpacesHistorical) error {
	return f.load("spaces_historical", len(snapshots))
}

func (f *fakeStore) InsertUnitTurnovers(_ context.Context, turnovers []entity.UnitTurnover) error {
	return f.load("unit_turnovers", len(turnovers))
}

func (f *fakeStore) InsertBookEntries(_ context.Context, entries []entity.BookEntry) error {
	return f.load("book_entries", len(entries))
}

func (f *fakeStore) InsertCustomerTouches(_ context.Context, touches []entity.CustomerTouch) error {
	return f.load("customer_touches", len(touches))
}

func (f *fakeStore) InsertGAEvents(_ context.Context, events []entity.GAEvent) error {
	return f.load("ga_events", len(events))
}

func TestSyncUnitsMapsAndLoads(t *testing.T) {
	runner := &fakeRunner{rows: map[string][]warehouse.Row{
		"getUnits": {
			{"unit_id": "U1", "rate_managed": map[string]any{"value": "12.345"}},
			{"unit_id": "U2"},
		},
	}}
	st := newFakeStore()
	svc := New(runner, "authorized_views", st)

	units, err := svc.SyncUnits(context.Background())
	require.NoError(t, err)
	require.Len(t, units, 2)
	assert.Equal(t, 2, st.loaded["units"])

	require.NotNil(t, units[0].RateManaged)
	assert.Equal(t, "12.35", units[0].RateManaged.StringFixed(2))

	require.Len(t, runner.queries, 1)
	assert.Equal(t, "SELECT * FROM `authorized_views.units`", runner.queries[0])
}

func TestSyncBookEntriesOrdersNewestFirst(t *testing.T) {
	runner := &fakeRunner{}
	svc := New(runner, "authorized_views", newFakeStore())

	_, err := svc.SyncBookEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, runner.queries, 1)
	assert.Equal(t,
		"SELECT * FROM `authorized_views.book_entries` ORDER BY entry_date_time DESC",
		runner.queries[0])
}

func TestSyncCustomerTouchesOrdersNewestFirst(t *testing.T) {
	runner := &fakeRunner{}
	svc := New(runner, "authorized_views", newFakeStore())

	_, err := svc.SyncCustomerTouches(context.Background())
	require.NoError(t, err)
	require.Len(t, runner.queries, 1)
	assert.Equal(t,
		"SELECT * FROM `authorized_views.customer_touches` ORDER BY created_at DESC",
		runner.queries[0])
}

func TestExtractionFailurePropagates(t *testing.T) {
	boom := errors.New("quota exceeded")
	runner := &fakeRunner{failOps: map[string]error{"getLeases": boom}}
	st := newFakeStore()
	svc := New(runner, "authorized_views", st)

	_, err := svc.SyncLeases(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Zero(t, st.loaded["leases"])
}

func TestUnitTurnoverLoadFailurePropagates(t *testing.T) {
	runner := &fakeRunner{rows: map[string][]warehouse.Row{
		"getUnitTurnover": {{"unit_id": "U1"}},
	}}
	st := newFakeStore()
	boom := errors.New("constraint violation")
	st.failing["unit_turnovers"] = boom
	svc := New(runner, "authorized_views", st)

	_, err := svc.SyncUnitTurnovers(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestEntityFailureIsIsolated(t *testing.T) {
	runner := &fakeRunner{
		rows: map[string][]warehouse.Row{
			"getPayments": {{"contact_id": "C1"}},
		},
		failOps: map[string]error{"getLeases": errors.New("view missing")},
	}
	st := newFakeStore()
	svc := New(runner, "authorized_views", st)

	_, err := svc.SyncLeases(context.Background())
	require.Error(t, err)

	// A failed lease sync has no bearing on the payments pass.
	payments, err := svc.SyncPayments(context.Background())
	require.NoError(t, err)
	assert.Len(t, payments, 1)
	assert.Equal(t, 1, st.loaded["payments"])
}

func TestJobsCoverEveryEntity(t *testing.T) {
	cfg := config.New()
	jobs := Jobs(nil, cfg.Sync.Schedules)
	require.Len(t, jobs, 12)

	seen := map[string]bool{}
	for _, job := range jobs {
		assert.NotEmpty(t, job.Name)
		assert.NotEmpty(t, job.Spec, "job %s has no cadence", job.Name)
		assert.NotNil(t, job.Run)
		assert.False(t, seen[job.Entity], "duplicate entity %s", job.Entity)
		seen[job.Entity] = true
	}

	for _, entityName := range []string{
		"units", "payments", "leases", "leads", "contacts", "managers",
		"pricing_groups", "spaces_historical", "unit_turnovers",
		"book_entries", "customer_touches", "ga_events",
	} {
		assert.True(t, seen[entityName], "missing job for %s", entityName)
	}
}
