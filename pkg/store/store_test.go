package store

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storhub/bqsync/pkg/entity"
	"github.com/storhub/bqsync/pkg/syncerrors"
	"github.com/storhub/bqsync/pkg/testutil"
)

func newMockStore(t *testing.T, batchSize int) (*Store, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewWithDB(mock, batchSize), mock
}

// anyArgs builds a wildcard argument expectation sized to the bound
// parameter count of a statement.
func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func TestInsertEmptySliceIsNoOp(t *testing.T) {
	s, mock := newMockStore(t, 100)

	// No Exec expectation registered: any statement would fail the test.
	require.NoError(t, s.InsertPayments(context.Background(), nil))
	require.NoError(t, s.InsertLeases(context.Background(), []entity.Lease{}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertSkipsDuplicates(t *testing.T) {
	s, mock := newMockStore(t, 100)

	mock.ExpectExec(`INSERT INTO payments .+ ON CONFLICT DO NOTHING`).
		WithArgs(anyArgs(2 * len(paymentColumns))...).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))

	payments := []entity.Payment{
		{ContactID: testutil.StringPtr("C1")},
		{ContactID: testutil.StringPtr("C2")},
	}
	require.NoError(t, s.InsertPayments(context.Background(), payments))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertChunksByBatchSize(t *testing.T) {
	s, mock := newMockStore(t, 2)

	// Three records with batch size two means two statements.
	mock.ExpectExec(`INSERT INTO managers`).
		WithArgs(anyArgs(2 * len(managerColumns))...).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))
	mock.ExpectExec(`INSERT INTO managers`).
		WithArgs(anyArgs(len(managerColumns))...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	managers := []entity.Manager{
		{ManagerID: testutil.StringPtr("M1")},
		{ManagerID: testutil.StringPtr("M2")},
		{ManagerID: testutil.StringPtr("M3")},
	}
	require.NoError(t, s.InsertManagers(context.Background(), managers))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertFailureIsWrapped(t *testing.T) {
	s, mock := newMockStore(t, 100)

	mock.ExpectExec(`INSERT INTO leases`).
		WithArgs(anyArgs(len(leaseColumns))...).
		WillReturnError(errors.New("connection reset"))

	err := s.InsertLeases(context.Background(), []entity.Lease{{LeaseID: testutil.StringPtr("L1")}})
	require.Error(t, err)
	assert.True(t, syncerrors.IsType(err, syncerrors.ErrorTypeQuery))
	assert.Contains(t, err.Error(), "leases")
}

func TestUpsertUnitsIsSequential(t *testing.T) {
	s, mock := newMockStore(t, 100)

	// One statement per unit regardless of batch size; 25 data columns
	// plus the two audit timestamps per statement.
	unitArgs := anyArgs(len(unitColumns) + 2)
	mock.ExpectExec(`INSERT INTO units .+ ON CONFLICT \(unit_id\) DO UPDATE SET`).
		WithArgs(unitArgs...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO units .+ ON CONFLICT \(unit_id\) DO UPDATE SET`).
		WithArgs(unitArgs...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	units := []entity.Unit{
		{UnitID: testutil.StringPtr("U1")},
		{UnitID: testutil.StringPtr("U2")},
	}
	require.NoError(t, s.UpsertUnits(context.Background(), units))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertUnitsStopsAtFirstFailure(t *testing.T) {
	s, mock := newMockStore(t, 100)

	unitArgs := anyArgs(len(unitColumns) + 2)
	mock.ExpectExec(`INSERT INTO units`).
		WithArgs(unitArgs...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO units`).
		WithArgs(unitArgs...).
		WillReturnError(errors.New("deadlock detected"))

	units := []entity.Unit{
		{UnitID: testutil.StringPtr("U1")},
		{UnitID: testutil.StringPtr("U2")},
		{UnitID: testutil.StringPtr("U3")},
	}
	err := s.UpsertUnits(context.Background(), units)
	require.Error(t, err)
	assert.True(t, syncerrors.IsType(err, syncerrors.ErrorTypeQuery))

	// The third unit was never attempted.
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertUnitsEmptyIsNoOp(t *testing.T) {
	s, mock := newMockStore(t, 100)

	require.NoError(t, s.UpsertUnits(context.Background(), nil))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitUpdateColumnsExcludeNaturalKey(t *testing.T) {
	cols := unitUpdateColumns()
	assert.NotContains(t, cols, "unit_id")
	assert.Contains(t, cols, "updated_at")
	assert.NotContains(t, cols, "created_at")
}

func TestFindUnitByIDNotFound(t *testing.T) {
	s, mock := newMockStore(t, 100)

	mock.ExpectQuery(`SELECT .+ FROM units WHERE unit_id =`).
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows(unitColumns))

	unit, err := s.FindUnitByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, unit)
}

func TestFindUnitByIDQueryFailure(t *testing.T) {
	s, mock := newMockStore(t, 100)

	mock.ExpectQuery(`SELECT .+ FROM units`).
		WithArgs("U1").
		WillReturnError(errors.New("relation does not exist"))

	unit, err := s.FindUnitByID(context.Background(), "U1")
	require.Error(t, err)
	assert.Nil(t, unit)
	assert.True(t, syncerrors.IsType(err, syncerrors.ErrorTypeQuery))
}
