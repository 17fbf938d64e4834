// Package store loads normalized entity records into the destination
// PostgreSQL database. All loaders are idempotent: append-only entities are
// inserted with duplicate rows skipped, and units are upserted in place.
package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/storhub/bqsync/pkg/config"
	"github.com/storhub/bqsync/pkg/logger"
	"github.com/storhub/bqsync/pkg/syncerrors"
)

// DB is the subset of pgxpool.Pool the store uses. pgxmock implements the
// same surface, which is what the store tests run against.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store writes entity records to the destination database.
type Store struct {
	db        DB
	pool      *pgxpool.Pool
	batchSize int
}

// psql builds queries with PostgreSQL $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// New connects to the destination database and verifies the connection.
func New(ctx context.Context, cfg config.DatabaseConfig, batchSize int) (*Store, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, syncerrors.Wrap(err, syncerrors.ErrorTypeConfig, "invalid database url")
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime.Std()
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime.Std()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, syncerrors.Wrap(err, syncerrors.ErrorTypeConnection, "failed to create connection pool")
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, syncerrors.Wrap(err, syncerrors.ErrorTypeConnection, "database ping failed")
	}

	logger.Get().Info("connected to destination database",
		zap.Int32("max_conns", poolCfg.MaxConns))

	return &Store{db: pool, pool: pool, batchSize: batchSize}, nil
}

// NewWithDB wraps an existing connection, typically a pgxmock pool in tests.
func NewWithDB(db DB, batchSize int) *Store {
	return &Store{db: db, batchSize: batchSize}
}

// Close releases the underlying connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// insertSkipDuplicates appends rows to table in batches, letting the table's
// unique constraints silently drop rows already present. An empty row set is
// a no-op.
func (s *Store) insertSkipDuplicates(ctx context.Context, table string, columns []string, rows [][]any) error {
	log := logger.WithContext(ctx).With(zap.String("table", table))

	if len(rows) == 0 {
		log.Debug("no rows to load")
		return nil
	}

	start := time.Now()
	for offset := 0; offset < len(rows); offset += s.batchSize {
		end := offset + s.batchSize
		if end > len(rows) {
			end = len(rows)
		}

		builder := psql.Insert(table).
			Columns(columns...).
			Suffix("ON CONFLICT DO NOTHING")
		for _, row := range rows[offset:end] {
			builder = builder.Values(row...)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return syncerrors.Wrap(err, syncerrors.ErrorTypeData,
				fmt.Sprintf("failed to build insert for %s", table))
		}

		if _, err := s.db.Exec(ctx, query, args...); err != nil {
			return syncerrors.Wrap(err, syncerrors.ErrorTypeQuery,
				fmt.Sprintf("insert into %s failed", table)).
				WithDetail("batch_rows", end-offset)
		}
	}

	log.Debug("rows loaded",
		zap.Int("count", len(rows)),
		zap.Duration("duration", time.Since(start)))
	return nil
}

// upsertAssignments renders the SET clause of an ON CONFLICT DO UPDATE,
// pointing every column at its EXCLUDED counterpart.
func upsertAssignments(columns []string) string {
	assignments := make([]string, len(columns))
	for i, col := range columns {
		assignments[i] = col + " = EXCLUDED." + col
	}
	return strings.Join(assignments, ", ")
}

// now returns the audit timestamp stamped onto loaded rows.
func now() time.Time {
	return time.Now().UTC()
}
