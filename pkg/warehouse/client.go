// Package warehouse provides read access to the analytics warehouse.
// It wraps the BigQuery client behind a small query-execution capability
// and supplies the field normalizers that convert raw warehouse scalar
// representations into canonical typed values.
package warehouse

import (
	"context"
	"time"

	"cloud.google.com/go/bigquery"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/storhub/bqsync/pkg/config"
	"github.com/storhub/bqsync/pkg/logger"
	"github.com/storhub/bqsync/pkg/syncerrors"
)

// Row is a single loosely-typed warehouse row. Scalar columns may be plain
// values or boxed wrappers exposing the value under a nested "value" key.
type Row = map[string]any

// Param is a named query parameter.
type Param struct {
	Name  string
	Value any
}

// Runner is the query-execution capability consumed by the orchestrator.
type Runner interface {
	Query(ctx context.Context, operation, query string, params ...Param) ([]Row, error)
}

// Client executes queries against the BigQuery warehouse.
type Client struct {
	bq       *bigquery.Client
	dataset  string
	location string
}

// NewClient creates a warehouse client from explicit configuration.
// A missing project id or credentials path is a hard failure.
func NewClient(ctx context.Context, cfg config.WarehouseConfig) (*Client, error) {
	if cfg.ProjectID == "" || cfg.CredentialsFile == "" {
		return nil, syncerrors.New(syncerrors.ErrorTypeConfig,
			"warehouse project id and credentials file must both be set")
	}

	bq, err := bigquery.NewClient(ctx, cfg.ProjectID, option.WithCredentialsFile(cfg.CredentialsFile))
	if err != nil {
		return nil, syncerrors.Wrap(err, syncerrors.ErrorTypeConnection, "failed to create warehouse client")
	}

	logger.Info("warehouse client initialized",
		zap.String("project", cfg.ProjectID),
		zap.String("dataset", cfg.Dataset))

	return &Client{
		bq:       bq,
		dataset:  cfg.Dataset,
		location: cfg.Location,
	}, nil
}

// Dataset returns the logical namespace the entity source views live under.
func (c *Client) Dataset() string {
	return c.dataset
}

// Query executes a single read against the warehouse and returns the raw
// row set. Timing debug logs bracket every query; failures are wrapped with
// the operation name and the query text and re-raised to the caller.
func (c *Client) Query(ctx context.Context, operation, query string, params ...Param) ([]Row, error) {
	start := time.Now()
	logger.Debug("executing warehouse query", zap.String("operation", operation))

	q := c.bq.Query(query)
	q.Location = c.location
	q.Parameters = queryParameters(params)

	it, err := q.Read(ctx)
	if err != nil {
		return nil, c.queryFailed(operation, query, start, err)
	}

	var rows []Row
	for {
		var values map[string]bigquery.Value
		err := it.Next(&values)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, c.queryFailed(operation, query, start, err)
		}

		row := make(Row, len(values))
		for name, value := range values {
			row[name] = value
		}
		rows = append(rows, row)
	}

	logger.Debug("warehouse query completed",
		zap.String("operation", operation),
		zap.Int("rows", len(rows)),
		zap.Duration("duration", time.Since(start)))

	return rows, nil
}

// Close releases the underlying client.
func (c *Client) Close() error {
	return c.bq.Close()
}

// queryParameters converts named parameters into the client library's form.
func queryParameters(params []Param) []bigquery.QueryParameter {
	if len(params) == 0 {
		return nil
	}
	out := make([]bigquery.QueryParameter, len(params))
	for i, p := range params {
		out[i] = bigquery.QueryParameter{Name: p.Name, Value: p.Value}
	}
	return out
}

func (c *Client) queryFailed(operation, query string, start time.Time, err error) error {
	logger.Error("warehouse query failed",
		zap.String("operation", operation),
		zap.String("query", query),
		zap.Duration("duration", time.Since(start)),
		zap.Error(err))

	return syncerrors.Wrap(err, syncerrors.ErrorTypeQuery, operation+" query failed").
		WithDetail("query", query)
}
