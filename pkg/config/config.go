// Package config provides the configuration surface for the sync engine.
// A single Config structure is constructed once at process start and passed
// by reference into the components that need it; there is no ambient global
// configuration state.
//
// The configuration is organized into logical sections:
//   - Warehouse: BigQuery project, credentials, dataset namespace
//   - Database: destination connection pool settings
//   - Sync: batch size and per-entity schedules
//   - Log: logging level and encoding
//   - Metrics: optional Prometheus listen address
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values like "30m" decode naturally.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Std returns the wrapped standard duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config is the top-level configuration for the sync engine.
type Config struct {
	Warehouse WarehouseConfig `yaml:"warehouse" json:"warehouse"`
	Database  DatabaseConfig  `yaml:"database" json:"database"`
	Sync      SyncConfig      `yaml:"sync" json:"sync"`
	Log       LogConfig       `yaml:"log" json:"log"`
	Metrics   MetricsConfig   `yaml:"metrics" json:"metrics"`
}

// WarehouseConfig identifies the BigQuery project the sync engine reads from.
// ProjectID and CredentialsFile are both required; all entity source views
// live under the single Dataset namespace.
type WarehouseConfig struct {
	// ProjectID is the GCP project owning the warehouse dataset
	ProjectID string `yaml:"project_id" json:"project_id"`
	// CredentialsFile is the path to the service account key file
	CredentialsFile string `yaml:"credentials_file" json:"credentials_file"`
	// Dataset is the logical namespace containing the entity source views
	Dataset string `yaml:"dataset" json:"dataset"`
	// Location is the BigQuery job location
	Location string `yaml:"location" json:"location"`
}

// DatabaseConfig holds destination connection pool settings.
type DatabaseConfig struct {
	// URL is the PostgreSQL connection string
	URL string `yaml:"url" json:"url"`
	// MaxConns caps the connection pool size
	MaxConns int32 `yaml:"max_conns" json:"max_conns"`
	// MinConns sets the number of idle connections kept warm
	MinConns int32 `yaml:"min_conns" json:"min_conns"`
	// MaxConnLifetime bounds how long a single connection is reused
	MaxConnLifetime Duration `yaml:"max_conn_lifetime" json:"max_conn_lifetime"`
	// MaxConnIdleTime closes connections idle longer than this
	MaxConnIdleTime Duration `yaml:"max_conn_idle_time" json:"max_conn_idle_time"`
}

// SyncConfig controls batching and per-entity cadences.
type SyncConfig struct {
	// BatchSize is the number of rows per destination insert statement
	BatchSize int `yaml:"batch_size" json:"batch_size"`
	// Schedules holds one cron expression per entity type
	Schedules ScheduleConfig `yaml:"schedules" json:"schedules"`
}

// ScheduleConfig holds the recurring cadence for each entity's sync job.
// Expressions use the standard five-field cron syntax.
type ScheduleConfig struct {
	Units            string `yaml:"units" json:"units"`
	Payments         string `yaml:"payments" json:"payments"`
	Leases           string `yaml:"leases" json:"leases"`
	Leads            string `yaml:"leads" json:"leads"`
	Contacts         string `yaml:"contacts" json:"contacts"`
	Managers         string `yaml:"managers" json:"managers"`
	PricingGroups    string `yaml:"pricing_groups" json:"pricing_groups"`
	SpacesHistorical string `yaml:"spaces_historical" json:"spaces_historical"`
	UnitTurnovers    string `yaml:"unit_turnovers" json:"unit_turnovers"`
	BookEntries      string `yaml:"book_entries" json:"book_entries"`
	CustomerTouches  string `yaml:"customer_touches" json:"customer_touches"`
	GAEvents         string `yaml:"ga_events" json:"ga_events"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	Level       string `yaml:"level" json:"level"`
	Encoding    string `yaml:"encoding" json:"encoding"`
	Development bool   `yaml:"development" json:"development"`
}

// MetricsConfig configures the optional Prometheus endpoint. An empty Addr
// disables the listener.
type MetricsConfig struct {
	Addr string `yaml:"addr" json:"addr"`
}

// New returns a Config populated with defaults. Warehouse credentials and
// the database URL have no defaults and must be supplied.
func New() *Config {
	return &Config{
		Warehouse: WarehouseConfig{
			Dataset:  "authorized_views",
			Location: "US",
		},
		Database: DatabaseConfig{
			MaxConns:        10,
			MinConns:        2,
			MaxConnLifetime: Duration(time.Hour),
			MaxConnIdleTime: Duration(30 * time.Minute),
		},
		Sync: SyncConfig{
			BatchSize: 1000,
			Schedules: ScheduleConfig{
				Units:            "0 * * * *",
				Payments:         "10 * * * *",
				Leases:           "20 * * * *",
				Leads:            "30 */2 * * *",
				Contacts:         "40 */6 * * *",
				Managers:         "50 4 * * *",
				PricingGroups:    "15 */6 * * *",
				SpacesHistorical: "25 5 * * *",
				UnitTurnovers:    "35 6 * * *",
				BookEntries:      "45 */2 * * *",
				CustomerTouches:  "55 * * * *",
				GAEvents:         "5 */3 * * *",
			},
		},
		Log: LogConfig{
			Level:    "info",
			Encoding: "json",
		},
	}
}

// Validate checks required fields and value ranges. A missing warehouse
// project id or credentials path is a hard failure for the sync engine.
func (c *Config) Validate() error {
	if c.Warehouse.ProjectID == "" {
		return fmt.Errorf("warehouse.project_id is required")
	}
	if c.Warehouse.CredentialsFile == "" {
		return fmt.Errorf("warehouse.credentials_file is required")
	}
	if c.Warehouse.Dataset == "" {
		return fmt.Errorf("warehouse.dataset is required")
	}
	if c.Database.URL == "" {
		return fmt.Errorf("database.url is required")
	}
	if c.Database.MaxConns <= 0 {
		return fmt.Errorf("database.max_conns must be positive")
	}
	if c.Sync.BatchSize <= 0 {
		return fmt.Errorf("sync.batch_size must be positive")
	}
	return nil
}
