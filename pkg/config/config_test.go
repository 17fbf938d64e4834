package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a Config that passes Validate.
func validConfig() *Config {
	cfg := New()
	cfg.Warehouse.ProjectID = "proj"
	cfg.Warehouse.CredentialsFile = "/tmp/creds.json"
	cfg.Database.URL = "postgres://localhost/sync"
	return cfg
}

func TestNewDefaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, "authorized_views", cfg.Warehouse.Dataset)
	assert.Equal(t, 1000, cfg.Sync.BatchSize)
	assert.Equal(t, int32(10), cfg.Database.MaxConns)
	assert.Equal(t, time.Hour, cfg.Database.MaxConnLifetime.Std())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Encoding)

	// Every entity ships with a cadence out of the box.
	s := cfg.Sync.Schedules
	for name, spec := range map[string]string{
		"units":             s.Units,
		"payments":          s.Payments,
		"leases":            s.Leases,
		"leads":             s.Leads,
		"contacts":          s.Contacts,
		"managers":          s.Managers,
		"pricing_groups":    s.PricingGroups,
		"spaces_historical": s.SpacesHistorical,
		"unit_turnovers":    s.UnitTurnovers,
		"book_entries":      s.BookEntries,
		"customer_touches":  s.CustomerTouches,
		"ga_events":         s.GAEvents,
	} {
		assert.NotEmpty(t, spec, "no default cadence for %s", name)
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing project id", func(c *Config) { c.Warehouse.ProjectID = "" }},
		{"missing credentials", func(c *Config) { c.Warehouse.CredentialsFile = "" }},
		{"missing dataset", func(c *Config) { c.Warehouse.Dataset = "" }},
		{"missing database url", func(c *Config) { c.Database.URL = "" }},
		{"zero max conns", func(c *Config) { c.Database.MaxConns = 0 }},
		{"zero batch size", func(c *Config) { c.Sync.BatchSize = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadSubstitutesEnvVars(t *testing.T) {
	t.Setenv("TEST_BQ_PROJECT", "env-project")
	t.Setenv("TEST_DB_URL", "postgres://env-host/sync")

	content := `
warehouse:
  project_id: ${TEST_BQ_PROJECT}
  credentials_file: /etc/creds.json
database:
  url: ${TEST_DB_URL}
  max_conn_lifetime: 2h
sync:
  batch_size: 250
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg := New()
	require.NoError(t, Load(path, cfg))

	assert.Equal(t, "env-project", cfg.Warehouse.ProjectID)
	assert.Equal(t, "postgres://env-host/sync", cfg.Database.URL)
	assert.Equal(t, 2*time.Hour, cfg.Database.MaxConnLifetime.Std())
	assert.Equal(t, 250, cfg.Sync.BatchSize)

	// Defaults survive a partial file.
	assert.Equal(t, "authorized_views", cfg.Warehouse.Dataset)
}

func TestLoadMissingFile(t *testing.T) {
	cfg := New()
	assert.Error(t, Load(filepath.Join(t.TempDir(), "absent.yaml"), cfg))
}

func TestFromEnvOverlay(t *testing.T) {
	t.Setenv("BIGQUERY_PROJECT", "overlay-project")
	t.Setenv("BIGQUERY_APPLICATION_CREDENTIALS", "/overlay/creds.json")
	t.Setenv("BIGQUERY_SYNC_BATCH_SIZE", "500")
	t.Setenv("DATABASE_URL", "postgres://overlay/sync")

	cfg := New()
	FromEnv(cfg)

	assert.Equal(t, "overlay-project", cfg.Warehouse.ProjectID)
	assert.Equal(t, "/overlay/creds.json", cfg.Warehouse.CredentialsFile)
	assert.Equal(t, 500, cfg.Sync.BatchSize)
	assert.Equal(t, "postgres://overlay/sync", cfg.Database.URL)
}

func TestFromEnvIgnoresBadBatchSize(t *testing.T) {
	t.Setenv("BIGQUERY_SYNC_BATCH_SIZE", "not-a-number")

	cfg := New()
	FromEnv(cfg)
	assert.Equal(t, 1000, cfg.Sync.BatchSize)
}
