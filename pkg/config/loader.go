package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML configuration file into cfg, substituting ${VAR_NAME}
// references with environment variable values before parsing.
func Load(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath) //nolint:gosec // G304: File path is controlled by caller and validated
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	content := substituteEnvVars(string(data))

	if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	return nil
}

// FromEnv overlays environment variables onto cfg. These match the variable
// names the deployment environment already provides for the warehouse
// credentials, so a config file is optional.
func FromEnv(cfg *Config) {
	if v := os.Getenv("BIGQUERY_PROJECT"); v != "" {
		cfg.Warehouse.ProjectID = v
	}
	if v := os.Getenv("BIGQUERY_APPLICATION_CREDENTIALS"); v != "" {
		cfg.Warehouse.CredentialsFile = v
	}
	if v := os.Getenv("BIGQUERY_DATASET"); v != "" {
		cfg.Warehouse.Dataset = v
	}
	if v := os.Getenv("BIGQUERY_SYNC_BATCH_SIZE"); v != "" {
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil && n > 0 {
			cfg.Sync.BatchSize = n
		}
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values
func substituteEnvVars(content string) string {
	for {
		start := strings.Index(content, "${")
		if start == -1 {
			break
		}
		end := strings.Index(content[start:], "}")
		if end == -1 {
			break
		}
		end += start

		varName := content[start+2 : end]
		envValue := os.Getenv(varName)
		content = content[:start] + envValue + content[end+1:]
	}
	return content
}
