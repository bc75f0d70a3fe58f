// Package common provides shared configuration for the pulsar lab tools.
package common

import (
	"os"
	"path/filepath"
)

// Config holds common configuration for all applications.
type Config struct {
	ClickHouseHost     string
	ClickHousePort     int
	ClickHouseDatabase string
	ClickHouseUser     string
	ClickHousePassword string
	DataDir            string
	LogLevel           string
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ClickHouseHost:     getEnv("CLICKHOUSE_HOST", "localhost"),
		ClickHousePort:     9000,
		ClickHouseDatabase: getEnv("CLICKHOUSE_DATABASE", "pulsars"),
		ClickHouseUser:     getEnv("CLICKHOUSE_USER", "default"),
		ClickHousePassword: getEnv("CLICKHOUSE_PASSWORD", ""),
		DataDir:            getEnv("PULSAR_DATA_DIR", "/var/lib/pulsar-lab"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}
}

// CatalogCachePath returns the normalized CSV cache location.
func (c *Config) CatalogCachePath() string {
	return filepath.Join(c.DataDir, "pulsars.csv")
}

// PsrcatPath returns the default psrcat source table location.
func (c *Config) PsrcatPath() string {
	return filepath.Join(c.DataDir, "psrcat.db")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
