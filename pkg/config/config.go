package config

import (
	"github.com/go-ini/ini"
	"github.com/sirupsen/logrus"
)

// Config is the application configuration.
type Config struct {
	Server   ServerConfig   `ini:"server"`
	Cache    CacheConfig    `ini:"cache"`
	Database DatabaseConfig `ini:"database"`
	Report   ReportConfig   `ini:"report"`
}

// ServerConfig configures the HTTP summary service.
type ServerConfig struct {
	Port      int `ini:"port"`       // listen port
	RateQPS   int `ini:"rate_qps"`   // requests per second allowed
	RateBurst int `ini:"rate_burst"` // burst above the steady rate
}

// CacheConfig configures the response cache.
type CacheConfig struct {
	MaxBytes   int64 `ini:"max_bytes"`   // cache byte budget, 0 disables
	TTLSeconds int   `ini:"ttl_seconds"` // entry lifetime, 0 = no expiry
}

// DatabaseConfig locates the data source.
type DatabaseConfig struct {
	Driver    string `ini:"driver"`     // sqlite (default) or duckdb
	Path      string `ini:"path"`       // database file path
	Table     string `ini:"table"`      // table to report over
	DateField string `ini:"date_field"` // date column name
}

// ReportConfig holds the default report parameters.
type ReportConfig struct {
	Since string `ini:"since"` // inclusive lower bound, YYYY-MM-DD
}

// DefaultConfig returns the built-in defaults, matching the reference
// diagnostic's hard-coded values.
func DefaultConfig() *Config {
	return &Config{
		Server:   ServerConfig{Port: 8080, RateQPS: 100, RateBurst: 200},
		Cache:    CacheConfig{MaxBytes: 64 * 1024 * 1024, TTLSeconds: 3600},
		Database: DatabaseConfig{Driver: "sqlite", Path: "./data/sports_model.db", Table: "mlb_games", DateField: "game_date"},
		Report:   ReportConfig{Since: "2025-01-01"},
	}
}

// LoadConfig reads filePath over the defaults.
func LoadConfig(filePath string) (*Config, error) {
	cfg := DefaultConfig()

	if err := ini.MapTo(cfg, filePath); err != nil {
		logrus.Errorf("Failed to load config file: %v", err)
		return nil, err
	}

	logrus.Infof("Config loaded successfully from: %s", filePath)
	return cfg, nil
}
