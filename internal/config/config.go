package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xxxsen/common/logger"
)

type DatabaseConfig struct {
	DSN      string `json:"dsn"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	DBName   string `json:"dbname"`
	SSLMode  string `json:"sslmode"`
}

type Config struct {
	Database        DatabaseConfig   `json:"database"`
	Port            int              `json:"port"`
	JWTSecret       string           `json:"jwt_secret"`
	AccessTTLHours  int              `json:"access_ttl_hours"`
	RefreshTTLDays  int              `json:"refresh_ttl_days"`
	CookieSecure    *bool            `json:"cookie_secure"`
	CORSOrigins     []string         `json:"cors_origins"`
	AuthRateWindow  int              `json:"auth_rate_window_seconds"`
	RevokePurgeSpec string           `json:"revoke_purge_spec"`
	LogConfig       logger.LogConfig `json:"log_config"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Database.DSN == "" && cfg.Database.Host == "" {
		return nil, fmt.Errorf("database.dsn or database.host is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt_secret is required")
	}
	if cfg.Port == 0 {
		return nil, fmt.Errorf("port is required")
	}
	if cfg.AccessTTLHours == 0 {
		cfg.AccessTTLHours = 3
	}
	if cfg.RefreshTTLDays == 0 {
		cfg.RefreshTTLDays = 14
	}
	if cfg.CookieSecure == nil {
		// Secure cookies unless explicitly disabled for non-TLS dev setups.
		secure := true
		cfg.CookieSecure = &secure
	}
	if cfg.RevokePurgeSpec == "" {
		cfg.RevokePurgeSpec = "17 * * * *"
	}
	if cfg.LogConfig.Level == "" {
		cfg.LogConfig.Level = "info"
	}
	return &cfg, nil
}
