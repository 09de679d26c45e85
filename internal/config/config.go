package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// prometheus metrics server
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	ReevaluateRateLimitAllowedPerMin int `toml:"reevaluate_rate_limit_allowed_per_min"`
	LoginRateLimitAllowedPerMin      int `toml:"login_rate_limit_allowed_per_min"`

	// trophies engine
	TrophiesEnabled       bool   `toml:"trophies_enabled"`
	TrophyCatalogPath     string `toml:"trophy_catalog_path"`
	UserInactivityDays    int    `toml:"user_inactivity_days"`
	WorkoutGapResetDays   int    `toml:"workout_gap_reset_days"`
	WeekendStaleAfterDays int    `toml:"weekend_stale_after_days"`
	ProgressCacheTTL      int    `toml:"progress_cache_ttl_seconds"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	var tomlFile Toml
	if _, err := toml.DecodeFile(path, &tomlFile); err != nil {
		return nil, fmt.Errorf("decode toml config file: %w", err)
	}

	cfg, err := tomlFile.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config section for env [%s] empty", env)
	}

	cfg.Environment = env
	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.UserInactivityDays <= 0 {
		c.UserInactivityDays = 90
	}
	if c.WorkoutGapResetDays <= 0 {
		c.WorkoutGapResetDays = 30
	}
	if c.WeekendStaleAfterDays <= 0 {
		c.WeekendStaleAfterDays = 7
	}
	if c.ProgressCacheTTL <= 0 {
		c.ProgressCacheTTL = int((5 * time.Minute).Seconds())
	}
	if c.ReevaluateRateLimitAllowedPerMin <= 0 {
		c.ReevaluateRateLimitAllowedPerMin = 2
	}
	if c.LoginRateLimitAllowedPerMin <= 0 {
		c.LoginRateLimitAllowedPerMin = 15
	}
}
