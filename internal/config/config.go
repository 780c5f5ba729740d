// Package config loads the route manager configuration from ROUTEMGR_*
// environment variables, with a .env file picked up automatically.
//
// The first "_" after the prefix separates the section from the key, e.g.
// ROUTEMGR_DATABASE_SSL_MODE maps to Config.Database.SSLMode.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// 副作用引入：存在 .env 文件时先加载进进程环境变量
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "ROUTEMGR_"

type Config struct {
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Logging  LoggingConfig  `koanf:"logging" validate:"required"`
	Tracing  TracingConfig  `koanf:"tracing" validate:"required"`
	Metrics  MetricsConfig  `koanf:"metrics"`
}

// DatabaseConfig holds the connection parameters of the store.
type DatabaseConfig struct {
	Driver   string `koanf:"driver" validate:"required,oneof=postgres mysql sqlite3"`
	Host     string `koanf:"host" validate:"required_unless=Driver sqlite3"`
	Port     int    `koanf:"port" validate:"required_unless=Driver sqlite3,max=65535"`
	User     string `koanf:"user" validate:"required_unless=Driver sqlite3"`
	Password string `koanf:"password"`
	Name     string `koanf:"name" validate:"required"`
	SSLMode  string `koanf:"ssl_mode"`
}

type LoggingConfig struct {
	Level              string        `koanf:"level" validate:"required,oneof=trace debug info warn error"`
	Format             string        `koanf:"format" validate:"required,oneof=console json"`
	LogQueryArgs       bool          `koanf:"log_query_args"`
	SlowQueryThreshold time.Duration `koanf:"slow_query_threshold"`
}

type TracingConfig struct {
	Exporter    string `koanf:"exporter" validate:"required,oneof=none jaeger zipkin"`
	Endpoint    string `koanf:"endpoint" validate:"required_unless=Exporter none"`
	ServiceName string `koanf:"service_name" validate:"required"`
}

type MetricsConfig struct {
	Namespace string `koanf:"namespace"`
}

func defaults() map[string]any {
	return map[string]any{
		"database.driver":              "postgres",
		"database.port":                5432,
		"database.ssl_mode":            "disable",
		"logging.level":                "info",
		"logging.format":               "console",
		"logging.slow_query_threshold": "200ms",
		"tracing.exporter":             "none",
		"tracing.service_name":         "routemgr",
		"metrics.namespace":            "routemgr",
	}
}

// Load reads defaults, then the environment, and validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envKey maps ROUTEMGR_DATABASE_SSL_MODE to database.ssl_mode.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.Replace(key, "_", ".", 1)
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
