package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the top-level config.yaml structure.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Chart    ChartConfig    `mapstructure:"chart"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // "debug" or "release"
}

// DatabaseConfig controls the postgres connection pool.
type DatabaseConfig struct {
	DSN          string `mapstructure:"dsn"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	LogSQL       bool   `mapstructure:"log_sql"`
}

// ChartConfig points at an optional custom chart-of-accounts template;
// empty means the built-in default chart.
type ChartConfig struct {
	TemplatePath string `mapstructure:"template_path"`
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.max_open_conns", 20)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Database.DSN == "" {
		return nil, fmt.Errorf("config %s: database.dsn is required", path)
	}
	return &cfg, nil
}
