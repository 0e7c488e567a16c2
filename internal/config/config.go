package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port            string        `mapstructure:"PORT"`
	GinMode         string        `mapstructure:"GIN_MODE"`
	DBDriver        string        `mapstructure:"DB_DRIVER"`
	DatabaseURL     string        `mapstructure:"DATABASE_URL"`
	MaxOpenConns    int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns    int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	ConnMaxLifetime time.Duration `mapstructure:"DB_CONN_MAX_LIFETIME"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	LogFormat       string        `mapstructure:"LOG_FORMAT"`
	GormLogLevel    string        `mapstructure:"GORM_LOG_LEVEL"`
	AllowedOrigins  []string      `mapstructure:"ALLOWED_ORIGINS"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

var defaults = map[string]interface{}{
	"PORT":                 "3000",
	"GIN_MODE":             "release",
	"DB_DRIVER":            "postgres",
	"DB_MAX_OPEN_CONNS":    25,
	"DB_MAX_IDLE_CONNS":    5,
	"DB_CONN_MAX_LIFETIME": "30m",
	"LOG_LEVEL":            "info",
	"LOG_FORMAT":           "json",
	"GORM_LOG_LEVEL":       "warn",
	"ALLOWED_ORIGINS":      "http://localhost:3000,http://localhost:5173",
	"SHUTDOWN_TIMEOUT":     "15s",
}

// Load reads configuration from the environment. Values from a .env file
// must already be in the environment (see godotenv in main).
func Load() (*Config, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}
	if err := v.BindEnv("DATABASE_URL"); err != nil {
		return nil, fmt.Errorf("bind DATABASE_URL: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.AllowedOrigins = splitOrigins(cfg.AllowedOrigins)
	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	switch c.DBDriver {
	case "postgres", "mysql":
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %q", c.DBDriver)
	}

	return nil
}

// splitOrigins accepts both a list and a single comma separated value.
func splitOrigins(raw []string) []string {
	var origins []string

	for _, entry := range raw {
		for _, origin := range strings.Split(entry, ",") {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return origins
}
