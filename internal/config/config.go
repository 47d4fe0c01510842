package config

import (
	"fmt"

	"github.com/spf13/viper"

	"symptom-checker/internal/engine"
)

type Config struct {
	Port        string `mapstructure:"PORT"`
	CatalogPath string `mapstructure:"CATALOG_PATH"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Scoring tunables. The defaults reproduce the reference formula; they
	// are exposed here because the exact constants are configuration, not
	// contract.
	MaxDifferential int     `mapstructure:"MAX_DIFFERENTIAL"`
	MinLikelihood   float64 `mapstructure:"MIN_LIKELIHOOD"`
	MaxLikelihood   float64 `mapstructure:"MAX_LIKELIHOOD"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	defaults := engine.DefaultTunables()

	v.SetDefault("PORT", "8080")
	v.SetDefault("CATALOG_PATH", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_DIFFERENTIAL", defaults.MaxDifferential)
	v.SetDefault("MIN_LIKELIHOOD", defaults.MinLikelihood)
	v.SetDefault("MAX_LIKELIHOOD", defaults.MaxLikelihood)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("CATALOG_PATH")
	v.BindEnv("LOG_LEVEL")
	v.BindEnv("MAX_DIFFERENTIAL")
	v.BindEnv("MIN_LIKELIHOOD")
	v.BindEnv("MAX_LIKELIHOOD")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.MaxDifferential <= 0 {
		return nil, fmt.Errorf("MAX_DIFFERENTIAL must be positive, got %d", cfg.MaxDifferential)
	}
	return cfg, nil
}

// Tunables builds the engine constants from the defaults plus any overrides.
func (c *Config) Tunables() engine.Tunables {
	tun := engine.DefaultTunables()
	tun.MaxDifferential = c.MaxDifferential
	tun.MinLikelihood = c.MinLikelihood
	tun.MaxLikelihood = c.MaxLikelihood
	return tun
}
