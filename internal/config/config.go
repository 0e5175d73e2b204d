// Package config loads runtime configuration from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

const defaultStatsInterval = 30 * time.Second

// Config holds runtime configuration for the server.
type Config struct {
	Port          string        `env:"PORT" envDefault:"8080"`
	StatsInterval time.Duration `env:"STATS_INTERVAL" envDefault:"30s"`
	LogLevel      string        `env:"LOG_LEVEL"`
	LogFormat     string        `env:"LOG_FORMAT"`
	Metrics       MetricsConfig
}

// MetricsConfig controls the telemetry surface.
type MetricsConfig struct {
	Enabled      bool   `env:"METRICS_ENABLED" envDefault:"true"`
	Port         string `env:"METRICS_PORT" envDefault:"9090"`
	ServiceName  string `env:"METRICS_SERVICE_NAME" envDefault:"card-game-service"`
	OtlpEndpoint string `env:"OTLP_ENDPOINT"`
	OtlpInsecure bool   `env:"OTLP_INSECURE" envDefault:"false"`
}

// Load reads configuration from environment variables with sensible
// defaults. Invalid values fall back rather than failing startup.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		cfg = defaults()
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.StatsInterval <= 0 {
		cfg.StatsInterval = defaultStatsInterval
	}
	return cfg
}

func defaults() Config {
	return Config{
		Port:          "8080",
		StatsInterval: defaultStatsInterval,
		Metrics: MetricsConfig{
			Enabled:     true,
			Port:        "9090",
			ServiceName: "card-game-service",
		},
	}
}
