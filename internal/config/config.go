package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"

	"github.com/zephyrtronium/graphcalc/internal/logging"
	"github.com/zephyrtronium/graphcalc/roots"
)

// Prefix is the prefix of every environment variable read by Load.
const Prefix = "GRAPHCALC"

// Config holds all application configuration.
type Config struct {
	Finder  FinderConfig
	Scan    ScanConfig
	Logging LogConfig
}

// FinderConfig holds root finder tolerances and limits.
type FinderConfig struct {
	RelAccuracy   float64 `envconfig:"REL_ACCURACY" default:"1e-15"`
	AbsAccuracy   float64 `envconfig:"ABS_ACCURACY" default:"1e-17"`
	FValAccuracy  float64 `envconfig:"FVAL_ACCURACY" default:"1e-17"`
	MaxIterations int     `envconfig:"MAX_ITERATIONS" default:"1000"`
	MaxDepth      int     `envconfig:"MAX_DEPTH" default:"3"`
}

// ScanConfig holds multi-root scan configuration.
type ScanConfig struct {
	Subintervals int `envconfig:"SUBINTERVALS" default:"1000"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"warn"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables. Each variable is
// GRAPHCALC_<SECTION>_<NAME>, e.g. GRAPHCALC_FINDER_REL_ACCURACY, or the bare
// name, e.g. REL_ACCURACY.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Finder: FinderConfig{
			RelAccuracy:   1e-15,
			AbsAccuracy:   1e-17,
			FValAccuracy:  1e-17,
			MaxIterations: roots.DefaultMaxIterations,
			MaxDepth:      roots.DefaultMaxDepth,
		},
		Scan: ScanConfig{
			Subintervals: 1000,
		},
		Logging: LogConfig{
			Level:       "warn",
			Development: false,
		},
	}
}

// Validate checks that the configuration describes a usable finder.
func (cfg *Config) Validate() error {
	f := cfg.Finder
	switch {
	case !(f.RelAccuracy >= 0) || !(f.AbsAccuracy >= 0) || !(f.FValAccuracy >= 0):
		return fmt.Errorf("accuracies must be non-negative: rel=%g abs=%g fval=%g", f.RelAccuracy, f.AbsAccuracy, f.FValAccuracy)
	case f.RelAccuracy == 0 && f.AbsAccuracy == 0:
		return fmt.Errorf("relative and absolute accuracy cannot both be zero")
	case f.MaxIterations < 1:
		return fmt.Errorf("max iterations must be positive, got %d", f.MaxIterations)
	case f.MaxDepth < 0:
		return fmt.Errorf("max depth must be non-negative, got %d", f.MaxDepth)
	case cfg.Scan.Subintervals < 1:
		return fmt.Errorf("subintervals must be positive, got %d", cfg.Scan.Subintervals)
	}
	return nil
}

// NewFinder creates a root finder from the configuration.
func (cfg *Config) NewFinder(log *zap.Logger) *roots.Finder {
	f := cfg.Finder
	return roots.New(f.RelAccuracy, f.AbsAccuracy, f.FValAccuracy,
		roots.MaxIterations(f.MaxIterations),
		roots.MaxDepth(f.MaxDepth),
		roots.Logger(log),
	)
}

// LoggingConfig converts the logging section to a logger configuration.
func (cfg *Config) LoggingConfig() logging.Config {
	lc := logging.DefaultConfig()
	if cfg.Logging.Development {
		lc = logging.DevelopmentConfig()
	}
	if cfg.Logging.Level != "" {
		lc.Level = cfg.Logging.Level
	}
	return lc
}
