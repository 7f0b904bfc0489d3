package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDefaultMatchesEnvDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	t.Setenv("GRAPHCALC_FINDER_REL_ACCURACY", "1e-12")
	t.Setenv("GRAPHCALC_FINDER_MAX_DEPTH", "0")
	t.Setenv("GRAPHCALC_SCAN_SUBINTERVALS", "250")
	t.Setenv("LOG_LEVEL", "debug")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1e-12, cfg.Finder.RelAccuracy)
	assert.Equal(t, 1e-17, cfg.Finder.AbsAccuracy)
	assert.Equal(t, 0, cfg.Finder.MaxDepth)
	assert.Equal(t, 250, cfg.Scan.Subintervals)
	assert.Equal(t, "debug", cfg.Logging.Level)

	f := cfg.NewFinder(zap.NewNop())
	assert.Equal(t, 1e-12, f.RelativeAccuracy())
	assert.Equal(t, 0, f.MaxDepth())
	assert.Equal(t, 1000, f.MaxIterations())
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name, key, val string
	}{
		{"not-a-number", "GRAPHCALC_FINDER_ABS_ACCURACY", "tiny"},
		{"negative-accuracy", "GRAPHCALC_FINDER_FVAL_ACCURACY", "-1"},
		{"no-iterations", "GRAPHCALC_FINDER_MAX_ITERATIONS", "0"},
		{"negative-depth", "GRAPHCALC_FINDER_MAX_DEPTH", "-1"},
		{"no-subintervals", "GRAPHCALC_SCAN_SUBINTERVALS", "0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Setenv(c.key, c.val)
			_, err := Load()
			assert.Error(t, err)
			assert.Equal(t, Default(), LoadOrDefault())
		})
	}
}

func TestZeroAccuracies(t *testing.T) {
	cfg := Default()
	cfg.Finder.RelAccuracy = 0
	cfg.Finder.AbsAccuracy = 0
	assert.Error(t, cfg.Validate())
}

func TestLoggingConfig(t *testing.T) {
	cfg := Default()
	lc := cfg.LoggingConfig()
	assert.Equal(t, "warn", lc.Level)
	assert.False(t, lc.Development)

	cfg.Logging.Development = true
	cfg.Logging.Level = ""
	lc = cfg.LoggingConfig()
	assert.Equal(t, "debug", lc.Level)
	assert.True(t, lc.Development)
}
