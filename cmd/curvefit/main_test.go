package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/curvefit/pkg/errors"
	"github.com/YuminosukeSato/curvefit/pkg/log"
)

func TestDecodeConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"samples": 40,
		"train": 12,
		"degrees": [1, 3],
		"log_lambdas": [-10, 0]
	}`), 0o644))

	cfg := defaultConfig()
	require.NoError(t, decodeConfig(path, &cfg))

	assert.Equal(t, 40, cfg.Samples)
	assert.Equal(t, 12, cfg.Train)
	assert.Equal(t, 50, cfg.Validation, "unset fields keep defaults")
	assert.Equal(t, 0.3, cfg.Noise)
	assert.Equal(t, []int{1, 3}, cfg.Degrees)
	assert.Equal(t, []float64{-10, 0}, cfg.LogLambdas)
}

func TestDecodeConfigErrors(t *testing.T) {
	dir := t.TempDir()
	cfg := defaultConfig()

	assert.Error(t, decodeConfig(filepath.Join(dir, "missing.json"), &cfg))

	path := filepath.Join(dir, "unknown.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"sample_count": 3}`), 0o644))
	assert.Error(t, decodeConfig(path, &cfg))
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"too few samples", func(c *Config) { c.Samples = 1 }},
		{"negative noise", func(c *Config) { c.Noise = -1 }},
		{"no degrees", func(c *Config) { c.Degrees = nil }},
		{"no test samples", func(c *Config) { c.Train, c.Validation = 60, 50 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(&cfg)
			assert.True(t, errors.Is(cfg.validate(), errors.ErrInvalidParameter))
		})
	}
	assert.NoError(t, defaultConfig().validate())
}

func TestRun(t *testing.T) {
	errors.SetWarningHandler(func(error) {})
	logger, _ := log.NewTestLogger(log.LevelInfo)
	dir := t.TempDir()

	cfg := defaultConfig()
	cfg.LogLambdas = []float64{-18, -5, 0}
	out := outputs{plotDir: filepath.Join(dir, "plots"), npyDir: filepath.Join(dir, "npy")}

	require.NoError(t, run(cfg, out, logger))

	for _, name := range []string{"plots/fit.png", "plots/error_curve.png", "npy/sweep.npy", "npy/coefficients.npy"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Positive(t, info.Size(), name)
	}
	assert.Equal(t, 1, logger.CountMessage("best model"))
	assert.True(t, logger.ContainsField(log.RandomSeedKey, float64(1)))
}
