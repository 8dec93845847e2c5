package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/MJE43/racing-ai/internal/traffic"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"opponent": {"min_speed": 40},
		"pathing": {"safety_margin": 25},
		"traffic": {"patterns": {"high": {"vehicle_count": 30, "speed_variance": 45}}}
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 40.0, cfg.Opponent.MinSpeed)
	assert.Equal(t, 0.7, cfg.Opponent.ObstacleSlowdown)
	assert.Equal(t, 25.0, cfg.Pathing.SafetyMargin)
	assert.Equal(t, 50.0, cfg.Pathing.LateralStep)
	assert.Equal(t, 30, cfg.Traffic.Patterns[traffic.DensityHigh].VehicleCount)
	assert.Equal(t, 5, cfg.Traffic.Patterns[traffic.DensityLow].VehicleCount)
	assert.Equal(t, 10, cfg.Difficulty.HistoryCapacity)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, `{"opponent":`))
	require.Error(t, err)

	_, err = Load(writeConfig(t, `{"traffic": {"lanes": 0}}`))
	require.ErrorIs(t, err, ErrInvalid)
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Opponent.MinSpeed = 0
	cfg.Difficulty.TrainThreshold = 20
	cfg.Traffic.LaneChangeProbability = 1.5

	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalid)
	assert.Len(t, multierr.Errors(err), 3)
}

func TestValidateRanges(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"coaching min records", func(c *Config) { c.Difficulty.Coaching.MinRecords = 0 }, "coaching.min_records"},
		{"min records above capacity", func(c *Config) { c.Difficulty.MinRecords = 11 }, "difficulty.min_records"},
		{"negative traffic speed", func(c *Config) {
			c.Traffic.Patterns[traffic.DensityHigh] = traffic.Pattern{VehicleCount: 15, SpeedVariance: 70}
		}, "patterns.high.speed_variance"},
		{"position offset", func(c *Config) { c.Opponent.PositionOffset = -1 }, "position_offset"},
		{"nitro threshold", func(c *Config) { c.Opponent.NitroThreshold = -5 }, "nitro_threshold"},
		{"forward step", func(c *Config) { c.Pathing.ForwardStep = 0 }, "forward_step"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalid)
			require.Len(t, multierr.Errors(err), 1)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidateRequiresMediumPattern(t *testing.T) {
	cfg := Default()
	delete(cfg.Traffic.Patterns, traffic.DensityMedium)

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "medium")
}
