// Package config aggregates the tuning of every simulation component.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go.uber.org/multierr"

	"github.com/MJE43/racing-ai/internal/difficulty"
	"github.com/MJE43/racing-ai/internal/opponent"
	"github.com/MJE43/racing-ai/internal/pathing"
	"github.com/MJE43/racing-ai/internal/traffic"
)

var ErrInvalid = errors.New("invalid config")

// Config is the full tuning surface
type Config struct {
	Opponent   opponent.Config   `json:"opponent"`
	Pathing    pathing.Planner   `json:"pathing"`
	Difficulty difficulty.Config `json:"difficulty"`
	Traffic    traffic.Config    `json:"traffic"`
}

// Default returns the stock tuning of every component
func Default() Config {
	return Config{
		Opponent:   opponent.DefaultConfig(),
		Pathing:    pathing.NewPlanner(),
		Difficulty: difficulty.DefaultConfig(),
		Traffic:    traffic.DefaultConfig(),
	}
}

// Load overlays the JSON file at path onto the defaults and validates the
// result. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every out-of-range value at once
func (c Config) Validate() error {
	var errs error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	o := c.Opponent
	check(o.MinSpeed > 0, "opponent.min_speed must be positive, got %v", o.MinSpeed)
	check(o.NoiseBand >= 0, "opponent.noise_band must not be negative, got %v", o.NoiseBand)
	check(o.ObstacleSlowdown > 0 && o.ObstacleSlowdown <= 1, "opponent.obstacle_slowdown must be in (0,1], got %v", o.ObstacleSlowdown)
	check(o.LeadDamping > 0 && o.LeadDamping <= 1, "opponent.lead_damping must be in (0,1], got %v", o.LeadDamping)
	check(o.CatchUpFactor >= 0, "opponent.catch_up_factor must not be negative, got %v", o.CatchUpFactor)
	check(o.LeadThreshold >= 0, "opponent.lead_threshold must not be negative, got %v", o.LeadThreshold)
	check(o.NearObstacleDistance >= 0, "opponent.near_obstacle_distance must not be negative, got %v", o.NearObstacleDistance)
	check(o.NitroThreshold >= 0, "opponent.nitro_threshold must not be negative, got %v", o.NitroThreshold)
	check(o.PositionOffset >= 0, "opponent.position_offset must not be negative, got %v", o.PositionOffset)

	p := c.Pathing
	check(p.SafetyMargin >= 0, "pathing.safety_margin must not be negative, got %v", p.SafetyMargin)
	check(p.LateralStep > 0, "pathing.lateral_step must be positive, got %v", p.LateralStep)
	check(p.ForwardStep > 0, "pathing.forward_step must be positive, got %v", p.ForwardStep)

	d := c.Difficulty
	check(d.HistoryCapacity > 0, "difficulty.history_capacity must be positive, got %d", d.HistoryCapacity)
	check(d.MinRecords > 0 && d.MinRecords <= d.HistoryCapacity,
		"difficulty.min_records must be in [1,history_capacity], got %d", d.MinRecords)
	check(d.TrainThreshold > 0 && d.TrainThreshold <= d.HistoryCapacity,
		"difficulty.train_threshold must be in [1,history_capacity], got %d", d.TrainThreshold)
	check(d.Coaching.Window > 0, "difficulty.coaching.window must be positive, got %d", d.Coaching.Window)
	check(d.Coaching.MinRecords > 0, "difficulty.coaching.min_records must be positive, got %d", d.Coaching.MinRecords)

	t := c.Traffic
	check(t.Lanes > 0, "traffic.lanes must be positive, got %d", t.Lanes)
	check(t.MinBaseSpeed <= t.MaxBaseSpeed, "traffic.min_base_speed %v exceeds max_base_speed %v", t.MinBaseSpeed, t.MaxBaseSpeed)
	check(t.LaneChangeProbability >= 0 && t.LaneChangeProbability <= 1,
		"traffic.lane_change_probability must be in [0,1], got %v", t.LaneChangeProbability)
	_, hasMedium := t.Patterns[traffic.DensityMedium]
	check(hasMedium, "traffic.patterns must define %q", traffic.DensityMedium)
	for name, pat := range t.Patterns {
		check(pat.VehicleCount >= 0, "traffic.patterns.%s.vehicle_count must not be negative, got %d", name, pat.VehicleCount)
		check(pat.SpeedVariance >= 0 && t.MinBaseSpeed-pat.SpeedVariance >= 0,
			"traffic.patterns.%s.speed_variance %v must be in [0,min_base_speed %v]", name, pat.SpeedVariance, t.MinBaseSpeed)
	}

	return errs
}
