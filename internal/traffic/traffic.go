// Package traffic generates and advances ambient vehicles. It runs on its
// own tick and knows nothing about opponents.
package traffic

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/MJE43/racing-ai/internal/engine"
)

// Density selects how busy the road is
type Density string

const (
	DensityLow    Density = "low"
	DensityMedium Density = "medium"
	DensityHigh   Density = "high"
)

// VehicleType is the kind of ambient vehicle
type VehicleType string

const (
	TypeCar   VehicleType = "car"
	TypeTruck VehicleType = "truck"
	TypeBus   VehicleType = "bus"
)

var vehicleTypes = []VehicleType{TypeCar, TypeTruck, TypeBus}

// Pattern is the vehicle count and speed spread for one density
type Pattern struct {
	VehicleCount  int     `json:"vehicle_count"`
	SpeedVariance float64 `json:"speed_variance"`
}

// Vehicle is one ambient vehicle. Lane is 0, 1 or 2.
type Vehicle struct {
	ID       string      `json:"id"`
	Position float64     `json:"position"`
	Speed    float64     `json:"speed"`
	Lane     int         `json:"lane"`
	Type     VehicleType `json:"type"`
}

// Config tunes a Simulator
type Config struct {
	Patterns              map[Density]Pattern `json:"patterns"`
	Lanes                 int                 `json:"lanes"`
	MinBaseSpeed          float64             `json:"min_base_speed"`
	MaxBaseSpeed          float64             `json:"max_base_speed"`
	LaneChangeProbability float64             `json:"lane_change_probability"`
}

// DefaultConfig returns the stock densities and a 1% lane change chance
func DefaultConfig() Config {
	return Config{
		Patterns: map[Density]Pattern{
			DensityLow:    {VehicleCount: 5, SpeedVariance: 20},
			DensityMedium: {VehicleCount: 10, SpeedVariance: 30},
			DensityHigh:   {VehicleCount: 15, SpeedVariance: 40},
		},
		Lanes:                 3,
		MinBaseSpeed:          60,
		MaxBaseSpeed:          100,
		LaneChangeProbability: 0.01,
	}
}

// ParseDensity matches density names exactly
func ParseDensity(s string) (Density, error) {
	d := Density(s)
	switch d {
	case DensityLow, DensityMedium, DensityHigh:
		return d, nil
	}
	return DensityMedium, fmt.Errorf("%w: %q", ErrUnknownDensity, s)
}

// Simulator generates and moves traffic. Not safe for concurrent use.
type Simulator struct {
	cfg    Config
	rng    engine.Source
	logger *log.Logger
}

// Option configures a Simulator
type Option func(*Simulator)

// WithConfig replaces the default tuning
func WithConfig(cfg Config) Option {
	return func(s *Simulator) {
		s.cfg = cfg
	}
}

// WithLogger sets the logger
func WithLogger(l *log.Logger) Option {
	return func(s *Simulator) {
		s.logger = l
	}
}

// NewSimulator creates a simulator drawing from src
func NewSimulator(src engine.Source, opts ...Option) *Simulator {
	s := &Simulator{
		cfg:    DefaultConfig(),
		rng:    src,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Simulator) pattern(d Density) Pattern {
	if p, ok := s.cfg.Patterns[d]; ok {
		return p
	}
	return s.cfg.Patterns[DensityMedium]
}

// GenerateTraffic places the density's vehicles uniformly along a track of
// trackLength. Unknown densities use medium.
func (s *Simulator) GenerateTraffic(trackLength float64, density Density) []Vehicle {
	p := s.pattern(density)
	vehicles := make([]Vehicle, 0, p.VehicleCount)

	for i := 0; i < p.VehicleCount; i++ {
		position := engine.Uniform(s.rng, 0, trackLength)
		speed := engine.Uniform(s.rng, s.cfg.MinBaseSpeed, s.cfg.MaxBaseSpeed) +
			engine.Uniform(s.rng, -p.SpeedVariance, p.SpeedVariance)

		vehicles = append(vehicles, Vehicle{
			ID:       fmt.Sprintf("traffic_%d", i),
			Position: position,
			Speed:    speed,
			Lane:     engine.Intn(s.rng, s.cfg.Lanes),
			Type:     vehicleTypes[engine.Intn(s.rng, len(vehicleTypes))],
		})
	}

	s.logger.Debug("traffic generated", "density", density, "vehicles", len(vehicles), "track_length", trackLength)
	return vehicles
}

// UpdateTraffic advances every vehicle by speed*dt and occasionally moves
// it one lane over. vehicles is modified in place and returned.
func (s *Simulator) UpdateTraffic(vehicles []Vehicle, dt float64) []Vehicle {
	maxLane := s.cfg.Lanes - 1

	for i := range vehicles {
		v := &vehicles[i]
		v.Position += v.Speed * dt

		if engine.Chance(s.rng, s.cfg.LaneChangeProbability) {
			step := 1
			if engine.Chance(s.rng, 0.5) {
				step = -1
			}
			v.Lane = max(0, min(maxLane, v.Lane+step))
		}
	}
	return vehicles
}
