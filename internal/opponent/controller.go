package opponent

import (
	"math"

	"github.com/MJE43/racing-ai/internal/engine"
	"github.com/MJE43/racing-ai/internal/pathing"
)

// Controller drives one AI car. It is not safe for concurrent use; give
// every goroutine its own controller and Source.
type Controller struct {
	profile Profile
	cfg     Config
	planner pathing.Planner
	rng     engine.Source
}

// Option configures a Controller
type Option func(*Controller)

// WithConfig replaces the default speed and decision tuning
func WithConfig(cfg Config) Option {
	return func(c *Controller) {
		c.cfg = cfg
	}
}

// WithPlanner replaces the default path planner
func WithPlanner(p pathing.Planner) Option {
	return func(c *Controller) {
		c.planner = p
	}
}

// New creates a controller for the given tier and level, drawing all noise
// from src.
func New(tier string, level int, src engine.Source, opts ...Option) *Controller {
	c := &Controller{
		profile: NewProfile(tier, level),
		cfg:     DefaultConfig(),
		planner: pathing.NewPlanner(),
		rng:     src,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Profile returns the controller's immutable profile
func (c *Controller) Profile() Profile {
	return c.profile
}

// CalculateSpeed returns the target speed for this tick. trackPosition is
// accepted for hosts that pass it but does not affect the result.
func (c *Controller) CalculateSpeed(trackPosition float64, obstaclesNearby bool, playerDistance float64) float64 {
	p := c.profile

	speed := p.BaseSpeed * p.SkillLevel
	speed += float64(p.Level) * c.cfg.LevelBonus

	if obstaclesNearby {
		speed *= c.cfg.ObstacleSlowdown
	}

	// Rubber-banding: catch up when behind, ease off when far ahead
	if playerDistance > 0 {
		speed *= 1 + p.Aggression*c.cfg.CatchUpFactor
	} else if playerDistance < -c.cfg.LeadThreshold {
		speed *= c.cfg.LeadDamping
	}

	speed += engine.Uniform(c.rng, -c.cfg.NoiseBand, c.cfg.NoiseBand)

	if math.IsNaN(speed) {
		return c.cfg.MinSpeed
	}
	return math.Max(speed, c.cfg.MinSpeed)
}

// DecideAction evaluates the avoidance/nitro/fumble chain for one tick.
// It keeps no state between calls.
func (c *Controller) DecideAction(s Snapshot) ActionSet {
	var a ActionSet

	if s.ObstacleAheadDistance < c.cfg.NearObstacleDistance {
		switch {
		case s.ObstacleLeft:
			a.TurnRight = true
		case s.ObstacleRight:
			a.TurnLeft = true
		default:
			a.Brake = true
		}
	} else {
		a.Accelerate = true
	}

	// The nitro trial only draws when nitro is actually on offer
	if s.NitroAvailable > c.cfg.NitroThreshold && s.ClearPath &&
		engine.Chance(c.rng, c.profile.Aggression) {
		a.UseNitro = true
	}

	if engine.Chance(c.rng, 1-c.profile.SkillLevel) {
		a.Brake = true
		a.Accelerate = false
	}

	return a
}

// CalculatePath returns the next waypoint toward target, see pathing.Planner
func (c *Controller) CalculatePath(current, target pathing.Point, obstacles []pathing.Obstacle) pathing.Point {
	return c.planner.CalculatePath(current, target, obstacles)
}

// Step runs the speed model and the decision chain for one tick
func (c *Controller) Step(s Situation) Decision {
	return Decision{
		Speed:        c.CalculateSpeed(s.TrackPosition, s.ObstaclesNearby, s.PlayerDistance),
		Action:       c.DecideAction(s.State),
		ReactionTime: c.profile.ReactionTime,
		Aggression:   c.profile.Aggression,
		SkillLevel:   c.profile.SkillLevel,
	}
}
