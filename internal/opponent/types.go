package opponent

import (
	"math"

	"github.com/MJE43/racing-ai/internal/params"
)

// Snapshot is the read-only per-tick view of the world around one AI car
type Snapshot struct {
	ObstacleAheadDistance float64 `json:"obstacle_ahead_distance"`
	ObstacleLeft          bool    `json:"obstacle_left"`
	ObstacleRight         bool    `json:"obstacle_right"`
	NitroAvailable        float64 `json:"nitro_available"`
	ClearPath             bool    `json:"clear_path"`
}

// NewSnapshot returns a snapshot with nothing ahead and a clear path
func NewSnapshot() Snapshot {
	return Snapshot{
		ObstacleAheadDistance: math.Inf(1),
		ClearPath:             true,
	}
}

// SnapshotFromMap decodes host game state, applying the documented
// defaults for absent keys.
func SnapshotFromMap(m map[string]any) Snapshot {
	return Snapshot{
		ObstacleAheadDistance: params.Float(m, "obstacle_ahead_distance", math.Inf(1)),
		ObstacleLeft:          params.Bool(m, "obstacle_left", false),
		ObstacleRight:         params.Bool(m, "obstacle_right", false),
		NitroAvailable:        params.Float(m, "nitro_available", 0),
		ClearPath:             params.Bool(m, "clear_path", true),
	}
}

// ActionSet is the decision for one tick. Flags are independent; a fumbled
// tick may clear accelerate while braking.
type ActionSet struct {
	Accelerate bool `json:"accelerate"`
	Brake      bool `json:"brake"`
	TurnLeft   bool `json:"turn_left"`
	TurnRight  bool `json:"turn_right"`
	UseNitro   bool `json:"use_nitro"`
}

// Situation is everything the host supplies for one decision point
type Situation struct {
	TrackPosition   float64  `json:"track_position"`
	ObstaclesNearby bool     `json:"obstacles_nearby"`
	PlayerDistance  float64  `json:"player_distance"`
	State           Snapshot `json:"state"`
}

// SituationFromMap decodes a host request carrying both the speed inputs
// and the game-state snapshot in one flat object.
func SituationFromMap(m map[string]any) Situation {
	return Situation{
		TrackPosition:   params.Float(m, "track_position", 0),
		ObstaclesNearby: params.Bool(m, "obstacles_nearby", false),
		PlayerDistance:  params.Float(m, "player_distance", 0),
		State:           SnapshotFromMap(m),
	}
}

// Decision is what a controller returns to the host per tick
type Decision struct {
	Speed        float64   `json:"speed"`
	Action       ActionSet `json:"action"`
	ReactionTime float64   `json:"reaction_time"`
	Aggression   float64   `json:"aggression"`
	SkillLevel   float64   `json:"skill_level"`
}
