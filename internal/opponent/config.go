package opponent

// Config holds the speed model and decision thresholds shared by every
// controller. Tier-specific values live in the tier table instead.
type Config struct {
	LevelBonus           float64 `json:"level_bonus"`
	ObstacleSlowdown     float64 `json:"obstacle_slowdown"`
	CatchUpFactor        float64 `json:"catch_up_factor"`
	LeadThreshold        float64 `json:"lead_threshold"`
	LeadDamping          float64 `json:"lead_damping"`
	NoiseBand            float64 `json:"noise_band"`
	MinSpeed             float64 `json:"min_speed"`
	NearObstacleDistance float64 `json:"near_obstacle_distance"`
	NitroThreshold       float64 `json:"nitro_threshold"`
	PositionOffset       float64 `json:"position_offset"`
}

// DefaultConfig returns the stock tuning
func DefaultConfig() Config {
	return Config{
		LevelBonus:           5,
		ObstacleSlowdown:     0.7,
		CatchUpFactor:        0.2,
		LeadThreshold:        100,
		LeadDamping:          0.9,
		NoiseBand:            10,
		MinSpeed:             50,
		NearObstacleDistance: 100,
		NitroThreshold:       50,
		PositionOffset:       50,
	}
}
