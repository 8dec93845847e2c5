package difficulty

// Thresholds are the tier rules, evaluated hard, medium, easy in that order
type Thresholds struct {
	HardWinRate         float64 `json:"hard_win_rate"`
	HardMaxCollisions   float64 `json:"hard_max_collisions"`
	MediumWinRate       float64 `json:"medium_win_rate"`
	MediumMaxCollisions float64 `json:"medium_max_collisions"`
	EasyWinRate         float64 `json:"easy_win_rate"`
	EasyMinCollisions   float64 `json:"easy_min_collisions"`
}

// Coaching are the bars used by Recommendations
type Coaching struct {
	Window         int     `json:"window"`
	MinRecords     int     `json:"min_records"`
	MaxCollisions  float64 `json:"max_collisions"`
	MinNitroUsed   float64 `json:"min_nitro_used"`
	UpgradeWinRate float64 `json:"upgrade_win_rate"`
	SpeedBar       float64 `json:"speed_bar"`
	HandlingBar    float64 `json:"handling_bar"`
}

// Config tunes one Engine
type Config struct {
	HistoryCapacity int        `json:"history_capacity"`
	MinRecords      int        `json:"min_records"`
	TrainThreshold  int        `json:"train_threshold"`
	Thresholds      Thresholds `json:"thresholds"`
	Coaching        Coaching   `json:"coaching"`
}

// DefaultConfig returns the stock tuning
func DefaultConfig() Config {
	return Config{
		HistoryCapacity: defaultHistoryCapacity,
		MinRecords:      3,
		TrainThreshold:  5,
		Thresholds: Thresholds{
			HardWinRate:         0.8,
			HardMaxCollisions:   2,
			MediumWinRate:       0.6,
			MediumMaxCollisions: 3,
			EasyWinRate:         0.4,
			EasyMinCollisions:   5,
		},
		Coaching: Coaching{
			Window:         5,
			MinRecords:     2,
			MaxCollisions:  3,
			MinNitroUsed:   30,
			UpgradeWinRate: 0.5,
			SpeedBar:       150,
			HandlingBar:    70,
		},
	}
}
