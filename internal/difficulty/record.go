package difficulty

import "github.com/MJE43/racing-ai/internal/params"

const (
	defaultCarSpeed        = 100.0
	defaultCarHandling     = 50.0
	defaultCarAcceleration = 50.0
)

// Record is the outcome of one race
type Record struct {
	Won             bool    `json:"won"`
	Time            float64 `json:"time"`
	Collisions      int     `json:"collisions"`
	NitroUsed       float64 `json:"nitro_used"`
	Level           int     `json:"level"`
	CarSpeed        float64 `json:"car_speed"`
	CarHandling     float64 `json:"car_handling"`
	CarAcceleration float64 `json:"car_acceleration"`
}

// NewRecord returns a record with the documented defaults
func NewRecord() Record {
	return Record{
		Level:           1,
		CarSpeed:        defaultCarSpeed,
		CarHandling:     defaultCarHandling,
		CarAcceleration: defaultCarAcceleration,
	}
}

// RecordFromMap decodes host performance data, applying defaults for
// absent keys.
func RecordFromMap(m map[string]any) Record {
	return Record{
		Won:             params.Bool(m, "won", false),
		Time:            params.Float(m, "time", 0),
		Collisions:      params.Int(m, "collisions", 0),
		NitroUsed:       params.Float(m, "nitro_used", 0),
		Level:           params.Int(m, "level", 1),
		CarSpeed:        params.Float(m, "car_speed", defaultCarSpeed),
		CarHandling:     params.Float(m, "car_handling", defaultCarHandling),
		CarAcceleration: params.Float(m, "car_acceleration", defaultCarAcceleration),
	}
}

// CarStats is the car a prediction or recommendation is made for
type CarStats struct {
	Speed        float64 `json:"speed"`
	Handling     float64 `json:"handling"`
	Acceleration float64 `json:"acceleration"`
}

// DefaultCarStats returns the stock car
func DefaultCarStats() CarStats {
	return CarStats{Speed: defaultCarSpeed, Handling: defaultCarHandling, Acceleration: defaultCarAcceleration}
}

// CarStatsFromMap decodes host car stats
func CarStatsFromMap(m map[string]any) CarStats {
	return CarStats{
		Speed:        params.Float(m, "speed", defaultCarSpeed),
		Handling:     params.Float(m, "handling", defaultCarHandling),
		Acceleration: params.Float(m, "acceleration", defaultCarAcceleration),
	}
}

func (r Record) features() []float64 {
	return []float64{float64(r.Level), r.CarSpeed, r.CarHandling, r.CarAcceleration}
}

func (r Record) label() float64 {
	if r.Won {
		return 1
	}
	return 0
}
