// Package difficulty tracks one player's recent races, recommends the tier
// their next opponents should use and predicts their chance of winning.
package difficulty

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/MJE43/racing-ai/internal/opponent"
)

const (
	msgNeedMoreRaces = "Play more races to get personalized recommendations"
	msgCollisions    = "Try to avoid collisions by improving your steering control"
	msgNitro         = "Use nitro more strategically to gain speed advantage"
	msgUpgradeSpeed  = "Upgrade your car's speed for better performance"
	msgUpgradeHandle = "Improve your car's handling for better control"
	msgKeepItUp      = "Keep up the great work!"
)

// Summary holds history averages
type Summary struct {
	Races         int     `json:"races"`
	WinRate       float64 `json:"win_rate"`
	AvgTime       float64 `json:"avg_time"`
	AvgCollisions float64 `json:"avg_collisions"`
	AvgNitroUsed  float64 `json:"avg_nitro_used"`
}

// Status is the current recommendation for a player
type Status struct {
	RecommendedDifficulty opponent.Tier `json:"recommended_difficulty"`
	HistoryCount          int           `json:"performance_history_count"`
}

// Engine belongs to exactly one player and is not safe for concurrent use.
// Share engines between goroutines through a Registry.
type Engine struct {
	cfg       Config
	history   *History
	predictor Predictor
	logger    *log.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithConfig replaces the default tuning
func WithConfig(cfg Config) Option {
	return func(e *Engine) {
		e.cfg = cfg
	}
}

// WithLogger sets the logger used for training events
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// NewEngine creates an engine with an empty history
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		cfg:    DefaultConfig(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.history = NewHistory(e.cfg.HistoryCapacity)
	return e
}

// RecordPerformance appends a race result
func (e *Engine) RecordPerformance(r Record) {
	e.history.Push(r)
}

// History returns the engine's history
func (e *Engine) History() *History {
	return e.history
}

// Predictor returns the engine's predictor
func (e *Engine) Predictor() *Predictor {
	return &e.predictor
}

// Summary averages the whole retained history
func (e *Engine) Summary() Summary {
	return summarize(e.history.Records())
}

// CalculateDifficulty recommends a tier from the whole retained history.
// Fewer than MinRecords races yields medium.
func (e *Engine) CalculateDifficulty() opponent.Tier {
	tier, err := e.recommend()
	if err != nil {
		return opponent.TierMedium
	}
	return tier
}

func (e *Engine) recommend() (opponent.Tier, error) {
	if e.history.Len() < e.cfg.MinRecords {
		return opponent.TierMedium, ErrInsufficientHistory
	}

	s := e.Summary()
	th := e.cfg.Thresholds

	switch {
	case s.WinRate > th.HardWinRate && s.AvgCollisions < th.HardMaxCollisions:
		return opponent.TierHard, nil
	case s.WinRate > th.MediumWinRate && s.AvgCollisions < th.MediumMaxCollisions:
		return opponent.TierMedium, nil
	case s.WinRate < th.EasyWinRate || s.AvgCollisions > th.EasyMinCollisions:
		return opponent.TierEasy, nil
	default:
		return opponent.TierMedium, nil
	}
}

// PredictPerformance returns the win probability in [0, 1] for the given
// level and car. The model trains once, the first time TrainThreshold races
// are available; until then, and after a failed fit, it returns 0.5.
func (e *Engine) PredictPerformance(level int, car CarStats) float64 {
	if !e.predictor.Trained() && e.history.Len() >= e.cfg.TrainThreshold {
		if err := e.predictor.Fit(e.history.Records()); err != nil {
			e.logger.Warn("predictor training failed", "records", e.history.Len(), "attempt", e.predictor.Attempts(), "err", err)
		} else {
			e.logger.Debug("predictor trained", "records", e.history.Len())
		}
	}

	return e.predictor.Predict(level, car)
}

// Recommendations returns coaching hints based on the most recent races.
// playerStats is accepted for hosts that send it and is not consulted.
func (e *Engine) Recommendations(playerStats map[string]any, car CarStats) []string {
	c := e.cfg.Coaching
	if e.history.Len() < c.MinRecords {
		return []string{msgNeedMoreRaces}
	}

	s := summarize(e.history.Recent(c.Window))

	var out []string
	if s.AvgCollisions > c.MaxCollisions {
		out = append(out, msgCollisions)
	}
	if s.AvgNitroUsed < c.MinNitroUsed {
		out = append(out, msgNitro)
	}
	if s.WinRate < c.UpgradeWinRate {
		if car.Speed < c.SpeedBar {
			out = append(out, msgUpgradeSpeed)
		}
		if car.Handling < c.HandlingBar {
			out = append(out, msgUpgradeHandle)
		}
	}

	if len(out) == 0 {
		return []string{msgKeepItUp}
	}
	return out
}

// Status reports the recommended tier and history size
func (e *Engine) Status() Status {
	return Status{
		RecommendedDifficulty: e.CalculateDifficulty(),
		HistoryCount:          e.history.Len(),
	}
}

func summarize(records []Record) Summary {
	s := Summary{Races: len(records)}
	if len(records) == 0 {
		return s
	}

	for _, r := range records {
		s.WinRate += r.label()
		s.AvgTime += r.Time
		s.AvgCollisions += float64(r.Collisions)
		s.AvgNitroUsed += r.NitroUsed
	}

	n := float64(len(records))
	s.WinRate /= n
	s.AvgTime /= n
	s.AvgCollisions /= n
	s.AvgNitroUsed /= n
	return s
}
