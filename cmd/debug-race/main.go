// Command debug-race walks a seeded season through every simulation
// component and prints the per-race outcome. Runs with the same -seed are
// identical.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/MJE43/racing-ai/internal/config"
	"github.com/MJE43/racing-ai/internal/difficulty"
	"github.com/MJE43/racing-ai/internal/engine"
	"github.com/MJE43/racing-ai/internal/opponent"
	"github.com/MJE43/racing-ai/internal/pathing"
	"github.com/MJE43/racing-ai/internal/traffic"
)

const (
	trackLength = 5000.0
	tickDelta   = 0.016
	playerID    = "debug-player"
)

type raceReport struct {
	Race             int           `json:"race"`
	Tier             opponent.Tier `json:"tier"`
	Won              bool          `json:"won"`
	Collisions       int           `json:"collisions"`
	Recommended      opponent.Tier `json:"recommended_difficulty"`
	WinProbability   float64       `json:"win_probability"`
	Recommendations  []string      `json:"recommendations"`
	AvgOpponentSpeed float64       `json:"avg_opponent_speed"`
	TrafficLeader    float64       `json:"traffic_leader_position"`
}

type seasonReport struct {
	RunID string       `json:"run_id"`
	Seed  string       `json:"seed"`
	Races []raceReport `json:"races"`
}

func main() {
	var (
		configPath = flag.String("config", "", "JSON tuning file (defaults when empty)")
		seed       = flag.String("seed", "", "season seed (random when empty)")
		tier       = flag.String("tier", "", "force opponent tier instead of the recommendation")
		level      = flag.Int("level", 1, "track level")
		density    = flag.String("density", "medium", "traffic density: low, medium or high")
		opponents  = flag.Int("opponents", 3, "opponents per race")
		races      = flag.Int("races", 8, "races in the season")
		ticks      = flag.Int("ticks", 120, "decision ticks per race")
		verbose    = flag.Bool("v", false, "log every tick")
	)
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "debug-race",
	})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	runID := uuid.NewString()
	if *seed == "" {
		*seed = runID
	}
	logger = logger.With("run_id", runID)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load config", "err", err)
	}

	d, err := traffic.ParseDensity(*density)
	if err != nil {
		logger.Warn("falling back to medium traffic", "err", err)
	}

	report, err := runSeason(context.Background(), logger, cfg, season{
		seed:      *seed,
		tier:      *tier,
		level:     *level,
		density:   d,
		opponents: *opponents,
		races:     *races,
		ticks:     *ticks,
	})
	if err != nil {
		logger.Fatal("season failed", "err", err)
	}
	report.RunID = runID

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		logger.Fatal("failed to write report", "err", err)
	}
}

type season struct {
	seed      string
	tier      string
	level     int
	density   traffic.Density
	opponents int
	races     int
	ticks     int
}

func runSeason(ctx context.Context, logger *log.Logger, cfg config.Config, s season) (*seasonReport, error) {
	registry := difficulty.NewRegistry(func() *difficulty.Engine {
		return difficulty.NewEngine(
			difficulty.WithConfig(cfg.Difficulty),
			difficulty.WithLogger(logger),
		)
	}, difficulty.WithRegistryLogger(logger))
	defer registry.Remove(playerID)

	sim := traffic.NewSimulator(engine.NewStream(s.seed, "traffic", 0),
		traffic.WithConfig(cfg.Traffic), traffic.WithLogger(logger))
	player := engine.NewStream(s.seed, "player", 0)

	out := &seasonReport{Seed: s.seed}
	for race := 0; race < s.races; race++ {
		var current difficulty.Status
		registry.Peek(playerID, func(e *difficulty.Engine) { current = e.Status() })
		raceTier := string(current.RecommendedDifficulty)
		if raceTier == "" {
			raceTier = string(opponent.TierMedium)
		}
		if s.tier != "" {
			raceTier = s.tier
		}

		fleet := opponent.NewFleet(s.opponents, raceTier, s.level, fmt.Sprintf("%s/race/%d", s.seed, race),
			opponent.WithConfig(cfg.Opponent), opponent.WithPlanner(cfg.Pathing))
		vehicles := sim.GenerateTraffic(trackLength, s.density)

		waypoint := fleet.Members()[0].Controller.CalculatePath(
			pathing.Point{X: 0, Y: 0},
			pathing.Point{X: 100, Y: 0},
			[]pathing.Obstacle{{X: 50, Y: 0, Radius: 10}},
		)
		logger.Debug("opening waypoint", "race", race, "x", waypoint.X, "y", waypoint.Y)

		var speedSum float64
		var decisions int
		collisions := 0
		for tick := 0; tick < s.ticks; tick++ {
			situation := scriptedSituation(tick, player)
			result, err := fleet.Decide(ctx, situation)
			if err != nil {
				return nil, fmt.Errorf("race %d tick %d: %w", race, tick, err)
			}
			for _, d := range result {
				speedSum += d.Speed
				decisions++
				if d.Action.Brake && situation.State.ObstacleAheadDistance < 30 {
					collisions++
				}
				logger.Debug("decision", "race", race, "tick", tick, "opponent", d.ID, "speed", d.Speed, "action", d.Action)
			}
			sim.UpdateTraffic(vehicles, tickDelta)
		}

		record := difficulty.NewRecord()
		record.Level = s.level
		record.Won = engine.Chance(player, 0.55)
		record.Time = engine.Uniform(player, 80, 140)
		record.Collisions = collisions / max(1, s.opponents*10)
		record.NitroUsed = engine.Uniform(player, 0, 100)
		record.CarSpeed = 100 + float64(engine.Intn(player, 4))*20
		record.CarHandling = 50 + float64(engine.Intn(player, 3))*10

		rr := raceReport{
			Race:       race,
			Tier:       opponent.NewProfile(raceTier, s.level).Tier,
			Won:        record.Won,
			Collisions: record.Collisions,
		}
		if decisions > 0 {
			rr.AvgOpponentSpeed = speedSum / float64(decisions)
		}
		for _, v := range vehicles {
			rr.TrafficLeader = math.Max(rr.TrafficLeader, v.Position)
		}

		car := difficulty.CarStats{Speed: record.CarSpeed, Handling: record.CarHandling, Acceleration: record.CarAcceleration}
		err := registry.With(playerID, func(e *difficulty.Engine) {
			e.RecordPerformance(record)
			rr.Recommended = e.CalculateDifficulty()
			rr.WinProbability = e.PredictPerformance(s.level, car)
			rr.Recommendations = e.Recommendations(nil, car)
		})
		if err != nil {
			return nil, err
		}

		logger.Info("race finished",
			"race", race,
			"tier", rr.Tier,
			"won", rr.Won,
			"next_tier", rr.Recommended,
			"win_probability", fmt.Sprintf("%.2f", rr.WinProbability),
		)
		out.Races = append(out.Races, rr)
	}

	return out, nil
}

// scriptedSituation sweeps the player from behind the pack to well ahead
// and drops an obstacle in front every 20 ticks.
func scriptedSituation(tick int, player engine.Source) opponent.Situation {
	state := opponent.NewSnapshot()
	if tick%20 == 0 {
		state.ObstacleAheadDistance = engine.Uniform(player, 10, 150)
		state.ObstacleLeft = engine.Chance(player, 0.5)
		state.ObstacleRight = !state.ObstacleLeft && engine.Chance(player, 0.5)
	}
	state.NitroAvailable = float64(tick % 101)

	return opponent.Situation{
		TrackPosition:   float64(tick) * 10,
		ObstaclesNearby: state.ObstacleAheadDistance < 100,
		PlayerDistance:  150 - float64(tick%60)*5,
		State:           state,
	}
}
