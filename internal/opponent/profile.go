// Package opponent decides how AI-driven opponent cars behave each tick.
package opponent

import "fmt"

// Tier is one of the four named difficulty levels
type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
	TierExpert Tier = "expert"
)

// Tiers lists every tier from easiest to hardest
var Tiers = []Tier{TierEasy, TierMedium, TierHard, TierExpert}

const defaultBaseSpeed = 100.0

type tierParams struct {
	reactionTime float64
	aggression   float64
	skillLevel   float64
}

var tierTable = map[Tier]tierParams{
	TierEasy:   {reactionTime: 0.8, aggression: 0.3, skillLevel: 0.7},
	TierMedium: {reactionTime: 0.5, aggression: 0.5, skillLevel: 0.85},
	TierHard:   {reactionTime: 0.3, aggression: 0.7, skillLevel: 1.0},
	TierExpert: {reactionTime: 0.15, aggression: 0.9, skillLevel: 1.2},
}

// ParseTier matches tier names exactly
func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if _, ok := tierTable[t]; !ok {
		return TierMedium, fmt.Errorf("%w: %q", ErrUnknownTier, s)
	}
	return t, nil
}

// Profile is the fixed parameter set of one AI driver. Every derived field
// is a function of Tier; build a new Profile to change tier.
type Profile struct {
	Tier         Tier    `json:"difficulty"`
	Level        int     `json:"level"`
	BaseSpeed    float64 `json:"base_speed"`
	ReactionTime float64 `json:"reaction_time"`
	Aggression   float64 `json:"aggression"`
	SkillLevel   float64 `json:"skill_level"`
}

// NewProfile builds a profile. Unknown tiers get medium's values and a
// level below 1 is raised to 1.
func NewProfile(tier string, level int) Profile {
	t, err := ParseTier(tier)
	if err != nil {
		t = TierMedium
	}
	if level < 1 {
		level = 1
	}

	p := tierTable[t]
	return Profile{
		Tier:         t,
		Level:        level,
		BaseSpeed:    defaultBaseSpeed,
		ReactionTime: p.reactionTime,
		Aggression:   p.aggression,
		SkillLevel:   p.skillLevel,
	}
}
