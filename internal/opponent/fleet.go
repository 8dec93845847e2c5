package opponent

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MJE43/racing-ai/internal/engine"
)

const (
	defaultOpponentCount = 3
	streamScope          = "opponent"
)

// mixedTiers is the rotation used when a race asks for medium opponents
var mixedTiers = []Tier{TierEasy, TierMedium, TierHard}

// Member is one opponent of a Fleet
type Member struct {
	ID             string
	PositionOffset float64
	Controller     *Controller
}

// OpponentDecision is a Decision tagged with the opponent it belongs to
type OpponentDecision struct {
	ID             string  `json:"id"`
	Difficulty     Tier    `json:"difficulty"`
	PositionOffset float64 `json:"position_offset"`
	Decision
}

// Fleet is the set of AI opponents in one race. Each member owns a
// dedicated random stream so decisions do not depend on scheduling.
type Fleet struct {
	members []Member
}

// NewFleet builds count opponents. A medium race mixes easy, medium and hard
// drivers; any other tier is used for every opponent, and an unknown tier
// gives every opponent medium.
func NewFleet(count int, tier string, level int, seed string, opts ...Option) *Fleet {
	if count <= 0 {
		count = defaultOpponentCount
	}

	base, err := ParseTier(tier)
	mixed := err == nil && base == TierMedium

	f := &Fleet{members: make([]Member, 0, count)}
	for i := 0; i < count; i++ {
		t := base
		if mixed {
			t = mixedTiers[i%len(mixedTiers)]
		}

		ctrl := New(string(t), level, engine.NewStream(seed, streamScope, uint64(i)), opts...)
		f.members = append(f.members, Member{
			ID:             fmt.Sprintf("opponent_%d", i),
			PositionOffset: float64(i) * ctrl.cfg.PositionOffset,
			Controller:     ctrl,
		})
	}
	return f
}

// Members returns the fleet's opponents in id order
func (f *Fleet) Members() []Member {
	return f.members
}

// Len returns the number of opponents
func (f *Fleet) Len() int {
	return len(f.members)
}

// Decide steps every opponent concurrently. Opponent i sees the race from
// its own offset: further along the track and closer to the player.
func (f *Fleet) Decide(ctx context.Context, s Situation) ([]OpponentDecision, error) {
	out := make([]OpponentDecision, len(f.members))

	g, ctx := errgroup.WithContext(ctx)
	for i := range f.members {
		i := i
		m := f.members[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			local := s
			local.TrackPosition += m.PositionOffset
			local.PlayerDistance -= m.PositionOffset

			out[i] = OpponentDecision{
				ID:             m.ID,
				Difficulty:     m.Controller.profile.Tier,
				PositionOffset: m.PositionOffset,
				Decision:       m.Controller.Step(local),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fleet decide: %w", err)
	}
	return out, nil
}
