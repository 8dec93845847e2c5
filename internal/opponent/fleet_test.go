package opponent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFleetTiers(t *testing.T) {
	tests := []struct {
		name  string
		count int
		tier  string
		want  []Tier
	}{
		{"medium mixes tiers", 4, "medium", []Tier{TierEasy, TierMedium, TierHard, TierEasy}},
		{"hard is uniform", 2, "hard", []Tier{TierHard, TierHard}},
		{"unknown tier is uniform medium", 3, "bogus", []Tier{TierMedium, TierMedium, TierMedium}},
		{"miscased medium is unknown", 3, "Medium", []Tier{TierMedium, TierMedium, TierMedium}},
		{"default count", 0, "expert", []Tier{TierExpert, TierExpert, TierExpert}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFleet(tt.count, tt.tier, 2, "seed")
			require.Equal(t, len(tt.want), f.Len())
			for i, m := range f.Members() {
				assert.Equal(t, tt.want[i], m.Controller.Profile().Tier)
				assert.Equal(t, 2, m.Controller.Profile().Level)
			}
		})
	}
}

func TestNewFleetIDsAndOffsets(t *testing.T) {
	f := NewFleet(3, "hard", 1, "seed")
	members := f.Members()

	assert.Equal(t, "opponent_0", members[0].ID)
	assert.Equal(t, "opponent_2", members[2].ID)
	assert.Equal(t, 0.0, members[0].PositionOffset)
	assert.Equal(t, 50.0, members[1].PositionOffset)
	assert.Equal(t, 100.0, members[2].PositionOffset)
}

func TestFleetDecideDeterministic(t *testing.T) {
	s := Situation{TrackPosition: 1000, PlayerDistance: 75, State: Snapshot{ObstacleAheadDistance: 500, NitroAvailable: 80, ClearPath: true}}

	a := NewFleet(6, "medium", 3, "race-42")
	b := NewFleet(6, "medium", 3, "race-42")

	for tick := 0; tick < 20; tick++ {
		da, err := a.Decide(context.Background(), s)
		require.NoError(t, err)
		db, err := b.Decide(context.Background(), s)
		require.NoError(t, err)
		require.Equal(t, da, db, "tick %d", tick)
	}
}

func TestFleetDecideShape(t *testing.T) {
	f := NewFleet(3, "hard", 1, "seed")
	out, err := f.Decide(context.Background(), Situation{PlayerDistance: 60, State: NewSnapshot()})
	require.NoError(t, err)
	require.Len(t, out, 3)

	for i, d := range out {
		assert.Equal(t, f.Members()[i].ID, d.ID)
		assert.Equal(t, TierHard, d.Difficulty)
		assert.Equal(t, float64(i)*50, d.PositionOffset)
		assert.GreaterOrEqual(t, d.Speed, 50.0)
		assert.Equal(t, 0.7, d.Aggression)
	}

	// opponent_0 is behind the player and gets the catch-up boost,
	// opponent_2 is 40 units ahead and does not
	assert.GreaterOrEqual(t, out[0].Speed, 105*1.14-10)
	assert.Less(t, out[2].Speed, 115.0)
}

func TestFleetDecideCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFleet(3, "easy", 1, "seed").Decide(ctx, Situation{State: NewSnapshot()})
	require.ErrorIs(t, err, context.Canceled)
}
