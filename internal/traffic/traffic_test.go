package traffic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MJE43/racing-ai/internal/engine"
)

func TestGenerateTrafficCounts(t *testing.T) {
	tests := []struct {
		density  Density
		count    int
		variance float64
	}{
		{DensityLow, 5, 20},
		{DensityMedium, 10, 30},
		{DensityHigh, 15, 40},
		{Density("gridlock"), 10, 30},
	}

	for _, tt := range tests {
		t.Run(string(tt.density), func(t *testing.T) {
			sim := NewSimulator(engine.NewMulberry32(1))
			vehicles := sim.GenerateTraffic(5000, tt.density)
			require.Len(t, vehicles, tt.count)

			for _, v := range vehicles {
				assert.GreaterOrEqual(t, v.Position, 0.0)
				assert.Less(t, v.Position, 5000.0)
				assert.Contains(t, []int{0, 1, 2}, v.Lane)
				assert.Contains(t, vehicleTypes, v.Type)
				assert.GreaterOrEqual(t, v.Speed, 60-tt.variance)
				assert.Less(t, v.Speed, 100+tt.variance)
			}
		})
	}
}

func TestGenerateTrafficLowDensity(t *testing.T) {
	vehicles := NewSimulator(engine.NewStream("seed", "traffic", 0)).GenerateTraffic(5000, DensityLow)

	require.Len(t, vehicles, 5)
	for i, v := range vehicles {
		assert.Equal(t, "traffic_"+string(rune('0'+i)), v.ID)
	}
}

func TestGenerateTrafficExactDraws(t *testing.T) {
	// position, base speed, variance, lane, type
	sim := NewSimulator(engine.NewSequence(0.5, 0.5, 0.75, 0.9, 0.4))
	vehicles := sim.GenerateTraffic(1000, DensityLow)

	assert.Equal(t, Vehicle{ID: "traffic_0", Position: 500, Speed: 90, Lane: 2, Type: TypeTruck}, vehicles[0])
}

func TestGenerateTrafficDeterministic(t *testing.T) {
	a := NewSimulator(engine.NewStream("race", "traffic", 0)).GenerateTraffic(8000, DensityHigh)
	b := NewSimulator(engine.NewStream("race", "traffic", 0)).GenerateTraffic(8000, DensityHigh)

	assert.Equal(t, a, b)
}

func TestUpdateTrafficMovesWithoutLaneChanges(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LaneChangeProbability = 0
	sim := NewSimulator(engine.NewMulberry32(3), WithConfig(cfg))

	vehicles := sim.GenerateTraffic(5000, DensityMedium)
	before := make([]Vehicle, len(vehicles))
	copy(before, vehicles)

	out := sim.UpdateTraffic(vehicles, 1.0)
	require.Len(t, out, len(before))

	for i := range out {
		assert.Equal(t, before[i].Position+before[i].Speed, vehicles[i].Position)
		assert.Equal(t, before[i].Lane, vehicles[i].Lane)
		assert.Equal(t, before[i].Speed, vehicles[i].Speed)
	}
	assert.Same(t, &vehicles[0], &out[0])
}

func TestUpdateTrafficLaneChanges(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LaneChangeProbability = 1

	tests := []struct {
		name string
		lane int
		dir  float64
		want int
	}{
		{"right from middle", 1, 0.9, 2},
		{"left from middle", 1, 0.1, 0},
		{"clamped at right edge", 2, 0.9, 2},
		{"clamped at left edge", 0, 0.1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim := NewSimulator(engine.NewSequence(0, tt.dir), WithConfig(cfg))
			vehicles := []Vehicle{{ID: "traffic_0", Position: 10, Speed: 80, Lane: tt.lane, Type: TypeCar}}

			sim.UpdateTraffic(vehicles, 0.5)
			assert.Equal(t, tt.want, vehicles[0].Lane)
			assert.Equal(t, 50.0, vehicles[0].Position)
		})
	}
}

func TestUpdateTrafficEmpty(t *testing.T) {
	sim := NewSimulator(engine.NewMulberry32(1))
	assert.Empty(t, sim.UpdateTraffic(nil, 0.016))
}

func TestParseDensity(t *testing.T) {
	d, err := ParseDensity("high")
	require.NoError(t, err)
	assert.Equal(t, DensityHigh, d)

	d, err = ParseDensity("HIGH")
	require.ErrorIs(t, err, ErrUnknownDensity)
	assert.Equal(t, DensityMedium, d)

	d, err = ParseDensity("rush-hour")
	require.ErrorIs(t, err, ErrUnknownDensity)
	assert.Equal(t, DensityMedium, d)
}
