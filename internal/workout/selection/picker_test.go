package selection_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/gscanlon21/a-workout-a-day-sub003/internal/workout/catalog"
	"github.com/gscanlon21/a-workout-a-day-sub003/internal/workout/selection"
	"github.com/gscanlon21/a-workout-a-day-sub003/internal/workout/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPicker_Pick_Empty(t *testing.T) {
	picker := selection.NewPicker(rand.New(rand.NewSource(1)))
	assert.Equal(t, -1, picker.Pick(nil))
	assert.Equal(t, -1, picker.Pick([]float64{}))
}

func TestPicker_Pick_Deterministic(t *testing.T) {
	weights := []float64{1, 5, 2, 8}

	first := selection.NewPicker(rand.New(rand.NewSource(42)))
	second := selection.NewPicker(rand.New(rand.NewSource(42)))

	// same seed, same draws
	for i := 0; i < 50; i++ {
		assert.Equal(t, first.Pick(weights), second.Pick(weights))
	}
}

func TestPicker_Pick_RespectsWeights(t *testing.T) {
	picker := selection.NewPicker(rand.New(rand.NewSource(7)))
	weights := []float64{1, 0, 99}

	counts := make(map[int]int)
	for i := 0; i < 1000; i++ {
		idx := picker.Pick(weights)
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, len(weights))
		counts[idx]++
	}

	// zero weight never drawn, heavy weight dominates
	assert.Zero(t, counts[1])
	assert.Greater(t, counts[2], counts[0])
	assert.Greater(t, counts[2], 900)
}

func TestPicker_Pick_NonpositiveTotalFallsBackUniform(t *testing.T) {
	picker := selection.NewPicker(rand.New(rand.NewSource(3)))
	weights := []float64{0, 0, 0}

	counts := make(map[int]int)
	for i := 0; i < 300; i++ {
		idx := picker.Pick(weights)
		require.GreaterOrEqual(t, idx, 0)
		counts[idx]++
	}
	// every index reachable even with no usable weights
	assert.Len(t, counts, 3)
}

func TestWeight_StalenessBoost(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	c := catalog.Candidate{Exercise: catalog.Exercise{ID: 1}}

	recent := now.AddDate(0, 0, -2)
	stale := now.AddDate(0, 0, -30)

	recentWeight := selection.Weight(c, nil, &users.VariationState{LastSeen: &recent}, now, 1)
	staleWeight := selection.Weight(c, nil, &users.VariationState{LastSeen: &stale}, now, 1)
	neverSeen := selection.Weight(c, nil, nil, now, 1)

	assert.Greater(t, staleWeight, recentWeight)
	// never seen weighs like maximally stale
	assert.Greater(t, neverSeen, staleWeight)
	assert.InDelta(t, 61, neverSeen, 1e-9)
}

func TestWeight_StalenessCapped(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	c := catalog.Candidate{Exercise: catalog.Exercise{ID: 1}}

	ancient := now.AddDate(-2, 0, 0)
	capped := selection.Weight(c, nil, &users.VariationState{LastSeen: &ancient}, now, 1)
	neverSeen := selection.Weight(c, nil, nil, now, 1)

	// two years unseen weighs the same as never seen
	assert.InDelta(t, neverSeen, capped, 1e-9)
}

func TestWeight_CoreMultiplier(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	plain := catalog.Candidate{Exercise: catalog.Exercise{ID: 1}}
	core := catalog.Candidate{Exercise: catalog.Exercise{ID: 2, Core: true}}

	plainWeight := selection.Weight(plain, nil, nil, now, 2)
	coreWeight := selection.Weight(core, nil, nil, now, 2)

	assert.InDelta(t, 2*plainWeight, coreWeight, 1e-9)
}

func TestWeight_RefreshBlockPenalized(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	c := catalog.Candidate{Exercise: catalog.Exercise{ID: 1}}

	future := now.AddDate(0, 0, 7)
	seen := now.AddDate(0, 0, -10)

	free := selection.Weight(c, nil, &users.VariationState{LastSeen: &seen}, now, 1)
	blocked := selection.Weight(c, nil, &users.VariationState{LastSeen: &seen, RefreshAfter: &future}, now, 1)

	assert.InDelta(t, free*0.25, blocked, 1e-9)
}
