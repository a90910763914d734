package selection

import (
	"math/rand"
	"time"

	"github.com/gscanlon21/a-workout-a-day-sub003/internal/workout/catalog"
	"github.com/gscanlon21/a-workout-a-day-sub003/internal/workout/gating"
	"github.com/gscanlon21/a-workout-a-day-sub003/internal/workout/users"
)

// stalenessCapDays bounds how much an old last-seen date can boost a pick, so
// one long-forgotten variation does not dominate the draw forever.
const stalenessCapDays = 60

// Picker draws a weighted random candidate. The RNG is injected so selection
// runs replay deterministically under a fixed seed.
type Picker struct {
	rng *rand.Rand
}

func NewPicker(rng *rand.Rand) *Picker {
	return &Picker{rng: rng}
}

// Weight computes the draw weight of one candidate: variations unseen the
// longest weigh the most, core-flagged exercises get the configured boost,
// and variations inside a refresh block are softly penalized.
func Weight(
	c catalog.Candidate,
	exState *users.ExerciseState,
	varState *users.VariationState,
	now time.Time,
	coreMultiplier float64,
) float64 {
	staleDays := float64(stalenessCapDays) // never seen weighs like maximally stale
	if varState != nil && varState.LastSeen != nil {
		staleDays = now.Sub(*varState.LastSeen).Hours() / 24
		if staleDays > stalenessCapDays {
			staleDays = stalenessCapDays
		}
		if staleDays < 0 {
			staleDays = 0
		}
	}

	w := 1 + staleDays
	if c.Exercise.Core && coreMultiplier > 0 {
		w *= coreMultiplier
	}
	w *= gating.RefreshPenalty(exState, varState, now)
	return w
}

// Pick draws an index from candidates proportionally to weights. Candidates
// and weights must have equal length; returns -1 on an empty draw.
func (p *Picker) Pick(weights []float64) int {
	if len(weights) == 0 {
		return -1
	}

	var total float64
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return p.rng.Intn(len(weights))
	}

	draw := p.rng.Float64() * total
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		draw -= w
		if draw < 0 {
			return i
		}
	}
	return len(weights) - 1
}
