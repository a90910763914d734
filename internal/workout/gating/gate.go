package gating

import (
	"fmt"
	"sync"
	"time"

	"github.com/gscanlon21/a-workout-a-day-sub003/internal/workout/catalog"
	"github.com/gscanlon21/a-workout-a-day-sub003/internal/workout/users"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

// Gate evaluates prerequisite edges against a user's exercise states.
//
// An exercise is held back only by prerequisites the user can actually work
// on: a prerequisite the user never saw does not gate (not yet gated), an
// ignored prerequisite cannot gate (the threshold would never be reached),
// and a prerequisite that is itself unreachable because its own chain cycles
// back resolves to visible rather than looping.
type Gate struct {
	prereqs map[int64][]catalog.Prerequisite

	cycleCounter prometheus.Counter

	mu           sync.Mutex
	loggedCycles map[cycleEdge]struct{}
}

// cycleEdge is the prerequisite edge that closed a cycle: exerciseID depends
// on requiresID, which is already on the traversal path.
type cycleEdge struct {
	exerciseID int64
	requiresID int64
}

func New(prereqs []catalog.Prerequisite, cycleCounter prometheus.Counter) *Gate {
	byExercise := make(map[int64][]catalog.Prerequisite)
	for _, p := range prereqs {
		byExercise[p.ExerciseID] = append(byExercise[p.ExerciseID], p)
	}
	return &Gate{
		prereqs:      byExercise,
		cycleCounter: cycleCounter,
		loggedCycles: make(map[cycleEdge]struct{}),
	}
}

// Eligible reports whether the exercise's gated variations are visible to a
// user with the given per-exercise states.
func (g *Gate) Eligible(states map[int64]users.ExerciseState, exerciseID int64) bool {
	return g.eligible(states, exerciseID, exerciseID, make(map[int64]bool))
}

func (g *Gate) eligible(states map[int64]users.ExerciseState, exerciseID, from int64, visiting map[int64]bool) bool {
	if visiting[exerciseID] {
		// prerequisite cycle: unresolved after one traversal resolves to
		// visible instead of looping
		g.reportCycle(cycleEdge{exerciseID: from, requiresID: exerciseID})
		return true
	}
	visiting[exerciseID] = true
	defer delete(visiting, exerciseID)

	for _, p := range g.prereqs[exerciseID] {
		state, seen := states[p.RequiresID]
		if !seen {
			continue // never exposed, not yet gated
		}
		if state.Ignored {
			continue // an ignored exercise cannot gate anything
		}
		if state.Progression >= p.Proficiency {
			continue
		}
		// threshold unmet: the gate holds only if the prerequisite is itself
		// attainable; an unattainable prerequisite (cyclic chain) cannot
		// reasonably hold anything back
		if g.eligible(states, p.RequiresID, exerciseID, visiting) {
			return false
		}
	}
	return true
}

func (g *Gate) reportCycle(edge cycleEdge) {
	if g.cycleCounter != nil {
		g.cycleCounter.Inc()
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	// logged once per edge so the catalog maintainer gets a signal for every
	// distinct cycle without the logs flooding on every selection
	if _, ok := g.loggedCycles[edge]; ok {
		return
	}
	g.loggedCycles[edge] = struct{}{}
	log.Warnf("prerequisite cycle detected at edge %d requires %d, treating as visible",
		edge.exerciseID, edge.requiresID)
}

// RefreshPenalty returns a pick-weight multiplier for a variation inside a
// keep-it-the-same block. The penalty discourages reselection without hard
// excluding it, so thin catalogs still fill their sections.
func RefreshPenalty(exState *users.ExerciseState, varState *users.VariationState, now time.Time) float64 {
	if exState != nil && exState.InRefreshBlock(now) {
		return 0.25
	}
	if varState != nil && varState.InRefreshBlock(now) {
		return 0.25
	}
	return 1
}

// Describe is a debugging helper: a human readable summary of why an exercise
// is or is not gated for the given states.
func (g *Gate) Describe(states map[int64]users.ExerciseState, exerciseID int64) string {
	if g.Eligible(states, exerciseID) {
		return fmt.Sprintf("exercise %d: eligible", exerciseID)
	}
	for _, p := range g.prereqs[exerciseID] {
		state, seen := states[p.RequiresID]
		if seen && !state.Ignored && state.Progression < p.Proficiency {
			return fmt.Sprintf(
				"exercise %d: gated by exercise %d (progression %d < required %d)",
				exerciseID, p.RequiresID, state.Progression, p.Proficiency,
			)
		}
	}
	return fmt.Sprintf("exercise %d: gated", exerciseID)
}
