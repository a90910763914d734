package selection

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/gscanlon21/a-workout-a-day-sub003/internal/telemetry/tracing"
	"github.com/gscanlon21/a-workout-a-day-sub003/internal/workout/catalog"
	"github.com/gscanlon21/a-workout-a-day-sub003/internal/workout/gating"
	"github.com/gscanlon21/a-workout-a-day-sub003/internal/workout/targets"
	"github.com/gscanlon21/a-workout-a-day-sub003/internal/workout/users"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// Pick is one selected variation with the user's standing at selection time
// and the adjacent-progression hints for the renderer.
type Pick struct {
	Candidate   catalog.Candidate
	Intensity   catalog.IntensityLevel
	Proficiency catalog.Proficiency
	// Progression is the user's exercise progression the pick was made at.
	Progression int
	// Kilos is the load the user last used for this variation, zero if none.
	Kilos int
	// EasierVariationID / HarderVariationID point at the same exercise's
	// variations in the adjacent progression ranges, when they exist.
	EasierVariationID *int64
	HarderVariationID *int64
}

// SectionResult is the outcome of one section pass. Gaps lists muscle groups
// whose RDA was still open when the candidate pool ran dry; they are catalog
// coverage gaps, not errors.
type SectionResult struct {
	Picks []Pick
	Gaps  []catalog.MuscleGroups
}

type proficiencyGetter interface {
	Proficiency(ctx context.Context, variationID int64, level catalog.IntensityLevel) (catalog.Proficiency, error)
}

// Pipeline runs section passes for one user's selection. It is built fresh
// per selection run and holds no cross-user state.
type Pipeline struct {
	gate          *gating.Gate
	picker        *Picker
	proficiencies proficiencyGetter

	exStates  map[int64]users.ExerciseState
	varStates map[int64]users.VariationState

	secondaryWeight  float64
	stabilizerWeight float64
	timeToRepFactor  float64

	now time.Time
}

type NewPipelineParams struct {
	Gate             *gating.Gate
	Picker           *Picker
	Proficiencies    proficiencyGetter
	ExerciseStates   map[int64]users.ExerciseState
	VariationStates  map[int64]users.VariationState
	SecondaryWeight  float64
	StabilizerWeight float64
	TimeToRepFactor  float64
	Now              time.Time
}

func NewPipeline(params NewPipelineParams) *Pipeline {
	return &Pipeline{
		gate:             params.Gate,
		picker:           params.Picker,
		proficiencies:    params.Proficiencies,
		exStates:         params.ExerciseStates,
		varStates:        params.VariationStates,
		secondaryWeight:  params.SecondaryWeight,
		stabilizerWeight: params.StabilizerWeight,
		timeToRepFactor:  params.TimeToRepFactor,
		now:              params.Now,
	}
}

// SelectSection picks variations for one section, working through the active
// muscle groups hungriest-first and decrementing the shared RDA/TUL budgets
// with every pick. Candidates must already be narrowed to the section.
func (p *Pipeline) SelectSection(
	ctx context.Context,
	crit Criteria,
	candidates []catalog.Candidate,
	budget *targets.Targets,
) (_ SectionResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "selection.pipeline.section")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("section", crit.Section.String()))
	span.SetAttributes(attribute.Int("candidates", len(candidates)))

	var result SectionResult
	for _, muscle := range budget.ByRemainingRDA() {
		for budget.RDA[muscle] > 0 && len(result.Picks) < crit.MaxExercises {
			eligible := p.eligibleFor(muscle, candidates, crit)
			chosen, ok := p.pickWithBackoff(muscle, eligible, crit)
			if !ok {
				// not fatal: the section just comes up short for this muscle
				log.Debugf("no eligible candidates for %s in %s section", muscle, crit.Section)
				result.Gaps = append(result.Gaps, muscle)
				break
			}

			pick, err := p.buildPick(ctx, chosen, crit, candidates)
			if errors.Is(err, catalog.ErrProficiencyNotFound) {
				// catalog gap: no prescription at this intensity, drop the
				// variation from this pass and retry the muscle
				log.Warnf("variation %d has no %s proficiency, skipping",
					chosen.Variation.ID, crit.Intensity)
				crit = crit.WithExcludedVariations(chosen.Variation.ID)
				continue
			}
			if err != nil {
				return SectionResult{}, err
			}

			result.Picks = append(result.Picks, pick)
			p.decrementBudget(budget, chosen.Variation, pick.Proficiency)

			crit = crit.WithExcludedVariations(chosen.Variation.ID)
			if crit.UniqueExercises {
				crit = crit.WithExcludedExercises(chosen.Exercise.ID)
			}
			crit = crit.WithExcludedGroups(chosen.Exercise.Groups)
		}
		if len(result.Picks) >= crit.MaxExercises {
			break
		}
	}

	span.SetAttributes(attribute.Int("picks", len(result.Picks)))
	return result, nil
}

// Excluded returns the criteria carrying this result's picks as exclusions,
// seeding the next section pass.
func (r SectionResult) Excluded(crit Criteria) Criteria {
	for _, pick := range r.Picks {
		crit = crit.WithExcludedVariations(pick.Candidate.Variation.ID)
		crit = crit.WithExcludedExercises(pick.Candidate.Exercise.ID)
		crit = crit.WithExcludedGroups(pick.Candidate.Exercise.Groups)
	}
	return crit
}

func (p *Pipeline) progressionFor(exerciseID int64) int {
	if state, ok := p.exStates[exerciseID]; ok {
		return state.Progression
	}
	return users.DefaultProgression
}

// eligibleFor applies the hard filters for one target muscle group.
func (p *Pipeline) eligibleFor(muscle catalog.MuscleGroups, candidates []catalog.Candidate, crit Criteria) []catalog.Candidate {
	var eligible []catalog.Candidate
	for _, c := range candidates {
		if c.Exercise.Disabled || c.Variation.Disabled {
			continue
		}
		if !c.Variation.Strengthens.HasAny(muscle) {
			continue
		}
		if crit.ExerciseExcluded(c.Exercise.ID) || crit.VariationExcluded(c.Variation.ID) {
			continue
		}
		if c.Exercise.Groups.Overlaps(crit.ExcludedGroups) {
			continue
		}
		if !c.Variation.Equipment.SatisfiedBy(crit.OwnedEquipment) {
			continue
		}
		if crit.Patterns != 0 && !c.Variation.Movements.HasAny(crit.Patterns) {
			continue
		}
		if crit.MobilityJoints != 0 && !c.Variation.MobilityJoints.HasAny(crit.MobilityJoints) {
			continue
		}
		if state, ok := p.exStates[c.Exercise.ID]; ok && state.Ignored {
			continue
		}
		if state, ok := p.varStates[c.Variation.ID]; ok && state.Ignored {
			continue
		}
		if !crit.IgnoreProgression && !c.Link.ContainsProgression(p.progressionFor(c.Exercise.ID)) {
			continue
		}
		if !p.gate.Eligible(p.exStates, c.Exercise.ID) {
			continue
		}
		eligible = append(eligible, c)
	}
	return eligible
}

// pickWithBackoff applies the at-least-X-unique-muscles policy, relaxing X by
// one until a candidate qualifies, down to a floor of 1, then draws.
func (p *Pipeline) pickWithBackoff(muscle catalog.MuscleGroups, eligible []catalog.Candidate, crit Criteria) (catalog.Candidate, bool) {
	for x := crit.UniqueMuscleMin; x >= 1; x-- {
		var pool []catalog.Candidate
		for _, c := range eligible {
			worked := c.Variation.AllMuscles().Intersect(crit.RotationMuscles)
			if !worked.HasAny(muscle) {
				worked = worked.Union(muscle)
			}
			if worked.Count() >= x {
				pool = append(pool, c)
			}
		}
		if len(pool) == 0 {
			continue
		}

		weights := make([]float64, len(pool))
		for i, c := range pool {
			var exState *users.ExerciseState
			if s, ok := p.exStates[c.Exercise.ID]; ok {
				exState = &s
			}
			var varState *users.VariationState
			if s, ok := p.varStates[c.Variation.ID]; ok {
				varState = &s
			}
			weights[i] = Weight(c, exState, varState, p.now, crit.CoreMultiplier)
		}

		idx := p.picker.Pick(weights)
		if idx < 0 {
			continue
		}
		return pool[idx], true
	}
	return catalog.Candidate{}, false
}

func (p *Pipeline) buildPick(ctx context.Context, chosen catalog.Candidate, crit Criteria, candidates []catalog.Candidate) (Pick, error) {
	prof, err := p.proficiencies.Proficiency(ctx, chosen.Variation.ID, crit.Intensity)
	if err != nil {
		return Pick{}, fmt.Errorf("proficiency for variation %d: %w", chosen.Variation.ID, err)
	}

	pick := Pick{
		Candidate:   chosen,
		Intensity:   crit.Intensity,
		Proficiency: prof,
		Progression: p.progressionFor(chosen.Exercise.ID),
	}
	if state, ok := p.varStates[chosen.Variation.ID]; ok {
		pick.Kilos = state.Kilos
	}
	pick.EasierVariationID, pick.HarderVariationID = adjacentVariations(candidates, chosen)
	return pick, nil
}

// decrementBudget charges every muscle the variation touches against the
// RDA/TUL budgets, secondary and stabilizer involvement at reduced weight.
func (p *Pipeline) decrementBudget(budget *targets.Targets, v catalog.Variation, prof catalog.Proficiency) {
	vol := prof.Volume(p.timeToRepFactor)
	for _, m := range v.Strengthens.Split() {
		budget.RDA[m] -= vol
		budget.TUL[m] -= vol
	}
	for _, m := range v.Stretches.Split() {
		budget.RDA[m] -= vol * p.secondaryWeight
		budget.TUL[m] -= vol * p.secondaryWeight
	}
	for _, m := range v.Stabilizes.Split() {
		budget.RDA[m] -= vol * p.stabilizerWeight
		budget.TUL[m] -= vol * p.stabilizerWeight
	}
}

// adjacentVariations finds the same exercise's variations in the progression
// ranges immediately below and above the chosen link.
func adjacentVariations(candidates []catalog.Candidate, chosen catalog.Candidate) (easier, harder *int64) {
	var siblings []catalog.ExerciseVariation
	for _, c := range candidates {
		if c.Exercise.ID == chosen.Exercise.ID && c.Variation.ID != chosen.Variation.ID {
			siblings = append(siblings, c.Link)
		}
	}
	sort.Slice(siblings, func(i, j int) bool {
		return siblings[i].ProgressionMin < siblings[j].ProgressionMin
	})

	for i := range siblings {
		link := siblings[i]
		if link.ProgressionMin < chosen.Link.ProgressionMin {
			id := link.VariationID
			easier = &id // keeps advancing, ends at the closest lower range
		}
		if link.ProgressionMin > chosen.Link.ProgressionMin && harder == nil {
			id := link.VariationID
			harder = &id
		}
	}
	return easier, harder
}
