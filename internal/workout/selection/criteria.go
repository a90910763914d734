package selection

import (
	"github.com/gscanlon21/a-workout-a-day-sub003/internal/workout/catalog"
)

// Criteria is the immutable configuration of one section pass. Every With*
// function returns an adjusted copy, so composing criteria can never produce
// order-dependent mutations of a shared builder.
type Criteria struct {
	Section        catalog.Section
	Intensity      catalog.IntensityLevel
	OwnedEquipment catalog.Equipment

	// RotationMuscles is the day's target muscle set, used by the
	// at-least-X-unique-muscles policy.
	RotationMuscles catalog.MuscleGroups
	Patterns        catalog.MovementPatterns
	MobilityJoints  catalog.Joints

	excludedExercises  map[int64]struct{}
	excludedVariations map[int64]struct{}
	ExcludedGroups     catalog.ExerciseGroups

	// IgnoreProgression lifts the progression-range constraint, used for
	// prerequisite and easier/harder previews.
	IgnoreProgression bool
	// UniqueExercises enforces at most one variation per exercise within the
	// resulting workout.
	UniqueExercises bool
	// UniqueMuscleMin is the starting X of the unique-muscle backoff.
	UniqueMuscleMin int
	// MaxExercises caps how many variations this pass picks.
	MaxExercises int
	// CoreMultiplier boosts the pick weight of core-flagged exercises.
	CoreMultiplier float64
}

func NewCriteria(section catalog.Section, intensity catalog.IntensityLevel) Criteria {
	return Criteria{
		Section:         section,
		Intensity:       intensity,
		UniqueExercises: true,
		UniqueMuscleMin: 1,
		MaxExercises:    1,
		CoreMultiplier:  1,
	}
}

func (c Criteria) WithEquipment(owned catalog.Equipment) Criteria {
	c.OwnedEquipment = owned
	return c
}

func (c Criteria) WithRotationMuscles(muscles catalog.MuscleGroups) Criteria {
	c.RotationMuscles = muscles
	return c
}

func (c Criteria) WithPatterns(patterns catalog.MovementPatterns) Criteria {
	c.Patterns = patterns
	return c
}

func (c Criteria) WithMobilityJoints(joints catalog.Joints) Criteria {
	c.MobilityJoints = joints
	return c
}

func (c Criteria) WithUniqueMuscleMin(x int) Criteria {
	if x < 1 {
		x = 1
	}
	c.UniqueMuscleMin = x
	return c
}

func (c Criteria) WithMaxExercises(n int) Criteria {
	c.MaxExercises = n
	return c
}

func (c Criteria) WithCoreMultiplier(m float64) Criteria {
	c.CoreMultiplier = m
	return c
}

func (c Criteria) WithUniqueExercises(unique bool) Criteria {
	c.UniqueExercises = unique
	return c
}

func (c Criteria) WithIgnoreProgression(ignore bool) Criteria {
	c.IgnoreProgression = ignore
	return c
}

// WithExcludedExercises adds exercise ids to the exclusion set. The receiver's
// set is copied, never shared.
func (c Criteria) WithExcludedExercises(ids ...int64) Criteria {
	excluded := make(map[int64]struct{}, len(c.excludedExercises)+len(ids))
	for id := range c.excludedExercises {
		excluded[id] = struct{}{}
	}
	for _, id := range ids {
		excluded[id] = struct{}{}
	}
	c.excludedExercises = excluded
	return c
}

func (c Criteria) WithExcludedVariations(ids ...int64) Criteria {
	excluded := make(map[int64]struct{}, len(c.excludedVariations)+len(ids))
	for id := range c.excludedVariations {
		excluded[id] = struct{}{}
	}
	for _, id := range ids {
		excluded[id] = struct{}{}
	}
	c.excludedVariations = excluded
	return c
}

func (c Criteria) WithExcludedGroups(groups catalog.ExerciseGroups) Criteria {
	c.ExcludedGroups = c.ExcludedGroups.Union(groups)
	return c
}

func (c Criteria) ExerciseExcluded(id int64) bool {
	_, ok := c.excludedExercises[id]
	return ok
}

func (c Criteria) VariationExcluded(id int64) bool {
	_, ok := c.excludedVariations[id]
	return ok
}
