package targets

import (
	"sort"

	"github.com/gscanlon21/a-workout-a-day-sub003/internal/workout/catalog"
	"github.com/gscanlon21/a-workout-a-day-sub003/internal/workout/rotation"
)

// Band is the recommended weekly training volume range for a muscle group.
type Band struct {
	Min float64
	Max float64
}

// DefaultWeeklyTargets is the domain constant table of recommended weekly
// volume per muscle group. Muscles without an entry use defaultBand.
var DefaultWeeklyTargets = map[catalog.MuscleGroups]Band{
	catalog.MusclePectorals:        {Min: 300, Max: 660},
	catalog.MuscleLats:             {Min: 300, Max: 660},
	catalog.MuscleQuadriceps:       {Min: 300, Max: 660},
	catalog.MuscleHamstrings:       {Min: 300, Max: 660},
	catalog.MuscleGlutes:           {Min: 300, Max: 660},
	catalog.MuscleDeltoids:         {Min: 240, Max: 600},
	catalog.MuscleTrapezius:        {Min: 180, Max: 480},
	catalog.MuscleRhomboids:        {Min: 180, Max: 480},
	catalog.MuscleErectorSpinae:    {Min: 180, Max: 480},
	catalog.MuscleAbs:              {Min: 240, Max: 600},
	catalog.MuscleObliques:         {Min: 180, Max: 480},
	catalog.MuscleBiceps:           {Min: 180, Max: 480},
	catalog.MuscleTriceps:          {Min: 180, Max: 480},
	catalog.MuscleCalves:           {Min: 180, Max: 480},
	catalog.MuscleForearms:         {Min: 120, Max: 360},
	catalog.MuscleRotatorCuffs:     {Min: 120, Max: 360},
	catalog.MuscleSerratusAnterior: {Min: 120, Max: 360},
	catalog.MuscleHipFlexors:       {Min: 120, Max: 360},
	catalog.MuscleHipAdductors:     {Min: 120, Max: 360},
	catalog.MuscleTibialisAnterior: {Min: 60, Max: 240},
}

var defaultBand = Band{Min: 120, Max: 480}

// WeeklyTargetFor returns the weekly volume band of a single muscle group.
func WeeklyTargetFor(m catalog.MuscleGroups) Band {
	if band, ok := DefaultWeeklyTargets[m]; ok {
		return band
	}
	return defaultBand
}

type Options struct {
	// VolumeUnit is the per-exercise volume unit: the RDA base for every
	// muscle in today's rotation.
	VolumeUnit float64
	// Deload shaves one volume unit off every TUL ceiling, suppressing
	// volume growth for the week.
	Deload bool
	// Split spreads the remaining weekly need across the rotations that
	// target each muscle.
	Split rotation.Split
}

// Targets carries the per-selection-call muscle deltas. RDA is how much this
// workout should additionally work each muscle; TUL is how much more each
// muscle can absorb before its weekly ceiling. Active is the set of muscles
// the workout explicitly recruits for; muscles dropped from Active by the
// over-budget buffer remain acceptable secondary targets.
type Targets struct {
	RDA    map[catalog.MuscleGroups]float64
	TUL    map[catalog.MuscleGroups]float64
	Active catalog.MuscleGroups
}

// ByRemainingRDA returns the active single muscle groups in descending order
// of remaining RDA, so the hungriest target is processed first. Ties break on
// bit order to keep runs deterministic.
func (t Targets) ByRemainingRDA() []catalog.MuscleGroups {
	muscles := t.Active.Split()
	sort.SliceStable(muscles, func(i, j int) bool {
		return t.RDA[muscles[i]] > t.RDA[muscles[j]]
	})
	return muscles
}

// Adjust refines a raw weekly volume estimate into this call's targets.
//
// weekly == nil means the volume tracker had too little history; every
// rotation muscle then gets the full unweighted volume unit (distinct from a
// tracked-but-zero muscle, which gets the spread remainder).
func Adjust(rot rotation.Rotation, weekly map[catalog.MuscleGroups]float64, overrides map[catalog.MuscleGroups]float64, opts Options) Targets {
	t := Targets{
		RDA:    make(map[catalog.MuscleGroups]float64),
		TUL:    make(map[catalog.MuscleGroups]float64),
		Active: rot.Muscles,
	}

	unit := opts.VolumeUnit
	for _, m := range catalog.MuscleFullBody.Split() {
		inRotation := rot.Muscles.HasAny(m)
		n := float64(opts.Split.RotationsTargeting(m))

		worked := 0.0
		if weekly != nil {
			// a missing entry for a tracked user means zero delivered volume
			worked = weekly[m]
		}
		// the user's override shifts the weekly band, so delivered volume is
		// measured against the adjusted expectation
		worked -= overrides[m]

		var rda float64
		if inRotation {
			if weekly == nil {
				rda = unit
			} else {
				rda = (unit - worked) / n
			}
			if rda > 2*unit {
				rda = 2 * unit
			}
		}
		t.RDA[m] = rda

		tul := (WeeklyTargetFor(m).Max - worked) / n
		if tul > 2*unit {
			tul = 2 * unit
		}

		// adjust-up buffer: over budget means stop actively recruiting this
		// muscle, but leave it acceptable as a secondary target so it is not
		// starved entirely. Checked before the deload shave so a deload week
		// does not evict healthy muscles from the active set.
		if inRotation && tul < 0 {
			t.Active = t.Active.Without(m)
		}

		// adjust-down buffer: deload weeks cap growth harder
		if opts.Deload {
			tul -= unit
		}
		t.TUL[m] = tul
	}

	return t
}
