package catalog

import "fmt"

// Section is one pass of a workout. Sections are processed in declaration
// order; later sections exclude variations already picked by earlier ones.
type Section int

const (
	SectionWarmup Section = iota
	SectionMain
	SectionAccessory
	SectionRehab
	SectionSports
	SectionCooldown
)

var sectionNames = map[Section]string{
	SectionWarmup:    "warmup",
	SectionMain:      "main",
	SectionAccessory: "accessory",
	SectionRehab:     "rehab",
	SectionSports:    "sports",
	SectionCooldown:  "cooldown",
}

func Sections() []Section {
	return []Section{
		SectionWarmup, SectionMain, SectionAccessory,
		SectionRehab, SectionSports, SectionCooldown,
	}
}

func (s Section) String() string {
	if name, ok := sectionNames[s]; ok {
		return name
	}
	return fmt.Sprintf("section(%d)", int(s))
}

// IntensityLevel is the difficulty tier a proficiency prescription targets.
type IntensityLevel int

const (
	IntensityWarmup IntensityLevel = iota
	IntensityLight
	IntensityMedium
	IntensityHeavy
	IntensityCooldown
)

var intensityNames = map[IntensityLevel]string{
	IntensityWarmup:   "warmup",
	IntensityLight:    "light",
	IntensityMedium:   "medium",
	IntensityHeavy:    "heavy",
	IntensityCooldown: "cooldown",
}

func (l IntensityLevel) String() string {
	if name, ok := intensityNames[l]; ok {
		return name
	}
	return fmt.Sprintf("intensity(%d)", int(l))
}

// StepDown returns the next easier tier, used on deload weeks.
func (l IntensityLevel) StepDown() IntensityLevel {
	if l > IntensityLight && l <= IntensityHeavy {
		return l - 1
	}
	return l
}

// Prerequisite is a directed requirement edge: the exercise is gated until the
// required exercise reaches the proficiency threshold.
type Prerequisite struct {
	ExerciseID  int64 `json:"exerciseId"`
	RequiresID  int64 `json:"requiresId"`
	Proficiency int   `json:"proficiency"`
}

type Exercise struct {
	ID       int64          `json:"id"`
	Name     string         `json:"name"`
	Groups   ExerciseGroups `json:"groups"`
	Core     bool           `json:"core"`
	Disabled bool           `json:"disabled"`
}

type Variation struct {
	ID             int64            `json:"id"`
	ExerciseID     int64            `json:"exerciseId"`
	Name           string           `json:"name"`
	Strengthens    MuscleGroups     `json:"strengthens"`
	Stretches      MuscleGroups     `json:"stretches"`
	Stabilizes     MuscleGroups     `json:"stabilizes"`
	Movements      MovementPatterns `json:"movements"`
	MobilityJoints Joints           `json:"mobilityJoints"`
	Equipment      Equipment        `json:"equipment"`
	Unilateral     bool             `json:"unilateral"`
	Weighted       bool             `json:"weighted"`
	UseCaution     bool             `json:"useCaution"`
	Disabled       bool             `json:"disabled"`
}

// AllMuscles returns every muscle group the variation touches in any role.
func (v Variation) AllMuscles() MuscleGroups {
	return v.Strengthens.Union(v.Stretches).Union(v.Stabilizes)
}

// ExerciseVariation links a variation into an exercise for a section, bounded
// by the progression range [Min, Max) within which it is appropriate. The same
// variation can be linked more than once with different ranges and sections.
type ExerciseVariation struct {
	ID             int64   `json:"id"`
	ExerciseID     int64   `json:"exerciseId"`
	VariationID    int64   `json:"variationId"`
	Section        Section `json:"section"`
	ProgressionMin int     `json:"progressionMin"`
	ProgressionMax int     `json:"progressionMax"`
}

// ContainsProgression reports whether the user progression falls inside the
// half-open range [Min, Max).
func (ev ExerciseVariation) ContainsProgression(p int) bool {
	return p >= ev.ProgressionMin && p < ev.ProgressionMax
}

// Proficiency is the rep/set/time prescription for a variation at one
// intensity level. Rep-based prescriptions leave Secs at zero and vice versa.
type Proficiency struct {
	ID          int64          `json:"id"`
	VariationID int64          `json:"variationId"`
	Intensity   IntensityLevel `json:"intensity"`
	MinReps     int            `json:"minReps"`
	MaxReps     int            `json:"maxReps"`
	Secs        int            `json:"secs"`
	Sets        int            `json:"sets"`
}

// Volume is the scalar training volume of one delivered prescription.
// Time-based work is normalized against reps with the given divisor.
func (p Proficiency) Volume(timeToRepFactor float64) float64 {
	if p.Secs > 0 {
		return float64(p.Secs*p.Sets) / timeToRepFactor
	}
	return float64(p.MinReps * p.Sets)
}

// Candidate is the denormalized row the selection pipeline works with:
// a variation, its exercise, and the link entity that bound them.
type Candidate struct {
	Exercise  Exercise
	Variation Variation
	Link      ExerciseVariation
}
