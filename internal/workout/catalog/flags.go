package catalog

import (
	"math/bits"
	"strings"
)

// MuscleGroups is a set of muscle groups packed into a bitmask. The zero value
// is the empty set. Compound values (e.g. UpperBodyPush) are unions of the
// single flags; display names for both live in muscleGroupNames, not on the
// type itself.
type MuscleGroups uint64

const (
	MuscleAbs MuscleGroups = 1 << iota
	MuscleObliques
	MusclePectorals
	MuscleDeltoids
	MuscleTriceps
	MuscleBiceps
	MuscleForearms
	MuscleLats
	MuscleTrapezius
	MuscleRhomboids
	MuscleRotatorCuffs
	MuscleSerratusAnterior
	MuscleErectorSpinae
	MuscleGlutes
	MuscleHipFlexors
	MuscleHipAdductors
	MuscleQuadriceps
	MuscleHamstrings
	MuscleCalves
	MuscleTibialisAnterior
)

const (
	MuscleUpperBodyPush = MusclePectorals | MuscleDeltoids | MuscleTriceps | MuscleSerratusAnterior
	MuscleUpperBodyPull = MuscleLats | MuscleTrapezius | MuscleRhomboids | MuscleBiceps | MuscleForearms | MuscleRotatorCuffs
	MuscleUpperBody     = MuscleUpperBodyPush | MuscleUpperBodyPull
	MuscleLowerBody     = MuscleGlutes | MuscleHipFlexors | MuscleHipAdductors | MuscleQuadriceps | MuscleHamstrings | MuscleCalves | MuscleTibialisAnterior
	MuscleCore          = MuscleAbs | MuscleObliques | MuscleErectorSpinae
	MuscleFullBody      = MuscleUpperBody | MuscleLowerBody | MuscleCore
)

var muscleGroupNames = map[MuscleGroups]string{
	MuscleAbs:              "Abs",
	MuscleObliques:         "Obliques",
	MusclePectorals:        "Pectorals",
	MuscleDeltoids:         "Deltoids",
	MuscleTriceps:          "Triceps",
	MuscleBiceps:           "Biceps",
	MuscleForearms:         "Forearms",
	MuscleLats:             "Lats",
	MuscleTrapezius:        "Trapezius",
	MuscleRhomboids:        "Rhomboids",
	MuscleRotatorCuffs:     "Rotator Cuffs",
	MuscleSerratusAnterior: "Serratus Anterior",
	MuscleErectorSpinae:    "Erector Spinae",
	MuscleGlutes:           "Glutes",
	MuscleHipFlexors:       "Hip Flexors",
	MuscleHipAdductors:     "Hip Adductors",
	MuscleQuadriceps:       "Quadriceps",
	MuscleHamstrings:       "Hamstrings",
	MuscleCalves:           "Calves",
	MuscleTibialisAnterior: "Tibialis Anterior",
	// compound flags, kept out of Split results
	MuscleUpperBodyPush: "Upper Body Push",
	MuscleUpperBodyPull: "Upper Body Pull",
	MuscleUpperBody:     "Upper Body",
	MuscleLowerBody:     "Lower Body",
	MuscleCore:          "Core",
	MuscleFullBody:      "Full Body",
}

func (m MuscleGroups) Has(other MuscleGroups) bool    { return m&other == other }
func (m MuscleGroups) HasAny(other MuscleGroups) bool { return m&other != 0 }
func (m MuscleGroups) Union(other MuscleGroups) MuscleGroups     { return m | other }
func (m MuscleGroups) Intersect(other MuscleGroups) MuscleGroups { return m & other }
func (m MuscleGroups) Without(other MuscleGroups) MuscleGroups   { return m &^ other }
func (m MuscleGroups) Count() int                                { return bits.OnesCount64(uint64(m)) }

// Split returns the single muscle group flags contained in the set,
// in ascending bit order.
func (m MuscleGroups) Split() []MuscleGroups {
	groups := make([]MuscleGroups, 0, m.Count())
	for v := uint64(m); v != 0; v &= v - 1 {
		groups = append(groups, MuscleGroups(v&-v))
	}
	return groups
}

func (m MuscleGroups) String() string {
	if m == 0 {
		return "None"
	}
	if name, ok := muscleGroupNames[m]; ok {
		return name
	}
	names := make([]string, 0, m.Count())
	for _, g := range m.Split() {
		names = append(names, muscleGroupNames[g])
	}
	return strings.Join(names, ", ")
}

// MovementPatterns is a set of movement patterns packed into a bitmask.
type MovementPatterns uint64

const (
	MovementHorizontalPush MovementPatterns = 1 << iota
	MovementHorizontalPull
	MovementVerticalPush
	MovementVerticalPull
	MovementSquat
	MovementLunge
	MovementHipHinge
	MovementCarry
	MovementRotation
	MovementAntiRotation
	MovementIsometric
)

var movementPatternNames = map[MovementPatterns]string{
	MovementHorizontalPush: "Horizontal Push",
	MovementHorizontalPull: "Horizontal Pull",
	MovementVerticalPush:   "Vertical Push",
	MovementVerticalPull:   "Vertical Pull",
	MovementSquat:          "Squat",
	MovementLunge:          "Lunge",
	MovementHipHinge:       "Hip Hinge",
	MovementCarry:          "Carry",
	MovementRotation:       "Rotation",
	MovementAntiRotation:   "Anti-Rotation",
	MovementIsometric:      "Isometric",
}

func (p MovementPatterns) Has(other MovementPatterns) bool    { return p&other == other }
func (p MovementPatterns) HasAny(other MovementPatterns) bool { return p&other != 0 }
func (p MovementPatterns) Union(other MovementPatterns) MovementPatterns { return p | other }
func (p MovementPatterns) Count() int                                    { return bits.OnesCount64(uint64(p)) }

func (p MovementPatterns) String() string {
	if p == 0 {
		return "None"
	}
	var names []string
	for v := uint64(p); v != 0; v &= v - 1 {
		names = append(names, movementPatternNames[MovementPatterns(v&-v)])
	}
	return strings.Join(names, ", ")
}

// Equipment is a set of equipment pieces packed into a bitmask. The empty set
// means bodyweight only, which every user satisfies.
type Equipment uint64

const (
	EquipmentDumbbells Equipment = 1 << iota
	EquipmentBarbell
	EquipmentKettlebells
	EquipmentResistanceBands
	EquipmentPullupBar
	EquipmentGymnasticRings
	EquipmentSuspensionTrainer
	EquipmentBench
	EquipmentPlyoBox
	EquipmentCableMachine
)

var equipmentNames = map[Equipment]string{
	EquipmentDumbbells:         "Dumbbells",
	EquipmentBarbell:           "Barbell",
	EquipmentKettlebells:       "Kettlebells",
	EquipmentResistanceBands:   "Resistance Bands",
	EquipmentPullupBar:         "Pullup Bar",
	EquipmentGymnasticRings:    "Gymnastic Rings",
	EquipmentSuspensionTrainer: "Suspension Trainer",
	EquipmentBench:             "Bench",
	EquipmentPlyoBox:           "Plyo Box",
	EquipmentCableMachine:      "Cable Machine",
}

func (e Equipment) Has(other Equipment) bool { return e&other == other }
func (e Equipment) Union(other Equipment) Equipment { return e | other }

// SatisfiedBy reports whether owned equipment covers this requirement.
func (e Equipment) SatisfiedBy(owned Equipment) bool { return e&^owned == 0 }

func (e Equipment) String() string {
	if e == 0 {
		return "Bodyweight"
	}
	var names []string
	for v := uint64(e); v != 0; v &= v - 1 {
		names = append(names, equipmentNames[Equipment(v&-v)])
	}
	return strings.Join(names, ", ")
}

// Joints is a set of joints packed into a bitmask, used for mobility targeting.
type Joints uint64

const (
	JointWrists Joints = 1 << iota
	JointElbows
	JointShoulders
	JointSpine
	JointHips
	JointKnees
	JointAnkles
)

var jointNames = map[Joints]string{
	JointWrists:    "Wrists",
	JointElbows:    "Elbows",
	JointShoulders: "Shoulders",
	JointSpine:     "Spine",
	JointHips:      "Hips",
	JointKnees:     "Knees",
	JointAnkles:    "Ankles",
}

func (j Joints) Has(other Joints) bool    { return j&other == other }
func (j Joints) HasAny(other Joints) bool { return j&other != 0 }

func (j Joints) String() string {
	if j == 0 {
		return "None"
	}
	var names []string
	for v := uint64(j); v != 0; v &= v - 1 {
		names = append(names, jointNames[Joints(v&-v)])
	}
	return strings.Join(names, ", ")
}

// ExerciseGroups tags related exercises that should not both appear in one
// workout (e.g. two deadlift variants). Values are catalog data, not code
// constants, so the type carries only set operations.
type ExerciseGroups uint64

func (g ExerciseGroups) Overlaps(other ExerciseGroups) bool { return g&other != 0 }
func (g ExerciseGroups) Union(other ExerciseGroups) ExerciseGroups { return g | other }
