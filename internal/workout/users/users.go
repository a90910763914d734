package users

import (
	"fmt"
	"time"

	"github.com/gscanlon21/a-workout-a-day-sub003/internal/workout/catalog"

	"github.com/google/uuid"
	"go.uber.org/multierr"
)

// Progression bounds. The scalar never leaves [MinProgression, MaxProgression]
// so every exercise always has at least one applicable progression range.
const (
	MinProgression = 5
	MaxProgression = 95

	// DefaultProgression is assumed for exercises the user has no state row
	// for yet; state rows are created lazily on first selection.
	DefaultProgression = 50
)

// ClampProgression bounds a progression value into [MinProgression, MaxProgression].
func ClampProgression(p int) int {
	if p < MinProgression {
		return MinProgression
	}
	if p > MaxProgression {
		return MaxProgression
	}
	return p
}

// Frequency is the user-chosen workout split preset.
type Frequency int

const (
	FrequencyFullBody Frequency = iota
	FrequencyUpperLower
	FrequencyPushPullLegs
	FrequencyCustom
)

func (f Frequency) String() string {
	switch f {
	case FrequencyFullBody:
		return "full-body"
	case FrequencyUpperLower:
		return "upper-lower"
	case FrequencyPushPullLegs:
		return "push-pull-legs"
	case FrequencyCustom:
		return "custom"
	default:
		return "unknown"
	}
}

type Preferences struct {
	UserID              uuid.UUID              `json:"userId"`
	Frequency           Frequency              `json:"frequency"`
	DeloadIntervalWeeks int                    `json:"deloadIntervalWeeks"`
	OwnedEquipment      catalog.Equipment      `json:"ownedEquipment"`
	PreferredIntensity  catalog.IntensityLevel `json:"preferredIntensity"`
	CreatedAt           time.Time              `json:"createdAt"`
}

// Validate rejects preference rows that would corrupt a selection run.
// Checked when the row is loaded, so bad values never reach the pipeline.
func (p Preferences) Validate() error {
	var result error
	if p.DeloadIntervalWeeks < 0 {
		result = multierr.Append(result, fmt.Errorf("deload_interval_weeks is negative: %d", p.DeloadIntervalWeeks))
	}
	if p.Frequency < FrequencyFullBody || p.Frequency > FrequencyCustom {
		result = multierr.Append(result, fmt.Errorf("unknown frequency: %d", p.Frequency))
	}
	if p.PreferredIntensity < catalog.IntensityLight || p.PreferredIntensity > catalog.IntensityHeavy {
		result = multierr.Append(result, fmt.Errorf("preferred_intensity is not a working tier: %d", p.PreferredIntensity))
	}
	return result
}

// CustomRotation is one stored rotation of a user's custom split, ordered by
// Index. Only users on the custom frequency have rows.
type CustomRotation struct {
	UserID   uuid.UUID                `json:"userId"`
	Index    int                      `json:"index"`
	Name     string                   `json:"name"`
	Muscles  catalog.MuscleGroups     `json:"muscles"`
	Patterns catalog.MovementPatterns `json:"patterns"`
}

// ExerciseState is the per-(user, exercise) progress row, created lazily the
// first time an exercise is selected for the user.
type ExerciseState struct {
	UserID       uuid.UUID  `json:"userId"`
	ExerciseID   int64      `json:"exerciseId"`
	Progression  int        `json:"progression"`
	Ignored      bool       `json:"ignored"`
	LastSeen     *time.Time `json:"lastSeen"`
	RefreshAfter *time.Time `json:"refreshAfter"`
}

// VariationState is the per-(user, variation) row: ignore flag, rotation
// dates, and the load last used.
type VariationState struct {
	UserID       uuid.UUID  `json:"userId"`
	VariationID  int64      `json:"variationId"`
	Ignored      bool       `json:"ignored"`
	LastSeen     *time.Time `json:"lastSeen"`
	RefreshAfter *time.Time `json:"refreshAfter"`
	Kilos        int        `json:"kilos"`
}

// InRefreshBlock reports whether the variation is inside a keep-it-the-same
// block: selections should prefer not to rotate it out, and should not bump
// its last-seen date.
func (s VariationState) InRefreshBlock(now time.Time) bool {
	return s.RefreshAfter != nil && s.RefreshAfter.After(now)
}

func (s ExerciseState) InRefreshBlock(now time.Time) bool {
	return s.RefreshAfter != nil && s.RefreshAfter.After(now)
}

// TargetOverride shifts a muscle group's weekly volume band for one user.
// Positive deltas ask for more weekly volume, negative for less.
type TargetOverride struct {
	UserID uuid.UUID            `json:"userId"`
	Muscle catalog.MuscleGroups `json:"muscle"`
	Delta  float64              `json:"delta"`
}
