package rotation

import (
	"time"

	"github.com/gscanlon21/a-workout-a-day-sub003/internal/workout/catalog"
	"github.com/gscanlon21/a-workout-a-day-sub003/internal/workout/history"
	"github.com/gscanlon21/a-workout-a-day-sub003/internal/workout/users"
)

// Rotation is one day's slot in a workout split. The muscle and movement sets
// are embedded by value so a rotation definition is atomic and versions with
// its split.
type Rotation struct {
	Index    int                      `json:"index"`
	Name     string                   `json:"name"`
	Muscles  catalog.MuscleGroups     `json:"muscles"`
	Patterns catalog.MovementPatterns `json:"patterns"`
}

// Split is the fixed-length ordered list of rotations a user cycles through.
type Split struct {
	Rotations []Rotation `json:"rotations"`
}

func (s Split) Len() int { return len(s.Rotations) }

// RotationsTargeting counts how many rotations of the split include the given
// muscle group, at least 1 so spreading a weekly target never divides by zero.
func (s Split) RotationsTargeting(muscle catalog.MuscleGroups) int {
	count := 0
	for _, r := range s.Rotations {
		if r.Muscles.HasAny(muscle) {
			count++
		}
	}
	if count < 1 {
		return 1
	}
	return count
}

// SplitFor builds the split for a frequency preset. Custom splits come from
// the user's stored rotation rows; an empty custom split falls back to
// full-body.
func SplitFor(frequency users.Frequency, custom []users.CustomRotation) Split {
	switch frequency {
	case users.FrequencyUpperLower:
		return Split{Rotations: []Rotation{
			{
				Index:    0,
				Name:     "Upper Body",
				Muscles:  catalog.MuscleUpperBody,
				Patterns: catalog.MovementHorizontalPush | catalog.MovementHorizontalPull | catalog.MovementVerticalPush | catalog.MovementVerticalPull,
			},
			{
				Index:    1,
				Name:     "Lower Body",
				Muscles:  catalog.MuscleLowerBody | catalog.MuscleCore,
				Patterns: catalog.MovementSquat | catalog.MovementLunge | catalog.MovementHipHinge | catalog.MovementCarry,
			},
		}}
	case users.FrequencyPushPullLegs:
		return Split{Rotations: []Rotation{
			{
				Index:    0,
				Name:     "Push",
				Muscles:  catalog.MuscleUpperBodyPush,
				Patterns: catalog.MovementHorizontalPush | catalog.MovementVerticalPush,
			},
			{
				Index:    1,
				Name:     "Pull",
				Muscles:  catalog.MuscleUpperBodyPull,
				Patterns: catalog.MovementHorizontalPull | catalog.MovementVerticalPull,
			},
			{
				Index:    2,
				Name:     "Legs",
				Muscles:  catalog.MuscleLowerBody | catalog.MuscleCore,
				Patterns: catalog.MovementSquat | catalog.MovementLunge | catalog.MovementHipHinge,
			},
		}}
	case users.FrequencyCustom:
		if len(custom) > 0 {
			rotations := make([]Rotation, 0, len(custom))
			// positional indexes keep the split dense even when the stored
			// rows have gaps
			for i, c := range custom {
				rotations = append(rotations, Rotation{
					Index:    i,
					Name:     c.Name,
					Muscles:  c.Muscles,
					Patterns: c.Patterns,
				})
			}
			return Split{Rotations: rotations}
		}
		fallthrough
	default:
		return Split{Rotations: []Rotation{
			{
				Index:    0,
				Name:     "Full Body",
				Muscles:  catalog.MuscleFullBody,
				Patterns: catalog.MovementHorizontalPush | catalog.MovementHorizontalPull | catalog.MovementVerticalPush | catalog.MovementVerticalPull | catalog.MovementSquat | catalog.MovementHipHinge,
			},
		}}
	}
}

// Next returns the rotation to deliver after the last delivered one, wrapping
// around the split. With no history the split starts at its first rotation.
func Next(split Split, last *history.DeliveredWorkout) Rotation {
	if split.Len() == 0 {
		return Rotation{}
	}
	if last == nil {
		return split.Rotations[0]
	}
	return split.Rotations[(last.RotationIndex+1)%split.Len()]
}

// WeekStart returns the Sunday-aligned start of the calendar week containing
// t, in UTC.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// IsDeloadWeek decides whether today falls in a deload week. A week that
// contains a delivered deload stays a deload week until it ends; otherwise
// deload triggers once enough whole weeks have passed since the last deload
// week (or, for users who never had one, since the account-creation week).
// Pure function of its inputs.
func IsDeloadWeek(prefs users.Preferences, lastDeload *time.Time, today time.Time) (bool, int) {
	currentWeek := WeekStart(today)

	anchor := prefs.CreatedAt
	if lastDeload != nil {
		lastDeloadWeek := WeekStart(*lastDeload)
		if lastDeloadWeek.Equal(currentWeek) {
			// still inside an active deload week
			return true, 0
		}
		anchor = *lastDeload
	}

	weeksSince := int(currentWeek.Sub(WeekStart(anchor)).Hours() / (24 * 7))
	if prefs.DeloadIntervalWeeks <= 0 {
		return false, weeksSince
	}
	return weeksSince >= prefs.DeloadIntervalWeeks, weeksSince
}
