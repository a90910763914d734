package history

import (
	"time"

	"github.com/gscanlon21/a-workout-a-day-sub003/internal/workout/catalog"

	"github.com/google/uuid"
)

// Item is one delivered variation within a workout: which section it belongs
// to, its order inside the section, and the intensity it was prescribed at.
type Item struct {
	Section     catalog.Section        `json:"section"`
	Order       int                    `json:"order"`
	ExerciseID  int64                  `json:"exerciseId"`
	VariationID int64                  `json:"variationId"`
	Intensity   catalog.IntensityLevel `json:"intensity"`
}

// DeliveredWorkout is one row of the append-only delivery ledger. Records are
// immutable once committed; the volume tracker and rotation scheduler only
// ever read them.
type DeliveredWorkout struct {
	ID            int64     `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	Date          time.Time `json:"date"`
	RotationIndex int       `json:"rotationIndex"`
	IsDeload      bool      `json:"isDeload"`
	Items         []Item    `json:"items"`
}

// LastSeenUpdate bumps the last-seen dates of an (exercise, variation) pair
// as part of the delivery commit. Pairs inside a refresh block are not
// included by the caller.
type LastSeenUpdate struct {
	ExerciseID  int64
	VariationID int64
	SeenAt      time.Time
}
