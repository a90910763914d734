package volume

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gscanlon21/a-workout-a-day-sub003/internal/telemetry/tracing"
	"github.com/gscanlon21/a-workout-a-day-sub003/internal/workout/catalog"
	"github.com/gscanlon21/a-workout-a-day-sub003/internal/workout/history"
	"github.com/gscanlon21/a-workout-a-day-sub003/internal/workout/rotation"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=volume_test

type catalogReader interface {
	Variation(ctx context.Context, id int64) (catalog.Variation, error)
	Proficiency(ctx context.Context, variationID int64, level catalog.IntensityLevel) (catalog.Proficiency, error)
}

type historyLister interface {
	ListSince(ctx context.Context, userID uuid.UUID, from, asOf time.Time) ([]history.DeliveredWorkout, error)
}

type Config struct {
	// WindowWeeks is how far back the rolling estimate looks.
	WindowWeeks int
	// MinWeeks is the minimum number of distinct delivered weeks before the
	// estimate is considered known.
	MinWeeks int
	// TimeToRepFactor normalizes time-under-tension seconds against reps.
	TimeToRepFactor float64
	// SecondaryWeight and StabilizerWeight scale stretched / stabilized
	// involvement relative to strengthened involvement.
	SecondaryWeight  float64
	StabilizerWeight float64
}

type Tracker struct {
	catalog catalogReader
	history historyLister
	cfg     Config
}

func NewTracker(catalogReader catalogReader, historyLister historyLister, cfg Config) *Tracker {
	return &Tracker{
		catalog: catalogReader,
		history: historyLister,
		cfg:     cfg,
	}
}

// WeeklyVolume estimates the user's current weekly training volume per single
// muscle group, averaged over the delivered weeks inside the window.
//
// A nil map means "not enough data to track" (fewer than MinWeeks distinct
// delivered weeks); callers must treat that differently from a zero entry,
// which means the muscle is tracked but received no volume.
func (t *Tracker) WeeklyVolume(ctx context.Context, userID uuid.UUID, asOf time.Time) (_ map[catalog.MuscleGroups]float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.volume.weekly")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID.String()))

	from := rotation.WeekStart(asOf).AddDate(0, 0, -7*t.cfg.WindowWeeks)
	workouts, err := t.history.ListSince(ctx, userID, from, asOf)
	if err != nil {
		return nil, fmt.Errorf("list delivered workouts: %w", err)
	}

	weeks := make(map[time.Time]map[catalog.MuscleGroups]float64)
	for _, w := range workouts {
		week := rotation.WeekStart(w.Date)
		bucket, ok := weeks[week]
		if !ok {
			bucket = make(map[catalog.MuscleGroups]float64)
			weeks[week] = bucket
		}
		for _, item := range w.Items {
			if err := t.addItemVolume(ctx, bucket, item); err != nil {
				return nil, err
			}
		}
	}

	span.SetAttributes(attribute.Int("weeks_with_data", len(weeks)))
	if len(weeks) < t.cfg.MinWeeks {
		log.Tracef("volume tracker: user %s has %d delivered weeks, below minimum %d",
			userID, len(weeks), t.cfg.MinWeeks)
		return nil, nil
	}

	weekly := make(map[catalog.MuscleGroups]float64)
	for _, bucket := range weeks {
		for muscle, vol := range bucket {
			weekly[muscle] += vol
		}
	}
	for muscle := range weekly {
		weekly[muscle] /= float64(len(weeks))
	}
	return weekly, nil
}

func (t *Tracker) addItemVolume(ctx context.Context, bucket map[catalog.MuscleGroups]float64, item history.Item) error {
	prof, err := t.catalog.Proficiency(ctx, item.VariationID, item.Intensity)
	if errors.Is(err, catalog.ErrProficiencyNotFound) {
		// catalog data gap: the delivered intensity has no prescription anymore
		log.Warnf("volume tracker: no proficiency for variation %d at %s, skipping item",
			item.VariationID, item.Intensity)
		return nil
	}
	if err != nil {
		return fmt.Errorf("proficiency for variation %d: %w", item.VariationID, err)
	}

	variation, err := t.catalog.Variation(ctx, item.VariationID)
	if err != nil {
		return fmt.Errorf("variation %d: %w", item.VariationID, err)
	}

	vol := prof.Volume(t.cfg.TimeToRepFactor)
	for _, m := range variation.Strengthens.Split() {
		bucket[m] += vol
	}
	for _, m := range variation.Stretches.Split() {
		bucket[m] += vol * t.cfg.SecondaryWeight
	}
	for _, m := range variation.Stabilizes.Split() {
		bucket[m] += vol * t.cfg.StabilizerWeight
	}
	return nil
}
