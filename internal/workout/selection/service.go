package selection

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gscanlon21/a-workout-a-day-sub003/internal/config"
	"github.com/gscanlon21/a-workout-a-day-sub003/internal/metrics"
	"github.com/gscanlon21/a-workout-a-day-sub003/internal/telemetry/tracing"
	"github.com/gscanlon21/a-workout-a-day-sub003/internal/workout/catalog"
	"github.com/gscanlon21/a-workout-a-day-sub003/internal/workout/gating"
	"github.com/gscanlon21/a-workout-a-day-sub003/internal/workout/history"
	"github.com/gscanlon21/a-workout-a-day-sub003/internal/workout/rotation"
	"github.com/gscanlon21/a-workout-a-day-sub003/internal/workout/targets"
	"github.com/gscanlon21/a-workout-a-day-sub003/internal/workout/users"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=selection_test

type catalogRepo interface {
	Candidates(ctx context.Context, params catalog.CandidateParams) ([]catalog.Candidate, error)
	Proficiency(ctx context.Context, variationID int64, level catalog.IntensityLevel) (catalog.Proficiency, error)
	Prerequisites(ctx context.Context) ([]catalog.Prerequisite, error)
}

type usersRepo interface {
	Preferences(ctx context.Context, userID uuid.UUID) (users.Preferences, error)
	CustomRotations(ctx context.Context, userID uuid.UUID) ([]users.CustomRotation, error)
	ExerciseStates(ctx context.Context, userID uuid.UUID) (map[int64]users.ExerciseState, error)
	VariationStates(ctx context.Context, userID uuid.UUID) (map[int64]users.VariationState, error)
	TargetOverrides(ctx context.Context, userID uuid.UUID) (map[catalog.MuscleGroups]float64, error)
}

type historyRepo interface {
	Last(ctx context.Context, userID uuid.UUID, asOf time.Time) (*history.DeliveredWorkout, error)
	LastDeload(ctx context.Context, userID uuid.UUID, asOf time.Time) (*time.Time, error)
	Commit(ctx context.Context, w *history.DeliveredWorkout, updates []history.LastSeenUpdate) (*history.DeliveredWorkout, error)
}

type volumeTracker interface {
	WeeklyVolume(ctx context.Context, userID uuid.UUID, asOf time.Time) (map[catalog.MuscleGroups]float64, error)
}

// Result is a committed delivery plus the per-pick detail (intensity
// prescription, load, easier/harder hints) the renderer needs.
type Result struct {
	Workout *history.DeliveredWorkout
	Picks   []Pick
}

type Service struct {
	catalog catalogRepo
	users   usersRepo
	history historyRepo
	volume  volumeTracker
	metrics *metrics.Manager
	domain  config.Domain

	// newRNG builds the run's RNG; injectable so tests replay selections
	// under a fixed seed.
	newRNG func() *rand.Rand
}

type NewServiceParams struct {
	Catalog catalogRepo
	Users   usersRepo
	History historyRepo
	Volume  volumeTracker
	Metrics *metrics.Manager
	Domain  config.Domain
	NewRNG  func() *rand.Rand
}

func NewService(params NewServiceParams) *Service {
	newRNG := params.NewRNG
	if newRNG == nil {
		newRNG = func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		}
	}
	return &Service{
		catalog: params.Catalog,
		users:   params.Users,
		history: params.History,
		volume:  params.Volume,
		metrics: params.Metrics,
		domain:  params.Domain,
		newRNG:  newRNG,
	}
}

// SelectWorkout runs the full selection pipeline for one user and date and
// commits the result. Reads happen as of the given date so a concurrently
// committing earlier delivery cannot shift the averages mid-run; nothing is
// written until the final commit, so a failed run is safe to retry in full.
func (s *Service) SelectWorkout(ctx context.Context, userID uuid.UUID, date time.Time) (_ *Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.selection.selectworkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID.String()))
	span.SetAttributes(attribute.String("date", date.Format(time.DateOnly)))

	started := time.Now()
	defer func() {
		s.metrics.HistSelectionDuration.Observe(time.Since(started).Seconds())
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		s.metrics.CounterSelections.WithLabelValues(outcome).Inc()
	}()

	prefs, err := s.users.Preferences(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}
	exStates, err := s.users.ExerciseStates(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("exercise states: %w", err)
	}
	varStates, err := s.users.VariationStates(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("variation states: %w", err)
	}
	overrides, err := s.users.TargetOverrides(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("target overrides: %w", err)
	}

	// rotation and deload are pure functions of history + today
	last, err := s.history.Last(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("last workout: %w", err)
	}
	lastDeload, err := s.history.LastDeload(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("last deload: %w", err)
	}

	var custom []users.CustomRotation
	if prefs.Frequency == users.FrequencyCustom {
		if custom, err = s.users.CustomRotations(ctx, userID); err != nil {
			return nil, fmt.Errorf("custom rotations: %w", err)
		}
	}
	split := rotation.SplitFor(prefs.Frequency, custom)
	rot := rotation.Next(split, last)
	isDeload, weeksSince := rotation.IsDeloadWeek(prefs, lastDeload, date)
	span.SetAttributes(attribute.Int("rotation", rot.Index))
	span.SetAttributes(attribute.Bool("deload", isDeload))
	log.Tracef("user %s rotation %d (%s), deload=%t, weeks since last deload: %d",
		userID, rot.Index, rot.Name, isDeload, weeksSince)

	weekly, err := s.volume.WeeklyVolume(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("weekly volume: %w", err)
	}

	budget := targets.Adjust(rot, weekly, overrides, targets.Options{
		VolumeUnit: s.domain.VolumeUnit,
		Deload:     isDeload,
		Split:      split,
	})

	prereqs, err := s.catalog.Prerequisites(ctx)
	if err != nil {
		return nil, fmt.Errorf("prerequisites: %w", err)
	}

	pipeline := NewPipeline(NewPipelineParams{
		Gate:             gating.New(prereqs, s.metrics.CounterPrereqCycles),
		Picker:           NewPicker(s.newRNG()),
		Proficiencies:    s.catalog,
		ExerciseStates:   exStates,
		VariationStates:  varStates,
		SecondaryWeight:  s.domain.SecondaryMuscleWeight,
		StabilizerWeight: s.domain.StabilizerMuscleWeight,
		TimeToRepFactor:  s.domain.TimeToRepFactor,
		Now:              date,
	})

	var picks []Pick
	carried := NewCriteria(catalog.SectionMain, prefs.PreferredIntensity)
	for _, section := range catalog.Sections() {
		crit := carried.
			WithEquipment(prefs.OwnedEquipment).
			WithRotationMuscles(rot.Muscles).
			WithPatterns(rot.Patterns).
			WithUniqueMuscleMin(s.domain.UniqueMusclesPerExercise).
			WithCoreMultiplier(s.domain.CoreExerciseMultiplier).
			WithMaxExercises(s.sectionMax(section))
		crit.Section = section
		crit.Intensity = s.sectionIntensity(section, prefs.PreferredIntensity, isDeload)
		if section == catalog.SectionWarmup || section == catalog.SectionCooldown {
			// mobility work cares about joints and range, not movement patterns
			crit = crit.WithPatterns(0).WithMobilityJoints(catalog.JointShoulders | catalog.JointSpine | catalog.JointHips)
		}

		// progression filtering stays in the pipeline so adjacent-range
		// siblings remain available for the easier/harder hints
		sectionParam := section
		candidates, err := s.catalog.Candidates(ctx, catalog.CandidateParams{
			Section:        &sectionParam,
			MusclesAny:     rot.Muscles,
			OwnedEquipment: &prefs.OwnedEquipment,
		})
		if err != nil {
			return nil, fmt.Errorf("candidates for %s: %w", section, err)
		}

		result, err := pipeline.SelectSection(ctx, crit, candidates, &budget)
		if err != nil {
			return nil, fmt.Errorf("select %s section: %w", section, err)
		}
		for _, gap := range result.Gaps {
			s.metrics.CounterCoverageGaps.WithLabelValues(section.String()).Inc()
			log.Debugf("user %s: %s section has no coverage for %s", userID, section, gap)
		}

		picks = append(picks, result.Picks...)
		carried = result.Excluded(carried)
	}

	workout := s.buildWorkout(userID, date, rot, isDeload, picks)
	updates := s.lastSeenUpdates(picks, exStates, varStates, date)

	committed, err := s.history.Commit(ctx, workout, updates)
	if err != nil {
		s.metrics.CounterCommitFailures.Inc()
		return nil, fmt.Errorf("commit delivered workout: %w", err)
	}

	return &Result{Workout: committed, Picks: picks}, nil
}

func (s *Service) buildWorkout(
	userID uuid.UUID,
	date time.Time,
	rot rotation.Rotation,
	isDeload bool,
	picks []Pick,
) *history.DeliveredWorkout {
	workout := &history.DeliveredWorkout{
		UserID:        userID,
		Date:          date,
		RotationIndex: rot.Index,
		IsDeload:      isDeload,
	}
	orderPerSection := make(map[catalog.Section]int)
	for _, pick := range picks {
		section := pick.Candidate.Link.Section
		workout.Items = append(workout.Items, history.Item{
			Section:     section,
			Order:       orderPerSection[section],
			ExerciseID:  pick.Candidate.Exercise.ID,
			VariationID: pick.Candidate.Variation.ID,
			Intensity:   pick.Intensity,
		})
		orderPerSection[section]++
	}
	return workout
}

// lastSeenUpdates bumps last-seen for every picked pair, except pairs inside
// a refresh block, which keep their dates so the block holds.
func (s *Service) lastSeenUpdates(
	picks []Pick,
	exStates map[int64]users.ExerciseState,
	varStates map[int64]users.VariationState,
	date time.Time,
) []history.LastSeenUpdate {
	var updates []history.LastSeenUpdate
	for _, pick := range picks {
		if state, ok := exStates[pick.Candidate.Exercise.ID]; ok && state.InRefreshBlock(date) {
			continue
		}
		if state, ok := varStates[pick.Candidate.Variation.ID]; ok && state.InRefreshBlock(date) {
			continue
		}
		updates = append(updates, history.LastSeenUpdate{
			ExerciseID:  pick.Candidate.Exercise.ID,
			VariationID: pick.Candidate.Variation.ID,
			SeenAt:      date,
		})
	}
	return updates
}

func (s *Service) sectionMax(section catalog.Section) int {
	switch section {
	case catalog.SectionMain, catalog.SectionAccessory:
		return s.domain.MaxExercisesPerSection
	case catalog.SectionWarmup, catalog.SectionCooldown:
		return 3
	default:
		return 2
	}
}

func (s *Service) sectionIntensity(section catalog.Section, preferred catalog.IntensityLevel, isDeload bool) catalog.IntensityLevel {
	switch section {
	case catalog.SectionWarmup:
		return catalog.IntensityWarmup
	case catalog.SectionCooldown:
		return catalog.IntensityCooldown
	case catalog.SectionRehab, catalog.SectionSports:
		return catalog.IntensityLight
	case catalog.SectionAccessory:
		return preferred.StepDown()
	default:
		if isDeload {
			return preferred.StepDown()
		}
		return preferred
	}
}
