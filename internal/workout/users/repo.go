package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/gscanlon21/a-workout-a-day-sub003/internal/telemetry/tracing"
	"github.com/gscanlon21/a-workout-a-day-sub003/internal/workout/catalog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrUserNotFound = errors.New("user not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Preferences(ctx context.Context, userID uuid.UUID) (_ Preferences, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.preferences")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID.String()))

	var p Preferences
	var equipment int64
	var frequency, intensity int
	err = r.db.QueryRow(
		ctx,
		`
			SELECT id, frequency, deload_interval_weeks, owned_equipment, preferred_intensity, created_at
			FROM workout_user
			WHERE id = $1;`,
		userID,
	).Scan(&p.UserID, &frequency, &p.DeloadIntervalWeeks, &equipment, &intensity, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Preferences{}, ErrUserNotFound
	}
	if err != nil {
		return Preferences{}, fmt.Errorf("preferences [query row]: %w", err)
	}

	p.Frequency = Frequency(frequency)
	p.OwnedEquipment = catalog.Equipment(equipment)
	p.PreferredIntensity = catalog.IntensityLevel(intensity)
	if vErr := p.Validate(); vErr != nil {
		return Preferences{}, fmt.Errorf("invalid preferences: %w", vErr)
	}
	return p, nil
}

// CustomRotations returns the user's stored custom split rotations in order.
// Users on a preset frequency have none.
func (r *Repo) CustomRotations(ctx context.Context, userID uuid.UUID) (_ []CustomRotation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.customrotations")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID.String()))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT user_id, rotation_index, name, muscles, patterns
			FROM user_rotation
			WHERE user_id = $1
			ORDER BY rotation_index ASC;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var rotations []CustomRotation
	for rows.Next() {
		var rot CustomRotation
		var muscles, patterns int64
		if err := rows.Scan(&rot.UserID, &rot.Index, &rot.Name, &muscles, &patterns); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		rot.Muscles = catalog.MuscleGroups(muscles)
		rot.Patterns = catalog.MovementPatterns(patterns)
		rotations = append(rotations, rot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return rotations, nil
}

// ExerciseStates returns every per-exercise state row of the user, keyed by
// exercise id. Exercises the user was never exposed to have no row.
func (r *Repo) ExerciseStates(ctx context.Context, userID uuid.UUID) (_ map[int64]ExerciseState, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.exercisestates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID.String()))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT user_id, exercise_id, progression, ignored, last_seen, refresh_after
			FROM user_exercise_state
			WHERE user_id = $1;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	states := make(map[int64]ExerciseState)
	for rows.Next() {
		var s ExerciseState
		if err := rows.Scan(&s.UserID, &s.ExerciseID, &s.Progression, &s.Ignored, &s.LastSeen, &s.RefreshAfter); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		s.Progression = ClampProgression(s.Progression)
		states[s.ExerciseID] = s
	}
	// an error mid-iteration would otherwise surface as a truncated state set
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return states, nil
}

func (r *Repo) VariationStates(ctx context.Context, userID uuid.UUID) (_ map[int64]VariationState, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.variationstates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID.String()))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT user_id, variation_id, ignored, last_seen, refresh_after, kilos
			FROM user_variation_state
			WHERE user_id = $1;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	states := make(map[int64]VariationState)
	for rows.Next() {
		var s VariationState
		if err := rows.Scan(&s.UserID, &s.VariationID, &s.Ignored, &s.LastSeen, &s.RefreshAfter, &s.Kilos); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		states[s.VariationID] = s
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return states, nil
}

// SetProgression upserts the progression scalar for a (user, exercise) pair,
// clamped into the progression bounds. This is the only way progression
// changes; the selection pipeline never writes it.
func (r *Repo) SetProgression(ctx context.Context, userID uuid.UUID, exerciseID int64, progression int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.setprogression")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID.String()))
	span.SetAttributes(attribute.Int64("exercise_id", exerciseID))

	progression = ClampProgression(progression)
	span.SetAttributes(attribute.Int("progression", progression))

	_, err = r.db.Exec(
		ctx,
		`
			INSERT INTO user_exercise_state (user_id, exercise_id, progression)
				VALUES ($1, $2, $3)
			ON CONFLICT (user_id, exercise_id)
				DO UPDATE SET progression = $3;`,
		userID, exerciseID, progression,
	)
	if err != nil {
		return fmt.Errorf("upsert progression: %w", err)
	}
	return nil
}

// TargetOverrides returns the user's per-muscle weekly volume adjustments,
// keyed by single muscle group flag.
func (r *Repo) TargetOverrides(ctx context.Context, userID uuid.UUID) (_ map[catalog.MuscleGroups]float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.targetoverrides")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID.String()))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT muscle, delta
			FROM user_muscle_target_override
			WHERE user_id = $1;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	overrides := make(map[catalog.MuscleGroups]float64)
	for rows.Next() {
		var muscle int64
		var delta float64
		if err := rows.Scan(&muscle, &delta); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		// compound flags are split so downstream code only ever sees single flags
		for _, m := range catalog.MuscleGroups(muscle).Split() {
			overrides[m] += delta
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return overrides, nil
}
