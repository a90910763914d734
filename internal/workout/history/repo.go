package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gscanlon21/a-workout-a-day-sub003/internal/telemetry/tracing"
	"github.com/gscanlon21/a-workout-a-day-sub003/internal/workout/catalog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Last returns the most recently delivered workout of the user as of the
// given timestamp, or nil when the user has no history yet.
func (r *Repo) Last(ctx context.Context, userID uuid.UUID, asOf time.Time) (_ *DeliveredWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.last")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID.String()))

	var w DeliveredWorkout
	err = r.db.QueryRow(
		ctx,
		`
			SELECT id, user_id, date, rotation_index, is_deload
			FROM delivered_workout
			WHERE user_id = $1 AND date <= $2
			ORDER BY date DESC, id DESC
			LIMIT 1;`,
		userID, asOf,
	).Scan(&w.ID, &w.UserID, &w.Date, &w.RotationIndex, &w.IsDeload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("last workout [query row]: %w", err)
	}
	return &w, nil
}

// LastDeload returns the date of the most recent deload delivery as of the
// given timestamp, or nil when the user never had one.
func (r *Repo) LastDeload(ctx context.Context, userID uuid.UUID, asOf time.Time) (_ *time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.lastdeload")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID.String()))

	var date time.Time
	err = r.db.QueryRow(
		ctx,
		`
			SELECT date
			FROM delivered_workout
			WHERE user_id = $1 AND is_deload IS TRUE AND date <= $2
			ORDER BY date DESC
			LIMIT 1;`,
		userID, asOf,
	).Scan(&date)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("last deload [query row]: %w", err)
	}
	return &date, nil
}

// ListSince returns the user's delivered workouts with their items, from the
// given date up to the as-of snapshot timestamp, oldest first.
func (r *Repo) ListSince(ctx context.Context, userID uuid.UUID, from, asOf time.Time) (_ []DeliveredWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.listsince")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID.String()))
	span.SetAttributes(attribute.String("from", from.String()))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				w.id, w.user_id, w.date, w.rotation_index, w.is_deload,
				i.section, i.item_order, i.exercise_id, i.variation_id, i.intensity
			FROM delivered_workout w
			JOIN delivered_workout_item i ON i.workout_id = w.id
			WHERE w.user_id = $1 AND w.date >= $2 AND w.date <= $3
			ORDER BY w.date ASC, w.id ASC, i.section ASC, i.item_order ASC;`,
		userID, from, asOf,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var workouts []DeliveredWorkout
	byID := make(map[int64]int)
	for rows.Next() {
		var w DeliveredWorkout
		var item Item
		var section, intensity int
		if err := rows.Scan(
			&w.ID, &w.UserID, &w.Date, &w.RotationIndex, &w.IsDeload,
			&section, &item.Order, &item.ExerciseID, &item.VariationID, &intensity,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		item.Section = catalog.Section(section)
		item.Intensity = catalog.IntensityLevel(intensity)

		idx, ok := byID[w.ID]
		if !ok {
			workouts = append(workouts, w)
			idx = len(workouts) - 1
			byID[w.ID] = idx
		}
		workouts[idx].Items = append(workouts[idx].Items, item)
	}
	// a truncated history would silently skew the weekly volume averages
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	if workouts == nil {
		workouts = make([]DeliveredWorkout, 0)
	}
	return workouts, nil
}

// Commit writes the delivered workout, its items, and the last-seen updates
// in a single transaction, so a crash mid-commit never leaves a partially
// recorded delivery. Returns the workout with its assigned id.
func (r *Repo) Commit(ctx context.Context, w *DeliveredWorkout, updates []LastSeenUpdate) (_ *DeliveredWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.commit")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", w.UserID.String()))
	span.SetAttributes(attribute.Int("items", len(w.Items)))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				err = fmt.Errorf("%w (rollback: %s)", err, rbErr)
			}
		}
	}()

	err = tx.QueryRow(
		ctx,
		`
			INSERT INTO delivered_workout (user_id, date, rotation_index, is_deload)
				VALUES ($1, $2, $3, $4)
			RETURNING id;`,
		w.UserID, w.Date, w.RotationIndex, w.IsDeload,
	).Scan(&w.ID)
	if err != nil {
		return nil, fmt.Errorf("insert workout: %w", err)
	}

	for _, item := range w.Items {
		if _, err = tx.Exec(
			ctx,
			`
				INSERT INTO delivered_workout_item
					(workout_id, section, item_order, exercise_id, variation_id, intensity)
				VALUES ($1, $2, $3, $4, $5, $6);`,
			w.ID, int(item.Section), item.Order, item.ExerciseID, item.VariationID, int(item.Intensity),
		); err != nil {
			return nil, fmt.Errorf("insert workout item: %w", err)
		}
	}

	for _, u := range updates {
		if _, err = tx.Exec(
			ctx,
			`
				INSERT INTO user_exercise_state (user_id, exercise_id, last_seen)
					VALUES ($1, $2, $3)
				ON CONFLICT (user_id, exercise_id)
					DO UPDATE SET last_seen = $3;`,
			w.UserID, u.ExerciseID, u.SeenAt,
		); err != nil {
			return nil, fmt.Errorf("upsert exercise last seen: %w", err)
		}
		if _, err = tx.Exec(
			ctx,
			`
				INSERT INTO user_variation_state (user_id, variation_id, last_seen)
					VALUES ($1, $2, $3)
				ON CONFLICT (user_id, variation_id)
					DO UPDATE SET last_seen = $3;`,
			w.UserID, u.VariationID, u.SeenAt,
		); err != nil {
			return nil, fmt.Errorf("upsert variation last seen: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return w, nil
}
