package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/gscanlon21/a-workout-a-day-sub003/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrVariationNotFound   = errors.New("variation not found")
	ErrProficiencyNotFound = errors.New("proficiency not found")
)

// CandidateParams narrows the candidate set. Zero-valued fields do not filter;
// disabled rows are excluded unless IncludeDisabled is set explicitly (there
// is no ambient soft-delete filter).
type CandidateParams struct {
	Section         *Section
	MusclesAny      MuscleGroups
	MovementsAny    MovementPatterns
	JointsAny       Joints
	OwnedEquipment  *Equipment
	Progression     *int
	ExcludeGroups   ExerciseGroups
	IncludeDisabled bool
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Candidates returns every (exercise, variation, link) row matching the params.
func (r *Repo) Candidates(ctx context.Context, params CandidateParams) (_ []Candidate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.candidates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Bool("include-disabled", params.IncludeDisabled))

	var section int64 = -1
	if params.Section != nil {
		section = int64(*params.Section)
	}
	var owned int64 = -1
	if params.OwnedEquipment != nil {
		owned = int64(*params.OwnedEquipment)
	}
	var progression int64 = -1
	if params.Progression != nil {
		progression = int64(*params.Progression)
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				e.id, e.name, e.groups, e.core, e.disabled,
				v.id, v.exercise_id, v.name,
				v.strengthens, v.stretches, v.stabilizes,
				v.movements, v.mobility_joints, v.equipment,
				v.unilateral, v.weighted, v.use_caution, v.disabled,
				ev.id, ev.section, ev.progression_min, ev.progression_max
			FROM exercise_variation ev
			JOIN exercise e ON e.id = ev.exercise_id
			JOIN variation v ON v.id = ev.variation_id
				WHERE ($1::bigint = -1 OR ev.section = $1)
				AND ($2::bigint = 0 OR (v.strengthens & $2) <> 0)
				AND ($3::bigint = 0 OR (v.movements & $3) <> 0)
				AND ($4::bigint = 0 OR (v.mobility_joints & $4) <> 0)
				AND ($5::bigint = -1 OR (v.equipment & ~$5) = 0)
				AND ($6::bigint = -1 OR (ev.progression_min <= $6 AND ev.progression_max > $6))
				AND ($7::bigint = 0 OR (e.groups & $7) = 0)
				AND ($8::boolean IS TRUE OR (e.disabled IS FALSE AND v.disabled IS FALSE))
			ORDER BY e.id, ev.progression_min, v.id;`,
		section,
		int64(params.MusclesAny), int64(params.MovementsAny), int64(params.JointsAny),
		owned, progression, int64(params.ExcludeGroups),
		params.IncludeDisabled,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	candidates, err := r.rows2candidates(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2candidates: %w", err)
	}
	return candidates, nil
}

func (r *Repo) Variation(ctx context.Context, id int64) (_ Variation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.variation")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("id", id))

	var v Variation
	var strengthens, stretches, stabilizes, movements, joints, equipment int64
	err = r.db.QueryRow(
		ctx,
		`
			SELECT
				id, exercise_id, name,
				strengthens, stretches, stabilizes,
				movements, mobility_joints, equipment,
				unilateral, weighted, use_caution, disabled
			FROM variation
			WHERE id = $1;`,
		id,
	).Scan(
		&v.ID, &v.ExerciseID, &v.Name,
		&strengthens, &stretches, &stabilizes,
		&movements, &joints, &equipment,
		&v.Unilateral, &v.Weighted, &v.UseCaution, &v.Disabled,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Variation{}, ErrVariationNotFound
	}
	if err != nil {
		return Variation{}, fmt.Errorf("variation [query row]: %w", err)
	}

	v.Strengthens = MuscleGroups(strengthens)
	v.Stretches = MuscleGroups(stretches)
	v.Stabilizes = MuscleGroups(stabilizes)
	v.Movements = MovementPatterns(movements)
	v.MobilityJoints = Joints(joints)
	v.Equipment = Equipment(equipment)
	return v, nil
}

// Proficiency returns the prescription for a variation at one intensity level.
func (r *Repo) Proficiency(ctx context.Context, variationID int64, level IntensityLevel) (_ Proficiency, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.proficiency")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("variation_id", variationID))
	span.SetAttributes(attribute.String("intensity", level.String()))

	var p Proficiency
	err = r.db.QueryRow(
		ctx,
		`
			SELECT id, variation_id, intensity, min_reps, max_reps, secs, sets
			FROM proficiency
			WHERE variation_id = $1 AND intensity = $2;`,
		variationID, int(level),
	).Scan(&p.ID, &p.VariationID, &p.Intensity, &p.MinReps, &p.MaxReps, &p.Secs, &p.Sets)
	if errors.Is(err, pgx.ErrNoRows) {
		return Proficiency{}, ErrProficiencyNotFound
	}
	if err != nil {
		return Proficiency{}, fmt.Errorf("proficiency [query row]: %w", err)
	}
	return p, nil
}

// Prerequisites returns the full prerequisite edge list of the catalog.
// Disabled exercises cannot gate, so their edges are filtered out here.
func (r *Repo) Prerequisites(ctx context.Context) (_ []Prerequisite, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.prerequisites")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT p.exercise_id, p.requires_id, p.proficiency
			FROM exercise_prerequisite p
			JOIN exercise e ON e.id = p.requires_id
			WHERE e.disabled IS FALSE
			ORDER BY p.exercise_id, p.requires_id;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var prereqs []Prerequisite
	for rows.Next() {
		var p Prerequisite
		if err := rows.Scan(&p.ExerciseID, &p.RequiresID, &p.Proficiency); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		prereqs = append(prereqs, p)
	}
	// a truncated edge list would leave exercises ungated
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	if prereqs == nil {
		prereqs = make([]Prerequisite, 0)
	}
	return prereqs, nil
}

func (r *Repo) rows2candidates(rows pgx.Rows) ([]Candidate, error) {
	var candidates []Candidate
	for rows.Next() {
		var c Candidate
		var groups int64
		var strengthens, stretches, stabilizes, movements, joints, equipment int64
		var section int
		if err := rows.Scan(
			&c.Exercise.ID, &c.Exercise.Name, &groups, &c.Exercise.Core, &c.Exercise.Disabled,
			&c.Variation.ID, &c.Variation.ExerciseID, &c.Variation.Name,
			&strengthens, &stretches, &stabilizes,
			&movements, &joints, &equipment,
			&c.Variation.Unilateral, &c.Variation.Weighted, &c.Variation.UseCaution, &c.Variation.Disabled,
			&c.Link.ID, &section, &c.Link.ProgressionMin, &c.Link.ProgressionMax,
		); err != nil {
			return nil, err
		}

		c.Exercise.Groups = ExerciseGroups(groups)
		c.Variation.Strengthens = MuscleGroups(strengthens)
		c.Variation.Stretches = MuscleGroups(stretches)
		c.Variation.Stabilizes = MuscleGroups(stabilizes)
		c.Variation.Movements = MovementPatterns(movements)
		c.Variation.MobilityJoints = Joints(joints)
		c.Variation.Equipment = Equipment(equipment)
		c.Link.ExerciseID = c.Exercise.ID
		c.Link.VariationID = c.Variation.ID
		c.Link.Section = Section(section)

		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if candidates == nil {
		candidates = make([]Candidate, 0)
	}
	return candidates, nil
}
