package exercises

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymplans/internal/planner"
	"github.com/2beens/gymplans/internal/telemetry/tracing"
	"github.com/2beens/gymplans/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrExerciseNotFound    = errors.New("exercise not found")
	ErrExerciseExists      = errors.New("exercise with that name already exists")
	ErrMuscleGroupNotFound = errors.New("muscle group not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) ListMuscleGroups(ctx context.Context) (_ []planner.MuscleGroup, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.planner.muscle_groups.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT id, name FROM muscle_groups ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("muscle groups [query]: %w", err)
	}
	defer rows.Close()

	groups := make([]planner.MuscleGroup, 0)
	for rows.Next() {
		var g planner.MuscleGroup
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("muscle groups [rows scan]: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("muscle groups [rows error]: %w", err)
	}

	span.SetAttributes(attribute.Int("muscle_groups.count", len(groups)))
	return groups, nil
}

const exerciseColumns = `
	id, name, COALESCE(description, ''), aliases,
	primary_muscle_group_id, secondary_muscle_group_id, created_at
`

func scanExercise(row pgx.Row) (planner.Exercise, error) {
	var ex planner.Exercise
	err := row.Scan(
		&ex.ID,
		&ex.Name,
		&ex.Description,
		&ex.Aliases,
		&ex.PrimaryMuscleGroupID,
		&ex.SecondaryMuscleGroupID,
		&ex.CreatedAt,
	)
	if ex.Aliases == nil {
		ex.Aliases = []string{}
	}
	return ex, err
}

func (r *Repo) ListExercises(ctx context.Context) (_ []planner.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.planner.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT `+exerciseColumns+` FROM exercises ORDER BY lower(name)`)
	if err != nil {
		return nil, fmt.Errorf("exercises [query]: %w", err)
	}
	defer rows.Close()

	exercises := make([]planner.Exercise, 0)
	for rows.Next() {
		ex, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("exercises [rows scan]: %w", err)
		}
		exercises = append(exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercises [rows error]: %w", err)
	}

	span.SetAttributes(attribute.Int("exercises.count", len(exercises)))
	return exercises, nil
}

func (r *Repo) GetExercise(ctx context.Context, id string) (_ planner.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.planner.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", id))

	ex, err := scanExercise(r.db.QueryRow(ctx, `SELECT `+exerciseColumns+` FROM exercises WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return planner.Exercise{}, ErrExerciseNotFound
		}
		return planner.Exercise{}, fmt.Errorf("exercise [query row]: %w", err)
	}

	return ex, nil
}

func (r *Repo) AddExercise(ctx context.Context, exercise planner.Exercise) (_ planner.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.planner.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if exercise.CreatedAt.IsZero() {
		exercise.CreatedAt = time.Now()
	}
	if exercise.Aliases == nil {
		exercise.Aliases = []string{}
	}

	var description *string
	if exercise.Description != "" {
		description = &exercise.Description
	}

	_, err = r.db.Exec(
		ctx,
		`
			INSERT INTO exercises
			    (id, name, description, aliases, primary_muscle_group_id, secondary_muscle_group_id, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`,
		exercise.ID,
		exercise.Name,
		description,
		exercise.Aliases,
		exercise.PrimaryMuscleGroupID,
		exercise.SecondaryMuscleGroupID,
		exercise.CreatedAt,
	)
	if err != nil {
		switch {
		case pkg.IsUniqueViolationError(err):
			return planner.Exercise{}, ErrExerciseExists
		case pkg.IsForeignKeyViolationError(err):
			return planner.Exercise{}, ErrMuscleGroupNotFound
		}
		return planner.Exercise{}, fmt.Errorf("exercise [insert]: %w", err)
	}

	return exercise, nil
}
