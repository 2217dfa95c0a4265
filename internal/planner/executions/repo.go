package executions

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymplans/internal/planner"
	"github.com/2beens/gymplans/internal/telemetry/tracing"
	"github.com/2beens/gymplans/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrExecutionNotFound = errors.New("exercise execution not found")
	ErrExerciseNotFound  = errors.New("exercise not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, execution *planner.ExerciseExecution) (_ *planner.ExerciseExecution, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.planner.executions.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`
			INSERT INTO exercise_executions
			    (id, workout_plan_id, exercise_id, executed_at, sets, reps, weight_kg, location, notes, completed, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		`,
		execution.ID,
		execution.WorkoutPlanID,
		execution.ExerciseID,
		execution.ExecutedAt,
		execution.Sets,
		execution.Reps,
		execution.WeightKg,
		nullableString(execution.Location),
		nullableString(execution.Notes),
		execution.Completed,
		execution.CreatedAt,
		execution.UpdatedAt,
	)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrExerciseNotFound
		}
		return nil, fmt.Errorf("execution [insert]: %w", err)
	}

	return r.Get(ctx, execution.WorkoutPlanID, execution.ID)
}

const executionColumns = `
	ee.id, ee.workout_plan_id, ee.exercise_id, ee.executed_at, ee.sets, ee.reps, ee.weight_kg,
	COALESCE(ee.location, ''), COALESCE(ee.notes, ''), ee.completed, ee.created_at, ee.updated_at,
	e.id, e.name, COALESCE(e.description, ''), e.aliases,
	e.primary_muscle_group_id, e.secondary_muscle_group_id, e.created_at
`

func scanExecution(row pgx.Row) (planner.ExerciseExecution, error) {
	var (
		ex   planner.ExerciseExecution
		exer planner.Exercise
	)
	err := row.Scan(
		&ex.ID,
		&ex.WorkoutPlanID,
		&ex.ExerciseID,
		&ex.ExecutedAt,
		&ex.Sets,
		&ex.Reps,
		&ex.WeightKg,
		&ex.Location,
		&ex.Notes,
		&ex.Completed,
		&ex.CreatedAt,
		&ex.UpdatedAt,
		&exer.ID,
		&exer.Name,
		&exer.Description,
		&exer.Aliases,
		&exer.PrimaryMuscleGroupID,
		&exer.SecondaryMuscleGroupID,
		&exer.CreatedAt,
	)
	if err != nil {
		return planner.ExerciseExecution{}, err
	}
	if exer.Aliases == nil {
		exer.Aliases = []string{}
	}
	ex.Exercise = &exer
	return ex, nil
}

// List returns the plan executions with their exercise, newest first.
func (r *Repo) List(ctx context.Context, planID string) (_ []planner.ExerciseExecution, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.planner.executions.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan.id", planID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT `+executionColumns+`
			FROM exercise_executions ee
			JOIN exercises e ON e.id = ee.exercise_id
			WHERE ee.workout_plan_id = $1
			ORDER BY ee.executed_at DESC
		`,
		planID,
	)
	if err != nil {
		return nil, fmt.Errorf("executions [query]: %w", err)
	}
	defer rows.Close()

	executions := make([]planner.ExerciseExecution, 0)
	for rows.Next() {
		ex, err := scanExecution(rows)
		if err != nil {
			return nil, fmt.Errorf("executions [rows scan]: %w", err)
		}
		executions = append(executions, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("executions [rows error]: %w", err)
	}

	span.SetAttributes(attribute.Int("executions.count", len(executions)))
	return executions, nil
}

func (r *Repo) Get(ctx context.Context, planID, executionID string) (_ *planner.ExerciseExecution, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.planner.executions.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	ex, err := scanExecution(r.db.QueryRow(
		ctx,
		`
			SELECT `+executionColumns+`
			FROM exercise_executions ee
			JOIN exercises e ON e.id = ee.exercise_id
			WHERE ee.workout_plan_id = $1 AND ee.id = $2
		`,
		planID, executionID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExecutionNotFound
		}
		return nil, fmt.Errorf("execution [query row]: %w", err)
	}

	return &ex, nil
}

func (r *Repo) Update(ctx context.Context, execution *planner.ExerciseExecution) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.planner.executions.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`
			UPDATE exercise_executions
			SET sets = $1, reps = $2, weight_kg = $3, location = $4, notes = $5, completed = $6, updated_at = $7
			WHERE id = $8 AND workout_plan_id = $9
		`,
		execution.Sets,
		execution.Reps,
		execution.WeightKg,
		nullableString(execution.Location),
		nullableString(execution.Notes),
		execution.Completed,
		execution.UpdatedAt,
		execution.ID,
		execution.WorkoutPlanID,
	)
	if err != nil {
		return fmt.Errorf("execution [update]: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrExecutionNotFound
	}

	return nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
