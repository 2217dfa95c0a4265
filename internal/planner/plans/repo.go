package plans

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
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrPlanNotFound        = errors.New("workout plan not found")
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

// Create stores the plan and its targets in one transaction.
// Targets must already be filtered, the caller decides which ones are stored.
func (r *Repo) Create(ctx context.Context, plan *planner.WorkoutPlan) (_ *planner.WorkoutPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.planner.plans.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("plan [begin tx]: %w", err)
	}
	defer rollback(ctx, tx)

	_, err = tx.Exec(
		ctx,
		`
			INSERT INTO workout_plans
			    (id, user_id, name, description, status, total_exercises_planned, started_at, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`,
		plan.ID,
		plan.UserID,
		plan.Name,
		nullableString(plan.Description),
		plan.Status,
		plan.TotalExercisesPlanned,
		plan.StartedAt,
		plan.CreatedAt,
		plan.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("plan [insert]: %w", err)
	}

	if err := insertTargets(ctx, tx, plan.Targets); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("plan [commit]: %w", err)
	}

	span.SetAttributes(attribute.Int("targets.count", len(plan.Targets)))
	return r.Get(ctx, plan.ID)
}

func (r *Repo) List(ctx context.Context, userID string) (_ []planner.WorkoutPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.planner.plans.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+planColumns+` FROM workout_plans WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("plans [query]: %w", err)
	}
	defer rows.Close()

	plans := make([]planner.WorkoutPlan, 0)
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("plans [rows scan]: %w", err)
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("plans [rows error]: %w", err)
	}

	return plans, nil
}

// Get returns the plan with its targets, target muscle group names included.
func (r *Repo) Get(ctx context.Context, planID string) (_ *planner.WorkoutPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.planner.plans.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan.id", planID))

	plan, err := scanPlan(r.db.QueryRow(
		ctx,
		`SELECT `+planColumns+` FROM workout_plans WHERE id = $1`,
		planID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("plan [query row]: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT t.id, t.workout_plan_id, t.muscle_group_id, mg.name, t.exercises_target
			FROM workout_plan_muscle_targets t
			JOIN muscle_groups mg ON mg.id = t.muscle_group_id
			WHERE t.workout_plan_id = $1
			ORDER BY mg.name
		`,
		planID,
	)
	if err != nil {
		return nil, fmt.Errorf("plan targets [query]: %w", err)
	}
	defer rows.Close()

	plan.Targets = make([]planner.MuscleTarget, 0)
	for rows.Next() {
		var t planner.MuscleTarget
		if err := rows.Scan(&t.ID, &t.WorkoutPlanID, &t.MuscleGroupID, &t.MuscleGroupName, &t.ExercisesTarget); err != nil {
			return nil, fmt.Errorf("plan targets [rows scan]: %w", err)
		}
		plan.Targets = append(plan.Targets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("plan targets [rows error]: %w", err)
	}

	return &plan, nil
}

// Update replaces name, description, total and all targets of the plan.
func (r *Repo) Update(ctx context.Context, plan *planner.WorkoutPlan) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.planner.plans.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("plan [begin tx]: %w", err)
	}
	defer rollback(ctx, tx)

	tag, err := tx.Exec(
		ctx,
		`
			UPDATE workout_plans
			SET name = $1, description = $2, total_exercises_planned = $3, updated_at = $4
			WHERE id = $5
		`,
		plan.Name,
		nullableString(plan.Description),
		plan.TotalExercisesPlanned,
		plan.UpdatedAt,
		plan.ID,
	)
	if err != nil {
		return fmt.Errorf("plan [update]: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPlanNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM workout_plan_muscle_targets WHERE workout_plan_id = $1`, plan.ID); err != nil {
		return fmt.Errorf("plan targets [delete]: %w", err)
	}

	if err := insertTargets(ctx, tx, plan.Targets); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("plan [commit]: %w", err)
	}

	return nil
}

// UpdateStatus sets the plan status, completed_at follows the completed status.
func (r *Repo) UpdateStatus(ctx context.Context, planID string, status planner.PlanStatus, at time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.planner.plans.update_status")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan.status", string(status)))

	var completedAt *time.Time
	if status == planner.PlanStatusCompleted {
		completedAt = &at
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_plans SET status = $1, completed_at = $2, updated_at = $3 WHERE id = $4`,
		status, completedAt, at, planID,
	)
	if err != nil {
		return fmt.Errorf("plan status [update]: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPlanNotFound
	}

	return nil
}

const planColumns = `
	id, user_id, name, COALESCE(description, ''), status, total_exercises_planned,
	started_at, completed_at, created_at, updated_at
`

func scanPlan(row pgx.Row) (planner.WorkoutPlan, error) {
	var plan planner.WorkoutPlan
	err := row.Scan(
		&plan.ID,
		&plan.UserID,
		&plan.Name,
		&plan.Description,
		&plan.Status,
		&plan.TotalExercisesPlanned,
		&plan.StartedAt,
		&plan.CompletedAt,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)
	return plan, err
}

func insertTargets(ctx context.Context, tx pgx.Tx, targets []planner.MuscleTarget) error {
	if len(targets) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, t := range targets {
		batch.Queue(
			`
				INSERT INTO workout_plan_muscle_targets (id, workout_plan_id, muscle_group_id, exercises_target)
				VALUES ($1, $2, $3, $4)
			`,
			t.ID, t.WorkoutPlanID, t.MuscleGroupID, t.ExercisesTarget,
		)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		switch {
		case pkg.IsForeignKeyViolationError(err):
			return ErrMuscleGroupNotFound
		case pkg.IsCheckViolationError(err):
			return ErrNegativeTarget
		}
		return fmt.Errorf("plan targets [insert]: %w", err)
	}
	return nil
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		log.Errorf("plan tx rollback: %s", err)
	}
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
