package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/gymplans/internal/planner"
	"github.com/2beens/gymplans/internal/planner/plans"
)

type exerciseLibrary interface {
	Exercises(ctx context.Context) ([]planner.Exercise, error)
}

type planGetter interface {
	Get(ctx context.Context, planID string) (*planner.WorkoutPlan, error)
}

type executionsLister interface {
	List(ctx context.Context, planID string) ([]planner.ExerciseExecution, error)
}

// plannerService is what the tool handlers need, kept small for tests.
type plannerService interface {
	GetSchema(ctx context.Context) (string, error)
	Templates() []plans.TemplateResponse
	SearchExercises(ctx context.Context, query string) ([]planner.ExerciseMatch, error)
	PlanProgress(ctx context.Context, planID string) (*plans.ProgressReport, error)
	PlanExecutions(ctx context.Context, planID string) ([]planner.ExerciseExecution, error)
}

// PlannerService answers read-only planner questions for MCP clients.
// It runs the same core as the HTTP API, without the per-user scoping.
type PlannerService struct {
	schema     SchemaRepo
	library    exerciseLibrary
	plans      planGetter
	executions executionsLister
}

func NewPlannerService(
	schemaRepo SchemaRepo,
	library exerciseLibrary,
	plans planGetter,
	executions executionsLister,
) *PlannerService {
	return &PlannerService{
		schema:     schemaRepo,
		library:    library,
		plans:      plans,
		executions: executions,
	}
}

// GetSchema returns the planner tables as markdown.
func (s *PlannerService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetPlannerColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatPlannerSchema(cols), nil
}

func formatPlannerSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Planner DB Schema\n\nNo planner tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Planner DB Schema\n\n")
	b.WriteString("Tables: ")
	b.WriteString(strings.Join(plannerTables, ", "))
	b.WriteString(" (schema: public).\n\n")

	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def)
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

func (s *PlannerService) Templates() []plans.TemplateResponse {
	return plans.TemplateResponses()
}

func (s *PlannerService) SearchExercises(ctx context.Context, query string) ([]planner.ExerciseMatch, error) {
	library, err := s.library.Exercises(ctx)
	if err != nil {
		return nil, fmt.Errorf("load exercise library: %w", err)
	}
	return planner.SearchExercises(query, library), nil
}

func (s *PlannerService) PlanProgress(ctx context.Context, planID string) (*plans.ProgressReport, error) {
	plan, err := s.plans.Get(ctx, planID)
	if err != nil {
		return nil, err
	}
	executions, err := s.executions.List(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("list executions: %w", err)
	}
	report := plans.Report(plan, executions)
	return &report, nil
}

func (s *PlannerService) PlanExecutions(ctx context.Context, planID string) ([]planner.ExerciseExecution, error) {
	if _, err := s.plans.Get(ctx, planID); err != nil {
		return nil, err
	}
	return s.executions.List(ctx, planID)
}
