package mcp

import (
	"github.com/2beens/gymplans/internal/planner/executions"
	"github.com/2beens/gymplans/internal/planner/plans"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with read-only planner tools: schema, templates,
// exercise search, plan progress and plan executions.
// Mounted at /mcp by internal/server and served over stdio by cmd/planner_mcp.
func NewServer(pool *pgxpool.Pool, library exerciseLibrary) *mcp.Server {
	svc := NewPlannerService(
		NewPoolSchemaRepo(pool),
		library,
		plans.NewRepo(pool),
		executions.NewRepo(pool),
	)
	h := NewHandler(svc)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "gymplans-planner",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_planner_context",
		Description: "Returns the DB schema of the planner tables (muscle_groups, exercises, workout_plans, workout_plan_muscle_targets, exercise_executions): columns, types, nullable, default.",
	}, h.GetPlannerContextTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_workout_templates",
		Description: "Returns the built-in workout templates with their per muscle group values (order: Chest, Back, Shoulders, Biceps, Triceps, Legs) and total.",
	}, h.ListWorkoutTemplatesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "search_exercises",
		Description: "Searches the exercise library by name or alias, case-insensitive. Exact name matches first, then name matches, then alias-only matches (with the matched alias). Arg: query.",
	}, h.SearchExercisesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_plan_progress",
		Description: "Returns the overall and per muscle group progress of a workout plan: target, completed executions and percentage. Arg: plan_id.",
	}, h.GetPlanProgressTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_plan_executions",
		Description: "Returns the exercise executions logged for a workout plan, newest first. Arg: plan_id.",
	}, h.ListPlanExecutionsTool())

	return s
}
