package mcp

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/2beens/gymplans/internal/planner/plans"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler turns MCP tool calls into service calls and formats the results.
type Handler struct {
	service plannerService
}

func NewHandler(service plannerService) *Handler {
	return &Handler{
		service: service,
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

// GetPlannerContextTool returns the MCP tool handler for get_planner_context.
func (h *Handler) GetPlannerContextTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

// ListWorkoutTemplatesTool returns the MCP tool handler for list_workout_templates.
func (h *Handler) ListWorkoutTemplatesTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		return jsonResult(h.service.Templates()), nil, nil
	}
}

// SearchExercisesInput is the input for search_exercises.
type SearchExercisesInput struct {
	Query string `json:"query" jsonschema:"Part of an exercise name or alias (e.g. bench, rdl)"`
}

// SearchExercisesTool returns the MCP tool handler for search_exercises.
func (h *Handler) SearchExercisesTool() func(context.Context, *mcp.CallToolRequest, SearchExercisesInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in SearchExercisesInput) (*mcp.CallToolResult, any, error) {
		matches, err := h.service.SearchExercises(ctx, in.Query)
		if err != nil {
			return errorResult("Error searching exercises: " + err.Error()), nil, nil
		}
		return jsonResult(matches), nil, nil
	}
}

// PlanInput is the input for the plan scoped tools.
type PlanInput struct {
	PlanID string `json:"plan_id" jsonschema:"Workout plan id (UUID)"`
}

// GetPlanProgressTool returns the MCP tool handler for get_plan_progress.
func (h *Handler) GetPlanProgressTool() func(context.Context, *mcp.CallToolRequest, PlanInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in PlanInput) (*mcp.CallToolResult, any, error) {
		if _, err := uuid.Parse(in.PlanID); err != nil {
			return errorResult("Invalid plan_id: must be a UUID"), nil, nil
		}
		report, err := h.service.PlanProgress(ctx, in.PlanID)
		if err != nil {
			return planError("Error computing plan progress: ", err), nil, nil
		}
		return jsonResult(report), nil, nil
	}
}

// ListPlanExecutionsTool returns the MCP tool handler for list_plan_executions.
func (h *Handler) ListPlanExecutionsTool() func(context.Context, *mcp.CallToolRequest, PlanInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in PlanInput) (*mcp.CallToolResult, any, error) {
		if _, err := uuid.Parse(in.PlanID); err != nil {
			return errorResult("Invalid plan_id: must be a UUID"), nil, nil
		}
		list, err := h.service.PlanExecutions(ctx, in.PlanID)
		if err != nil {
			return planError("Error listing executions: ", err), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

func planError(prefix string, err error) *mcp.CallToolResult {
	if errors.Is(err, plans.ErrPlanNotFound) {
		return errorResult("Plan not found")
	}
	return errorResult(prefix + err.Error())
}
