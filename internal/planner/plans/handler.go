package plans

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/gymplans/internal/auth"
	"github.com/2beens/gymplans/internal/planner"
	"github.com/2beens/gymplans/internal/telemetry/metrics"
	"github.com/2beens/gymplans/internal/telemetry/tracing"
	"github.com/2beens/gymplans/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=plans_test

type plansRepo interface {
	Create(ctx context.Context, plan *planner.WorkoutPlan) (*planner.WorkoutPlan, error)
	List(ctx context.Context, userID string) ([]planner.WorkoutPlan, error)
	Get(ctx context.Context, planID string) (*planner.WorkoutPlan, error)
	Update(ctx context.Context, plan *planner.WorkoutPlan) error
	UpdateStatus(ctx context.Context, planID string, status planner.PlanStatus, at time.Time) error
}

type executionsLister interface {
	List(ctx context.Context, planID string) ([]planner.ExerciseExecution, error)
}

type muscleGroupsLister interface {
	MuscleGroups(ctx context.Context) ([]planner.MuscleGroup, error)
}

type PlanRequest struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Targets     []planner.TargetDraft `json:"targets"`
}

type StatusRequest struct {
	Status planner.PlanStatus `json:"status"`
}

type TemplateResponse struct {
	planner.Template
	Total int `json:"total"`
}

// TemplateResponses lists the built-in templates in their display order.
func TemplateResponses() []TemplateResponse {
	templates := make([]TemplateResponse, 0, len(planner.Templates))
	for _, t := range planner.Templates {
		templates = append(templates, TemplateResponse{Template: t, Total: t.Total()})
	}
	return templates
}

type TemplateTargetsResponse struct {
	Template TemplateResponse      `json:"template"`
	Targets  []planner.TargetDraft `json:"targets"`
}

type Handler struct {
	repo           plansRepo
	executions     executionsLister
	muscleGroups   muscleGroupsLister
	metricsManager *metrics.Manager
}

func NewHandler(
	repo plansRepo,
	executions executionsLister,
	muscleGroups muscleGroupsLister,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:           repo,
		executions:     executions,
		muscleGroups:   muscleGroups,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	// templates first, so they are not taken for a plan id
	r.HandleFunc("/plans/templates", handler.HandleListTemplates).Methods("GET", "OPTIONS").Name("list-templates")
	r.HandleFunc("/plans/templates/{id}/targets", handler.HandleApplyTemplate).Methods("GET", "OPTIONS").Name("apply-template")

	r.HandleFunc("/plans", handler.HandleList).Methods("GET", "OPTIONS").Name("list-plans")
	r.HandleFunc("/plans", handler.HandleCreate).Methods("POST", "OPTIONS").Name("new-plan")
	r.HandleFunc("/plans/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-plan")
	r.HandleFunc("/plans/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-plan")
	r.HandleFunc("/plans/{id}/status", handler.HandleUpdateStatus).Methods("PUT", "OPTIONS").Name("update-plan-status")
	r.HandleFunc("/plans/{id}/progress", handler.HandleProgress).Methods("GET", "OPTIONS").Name("plan-progress")
}

func (handler *Handler) HandleListTemplates(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.templates")
	defer span.End()

	pkg.WriteJSON(w, TemplateResponses(), http.StatusOK)
}

func (handler *Handler) HandleApplyTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.apply_template")
	defer span.End()

	templateID := mux.Vars(r)["id"]
	template, ok := planner.TemplateByID(templateID)
	if !ok {
		http.Error(w, "error, template not found", http.StatusNotFound)
		return
	}

	groups, err := handler.muscleGroups.MuscleGroups(ctx)
	if err != nil {
		log.Errorf("apply template [%s], get muscle groups: %s", templateID, err)
		http.Error(w, "error, failed to get muscle groups", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, TemplateTargetsResponse{
		Template: TemplateResponse{Template: template, Total: template.Total()},
		Targets:  planner.ApplyTemplate(template, groups),
	}, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	plans, err := handler.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("list plans for user %s: %s", userID, err)
		http.Error(w, "error, failed to get plans", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, plans, http.StatusOK)
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.create")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	req, ok := decodePlanRequest(w, r)
	if !ok {
		return
	}

	now := time.Now()
	plan := &planner.WorkoutPlan{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Status:      planner.PlanStatusDraft,
		StartedAt:   now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	targets, total, err := BuildTargets(plan.ID, req.Targets)
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	plan.Targets = targets
	plan.TotalExercisesPlanned = total

	created, err := handler.repo.Create(ctx, plan)
	if err != nil {
		switch {
		case errors.Is(err, ErrMuscleGroupNotFound):
			http.Error(w, "error, unknown muscle group", http.StatusBadRequest)
			return
		case errors.Is(err, ErrNegativeTarget):
			http.Error(w, "error, "+ErrNegativeTarget.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("create plan for user %s: %s", userID, err)
		http.Error(w, "error, failed to create plan", http.StatusInternalServerError)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterPlansCreated.Inc()
	}
	log.Debugf("new plan created: [%s] %s, total %d", created.ID, created.Name, created.TotalExercisesPlanned)

	pkg.WriteJSON(w, created, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.get")
	defer span.End()

	plan, ok := handler.userPlan(ctx, w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	pkg.WriteJSON(w, plan, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.update")
	defer span.End()

	plan, ok := handler.userPlan(ctx, w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	req, ok := decodePlanRequest(w, r)
	if !ok {
		return
	}

	targets, total, err := BuildTargets(plan.ID, req.Targets)
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	plan.Name = req.Name
	plan.Description = req.Description
	plan.Targets = targets
	plan.TotalExercisesPlanned = total
	plan.UpdatedAt = time.Now()

	if err := handler.repo.Update(ctx, plan); err != nil {
		switch {
		case errors.Is(err, ErrPlanNotFound):
			http.Error(w, "error, plan not found", http.StatusNotFound)
		case errors.Is(err, ErrMuscleGroupNotFound):
			http.Error(w, "error, unknown muscle group", http.StatusBadRequest)
		case errors.Is(err, ErrNegativeTarget):
			http.Error(w, "error, "+ErrNegativeTarget.Error(), http.StatusBadRequest)
		default:
			log.Errorf("update plan %s: %s", plan.ID, err)
			http.Error(w, "error, failed to update plan", http.StatusInternalServerError)
		}
		return
	}

	updated, err := handler.repo.Get(ctx, plan.ID)
	if err != nil {
		log.Errorf("get updated plan %s: %s", plan.ID, err)
		http.Error(w, "error, failed to get plan", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (handler *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.update_status")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("update plan status, unmarshal json params: %s", err)
		http.Error(w, "error, invalid request body", http.StatusBadRequest)
		return
	}
	if !req.Status.Valid() {
		http.Error(w, "error, invalid status", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("plan.status", string(req.Status)))

	plan, ok := handler.userPlan(ctx, w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	if err := handler.repo.UpdateStatus(ctx, plan.ID, req.Status, time.Now()); err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			http.Error(w, "error, plan not found", http.StatusNotFound)
			return
		}
		log.Errorf("update plan %s status: %s", plan.ID, err)
		http.Error(w, "error, failed to update plan status", http.StatusInternalServerError)
		return
	}

	updated, err := handler.repo.Get(ctx, plan.ID)
	if err != nil {
		log.Errorf("get updated plan %s: %s", plan.ID, err)
		http.Error(w, "error, failed to get plan", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (handler *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.progress")
	defer span.End()

	plan, ok := handler.userPlan(ctx, w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	executions, err := handler.executions.List(ctx, plan.ID)
	if err != nil {
		log.Errorf("plan progress %s, list executions: %s", plan.ID, err)
		http.Error(w, "error, failed to get executions", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, Report(plan, executions), http.StatusOK)
}

// userPlan loads the plan and makes sure it belongs to the logged user.
// Plans of other users are reported as not found.
func (handler *Handler) userPlan(ctx context.Context, w http.ResponseWriter, planID string) (*planner.WorkoutPlan, bool) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return nil, false
	}

	if _, err := uuid.Parse(planID); err != nil {
		http.Error(w, "error, invalid plan id", http.StatusBadRequest)
		return nil, false
	}

	plan, err := handler.repo.Get(ctx, planID)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			http.Error(w, "error, plan not found", http.StatusNotFound)
			return nil, false
		}
		log.Errorf("get plan %s: %s", planID, err)
		http.Error(w, "error, failed to get plan", http.StatusInternalServerError)
		return nil, false
	}

	if plan.UserID != userID {
		http.Error(w, "error, plan not found", http.StatusNotFound)
		return nil, false
	}

	return plan, true
}

func decodePlanRequest(w http.ResponseWriter, r *http.Request) (PlanRequest, bool) {
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return PlanRequest{}, false
	}

	var req PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("plan request, unmarshal json params: %s", err)
		http.Error(w, "error, invalid request body", http.StatusBadRequest)
		return PlanRequest{}, false
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
	if req.Name == "" {
		http.Error(w, "error, plan name empty", http.StatusBadRequest)
		return PlanRequest{}, false
	}

	return req, true
}
