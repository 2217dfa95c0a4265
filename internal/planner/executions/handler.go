package executions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/gymplans/internal/auth"
	"github.com/2beens/gymplans/internal/planner"
	"github.com/2beens/gymplans/internal/planner/plans"
	"github.com/2beens/gymplans/internal/telemetry/metrics"
	"github.com/2beens/gymplans/internal/telemetry/tracing"
	"github.com/2beens/gymplans/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=executions_test

type executionsRepo interface {
	Add(ctx context.Context, execution *planner.ExerciseExecution) (*planner.ExerciseExecution, error)
	List(ctx context.Context, planID string) ([]planner.ExerciseExecution, error)
	Get(ctx context.Context, planID, executionID string) (*planner.ExerciseExecution, error)
	Update(ctx context.Context, execution *planner.ExerciseExecution) error
}

type planGetter interface {
	Get(ctx context.Context, planID string) (*planner.WorkoutPlan, error)
}

type locator interface {
	RequestLocation(ctx context.Context, r *http.Request) (string, error)
}

const (
	FieldSets   = "sets"
	FieldReps   = "reps"
	FieldWeight = "weight"

	DirectionUp   = "up"
	DirectionDown = "down"
)

type AddRequest struct {
	ExerciseID string `json:"exerciseId"`
	Location   string `json:"location"`
	Notes      string `json:"notes"`
}

// UpdateRequest changes only the fields that are set.
type UpdateRequest struct {
	Sets      *int     `json:"sets"`
	Reps      *int     `json:"reps"`
	WeightKg  *float64 `json:"weightKg"`
	Location  *string  `json:"location"`
	Notes     *string  `json:"notes"`
	Completed *bool    `json:"completed"`
}

type StepRequest struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

type Handler struct {
	repo           executionsRepo
	plans          planGetter
	locator        locator
	metricsManager *metrics.Manager

	repsStepper  planner.Stepper
	setsStepper  planner.Stepper
	weightSlider planner.WeightSlider
}

// NewHandler creates the executions handler. locator can be nil, then
// executions are stored without a location unless the client sends one.
func NewHandler(
	repo executionsRepo,
	plans planGetter,
	locator locator,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:           repo,
		plans:          plans,
		locator:        locator,
		metricsManager: metricsManager,
		repsStepper:    planner.DefaultStepper,
		setsStepper:    planner.DefaultStepper,
		weightSlider:   planner.DefaultWeightSlider,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/plans/{id}/executions", handler.HandleList).Methods("GET", "OPTIONS").Name("list-executions")
	r.HandleFunc("/plans/{id}/executions", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-execution")
	r.HandleFunc("/plans/{id}/executions/{execId}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-execution")
	r.HandleFunc("/plans/{id}/executions/{execId}/step", handler.HandleStep).Methods("POST", "OPTIONS").Name("step-execution")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.executions.list")
	defer span.End()

	plan, ok := handler.userPlan(ctx, w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	executions, err := handler.repo.List(ctx, plan.ID)
	if err != nil {
		log.Errorf("list executions for plan %s: %s", plan.ID, err)
		http.Error(w, "error, failed to get executions", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, executions, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.executions.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("add execution, unmarshal json params: %s", err)
		http.Error(w, "error, invalid request body", http.StatusBadRequest)
		return
	}
	if _, err := uuid.Parse(req.ExerciseID); err != nil {
		http.Error(w, "error, invalid exercise id", http.StatusBadRequest)
		return
	}

	plan, ok := handler.userPlan(ctx, w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	location := strings.TrimSpace(req.Location)
	if location == "" && handler.locator != nil {
		var err error
		if location, err = handler.locator.RequestLocation(ctx, r); err != nil {
			// not worth failing the execution for
			log.Warnf("add execution, resolve location: %s", err)
		}
	}

	now := time.Now()
	added, err := handler.repo.Add(ctx, &planner.ExerciseExecution{
		ID:            uuid.NewString(),
		WorkoutPlanID: plan.ID,
		ExerciseID:    req.ExerciseID,
		ExecutedAt:    now,
		Location:      location,
		Notes:         strings.TrimSpace(req.Notes),
		Completed:     false,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "error, exercise not found", http.StatusBadRequest)
			return
		}
		log.Errorf("add execution to plan %s: %s", plan.ID, err)
		http.Error(w, "error, failed to add execution", http.StatusInternalServerError)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterExecutionsLogged.Inc()
	}
	span.SetAttributes(attribute.String("execution.id", added.ID))

	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.executions.update")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("update execution, unmarshal json params: %s", err)
		http.Error(w, "error, invalid request body", http.StatusBadRequest)
		return
	}

	execution, ok := handler.userExecution(ctx, w, r)
	if !ok {
		return
	}

	if req.Sets != nil {
		execution.Sets = handler.setsStepper.Clamp(*req.Sets)
	}
	if req.Reps != nil {
		execution.Reps = handler.repsStepper.Clamp(*req.Reps)
	}
	if req.WeightKg != nil {
		execution.WeightKg = handler.weightSlider.Quantize(*req.WeightKg)
	}
	if req.Location != nil {
		execution.Location = strings.TrimSpace(*req.Location)
	}
	if req.Notes != nil {
		execution.Notes = strings.TrimSpace(*req.Notes)
	}
	if req.Completed != nil {
		execution.Completed = *req.Completed
	}

	handler.save(ctx, w, execution)
}

func (handler *Handler) HandleStep(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.executions.step")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req StepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("step execution, unmarshal json params: %s", err)
		http.Error(w, "error, invalid request body", http.StatusBadRequest)
		return
	}
	if req.Direction != DirectionUp && req.Direction != DirectionDown {
		http.Error(w, "error, direction must be up or down", http.StatusBadRequest)
		return
	}
	if req.Field != FieldSets && req.Field != FieldReps && req.Field != FieldWeight {
		http.Error(w, "error, field must be sets, reps or weight", http.StatusBadRequest)
		return
	}
	span.SetAttributes(
		attribute.String("step.field", req.Field),
		attribute.String("step.direction", req.Direction),
	)

	execution, ok := handler.userExecution(ctx, w, r)
	if !ok {
		return
	}

	up := req.Direction == DirectionUp
	switch req.Field {
	case FieldSets:
		execution.Sets = stepInt(handler.setsStepper, execution.Sets, up)
	case FieldReps:
		execution.Reps = stepInt(handler.repsStepper, execution.Reps, up)
	case FieldWeight:
		if up {
			execution.WeightKg = handler.weightSlider.Increment(execution.WeightKg)
		} else {
			execution.WeightKg = handler.weightSlider.Decrement(execution.WeightKg)
		}
	}

	handler.save(ctx, w, execution)
}

func stepInt(stepper planner.Stepper, v int, up bool) int {
	if up {
		return stepper.Increment(v)
	}
	return stepper.Decrement(v)
}

func (handler *Handler) save(ctx context.Context, w http.ResponseWriter, execution *planner.ExerciseExecution) {
	execution.UpdatedAt = time.Now()
	if err := handler.repo.Update(ctx, execution); err != nil {
		if errors.Is(err, ErrExecutionNotFound) {
			http.Error(w, "error, execution not found", http.StatusNotFound)
			return
		}
		log.Errorf("update execution %s: %s", execution.ID, err)
		http.Error(w, "error, failed to update execution", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, execution, http.StatusOK)
}

func (handler *Handler) userExecution(ctx context.Context, w http.ResponseWriter, r *http.Request) (*planner.ExerciseExecution, bool) {
	vars := mux.Vars(r)
	plan, ok := handler.userPlan(ctx, w, vars["id"])
	if !ok {
		return nil, false
	}

	executionID := vars["execId"]
	if _, err := uuid.Parse(executionID); err != nil {
		http.Error(w, "error, invalid execution id", http.StatusBadRequest)
		return nil, false
	}

	execution, err := handler.repo.Get(ctx, plan.ID, executionID)
	if err != nil {
		if errors.Is(err, ErrExecutionNotFound) {
			http.Error(w, "error, execution not found", http.StatusNotFound)
			return nil, false
		}
		log.Errorf("get execution %s: %s", executionID, err)
		http.Error(w, "error, failed to get execution", http.StatusInternalServerError)
		return nil, false
	}

	return execution, true
}

// userPlan makes sure the plan exists and belongs to the logged user.
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

	plan, err := handler.plans.Get(ctx, planID)
	if err != nil {
		if errors.Is(err, plans.ErrPlanNotFound) {
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
