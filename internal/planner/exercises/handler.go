package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/gymplans/internal/planner"
	"github.com/2beens/gymplans/internal/telemetry/metrics"
	"github.com/2beens/gymplans/internal/telemetry/tracing"
	"github.com/2beens/gymplans/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	GetExercise(ctx context.Context, id string) (planner.Exercise, error)
	AddExercise(ctx context.Context, exercise planner.Exercise) (planner.Exercise, error)
}

type exerciseLibrary interface {
	Exercises(ctx context.Context) ([]planner.Exercise, error)
	MuscleGroups(ctx context.Context) ([]planner.MuscleGroup, error)
	InvalidateExercises()
}

type AddExerciseRequest struct {
	Name                   string   `json:"name"`
	Description            string   `json:"description"`
	Aliases                []string `json:"aliases"`
	PrimaryMuscleGroupID   string   `json:"primaryMuscleGroupId"`
	SecondaryMuscleGroupID *string  `json:"secondaryMuscleGroupId"`
}

type SearchResponse struct {
	Query   string                  `json:"query"`
	Matches []planner.ExerciseMatch `json:"matches"`
}

type Handler struct {
	repo           exercisesRepo
	library        exerciseLibrary
	metricsManager *metrics.Manager
}

func NewHandler(repo exercisesRepo, library exerciseLibrary, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		library:        library,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/muscle-groups", handler.HandleListMuscleGroups).Methods("GET", "OPTIONS").Name("muscle-groups")
	r.HandleFunc("/exercises", handler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercises", handler.HandleAdd).Methods("POST", "OPTIONS").Name("add-exercise")
	r.HandleFunc("/exercises/search", handler.HandleSearch).Methods("GET", "OPTIONS").Name("search-exercises")
	r.HandleFunc("/exercises/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
}

func (handler *Handler) HandleListMuscleGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.muscle_groups")
	defer span.End()

	groups, err := handler.library.MuscleGroups(ctx)
	if err != nil {
		log.Errorf("list muscle groups: %s", err)
		http.Error(w, "error, failed to get muscle groups", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, groups, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	exercises, err := handler.library.Exercises(ctx)
	if err != nil {
		log.Errorf("list exercises: %s", err)
		http.Error(w, "error, failed to get exercises", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, exercises, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	if _, err := uuid.Parse(id); err != nil {
		http.Error(w, "error, invalid exercise id", http.StatusBadRequest)
		return
	}

	exercise, err := handler.repo.GetExercise(ctx, id)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "error, exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("get exercise %s: %s", id, err)
		http.Error(w, "error, failed to get exercise", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, exercise, http.StatusOK)
}

func (handler *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.search")
	defer span.End()

	query := r.URL.Query().Get("q")
	span.SetAttributes(attribute.String("query", query))

	if query == "" {
		pkg.WriteJSON(w, SearchResponse{Query: query, Matches: []planner.ExerciseMatch{}}, http.StatusOK)
		return
	}

	exercises, err := handler.library.Exercises(ctx)
	if err != nil {
		log.Errorf("search exercises [%s]: %s", query, err)
		http.Error(w, "error, failed to search exercises", http.StatusInternalServerError)
		return
	}

	matches := planner.SearchExercises(query, exercises)
	span.SetAttributes(attribute.Int("matches", len(matches)))
	if handler.metricsManager != nil {
		handler.metricsManager.CounterExerciseSearches.Inc()
	}

	pkg.WriteJSON(w, SearchResponse{Query: query, Matches: matches}, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req AddExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("add exercise, unmarshal json params: %s", err)
		http.Error(w, "error, invalid request body", http.StatusBadRequest)
		return
	}

	exercise := planner.Exercise{
		ID:                     uuid.NewString(),
		Name:                   strings.TrimSpace(req.Name),
		Description:            strings.TrimSpace(req.Description),
		Aliases:                normalizeAliases(req.Aliases),
		PrimaryMuscleGroupID:   req.PrimaryMuscleGroupID,
		SecondaryMuscleGroupID: req.SecondaryMuscleGroupID,
		CreatedAt:              time.Now(),
	}
	if exercise.SecondaryMuscleGroupID != nil && *exercise.SecondaryMuscleGroupID == "" {
		exercise.SecondaryMuscleGroupID = nil
	}

	if exercise.Name == "" || exercise.PrimaryMuscleGroupID == "" {
		http.Error(w, "error, name or primary muscle group empty", http.StatusBadRequest)
		return
	}
	if _, err := uuid.Parse(exercise.PrimaryMuscleGroupID); err != nil {
		http.Error(w, "error, invalid primary muscle group id", http.StatusBadRequest)
		return
	}
	if exercise.SecondaryMuscleGroupID != nil {
		if _, err := uuid.Parse(*exercise.SecondaryMuscleGroupID); err != nil {
			http.Error(w, "error, invalid secondary muscle group id", http.StatusBadRequest)
			return
		}
	}

	added, err := handler.repo.AddExercise(ctx, exercise)
	if err != nil {
		switch {
		case errors.Is(err, ErrExerciseExists):
			http.Error(w, "error, exercise already exists", http.StatusConflict)
		case errors.Is(err, ErrMuscleGroupNotFound):
			http.Error(w, "error, unknown muscle group", http.StatusBadRequest)
		default:
			log.Errorf("add exercise [%s]: %s", exercise.Name, err)
			http.Error(w, "error, failed to add exercise", http.StatusInternalServerError)
		}
		return
	}

	handler.library.InvalidateExercises()
	log.Debugf("new exercise added: [%s] %s", added.ID, added.Name)

	pkg.WriteJSON(w, added, http.StatusCreated)
}

// normalizeAliases trims aliases and drops empty and case-insensitive duplicates.
func normalizeAliases(aliases []string) []string {
	seen := make(map[string]bool, len(aliases))
	normalized := make([]string, 0, len(aliases))
	for _, alias := range aliases {
		alias = strings.TrimSpace(alias)
		key := strings.ToLower(alias)
		if alias == "" || seen[key] {
			continue
		}
		seen[key] = true
		normalized = append(normalized, alias)
	}
	return normalized
}
