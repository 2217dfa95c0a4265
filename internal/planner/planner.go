// Package planner holds the workout planning domain types and the pure logic
// computed over them: exercise matching, progress aggregation, template application
// and the numeric input controls used when logging executions.
//
// Nothing in this package does I/O or keeps state; callers pass materialized
// snapshots in and treat results as transient.
package planner

import "time"

type MuscleGroup struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Exercise struct {
	ID                     string    `json:"id"`
	Name                   string    `json:"name"`
	Description            string    `json:"description,omitempty"`
	Aliases                []string  `json:"aliases"`
	PrimaryMuscleGroupID   string    `json:"primaryMuscleGroupId"`
	SecondaryMuscleGroupID *string   `json:"secondaryMuscleGroupId,omitempty"`
	CreatedAt              time.Time `json:"createdAt"`
}

type PlanStatus string

const (
	PlanStatusDraft     PlanStatus = "draft"
	PlanStatusActive    PlanStatus = "active"
	PlanStatusCompleted PlanStatus = "completed"
	PlanStatusArchived  PlanStatus = "archived"
)

// Valid reports whether s is one of the known statuses.
// Statuses are informational, any transition between valid ones is allowed.
func (s PlanStatus) Valid() bool {
	switch s {
	case PlanStatusDraft, PlanStatusActive, PlanStatusCompleted, PlanStatusArchived:
		return true
	default:
		return false
	}
}

type WorkoutPlan struct {
	ID                    string         `json:"id"`
	UserID                string         `json:"userId"`
	Name                  string         `json:"name"`
	Description           string         `json:"description,omitempty"`
	Status                PlanStatus     `json:"status"`
	TotalExercisesPlanned int            `json:"totalExercisesPlanned"`
	StartedAt             time.Time      `json:"startedAt"`
	CompletedAt           *time.Time     `json:"completedAt,omitempty"`
	CreatedAt             time.Time      `json:"createdAt"`
	UpdatedAt             time.Time      `json:"updatedAt"`
	Targets               []MuscleTarget `json:"targets,omitempty"`
}

type MuscleTarget struct {
	ID              string `json:"id"`
	WorkoutPlanID   string `json:"workoutPlanId"`
	MuscleGroupID   string `json:"muscleGroupId"`
	MuscleGroupName string `json:"muscleGroupName,omitempty"`
	ExercisesTarget int    `json:"exercisesTarget"`
}

type ExerciseExecution struct {
	ID            string    `json:"id"`
	WorkoutPlanID string    `json:"workoutPlanId"`
	ExerciseID    string    `json:"exerciseId"`
	ExecutedAt    time.Time `json:"executedAt"`
	Sets          int       `json:"sets"`
	Reps          int       `json:"reps"`
	WeightKg      float64   `json:"weightKg"`
	Location      string    `json:"location,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	Completed     bool      `json:"completed"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	// Exercise is the referenced library entry, when loaded.
	Exercise *Exercise `json:"exercise,omitempty"`
}
