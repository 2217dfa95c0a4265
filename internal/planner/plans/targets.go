package plans

import (
	"errors"
	"fmt"

	"github.com/2beens/gymplans/internal/planner"

	"github.com/google/uuid"
)

var (
	ErrNegativeTarget       = errors.New("exercises target must not be negative")
	ErrDuplicateMuscleGroup = errors.New("muscle group targeted more than once")
	ErrInvalidMuscleGroupID = errors.New("invalid muscle group id")
)

// BuildTargets turns submitted drafts into the targets to store.
// Only targets above zero are kept, while the total is the sum of everything submitted
// (unset drafts count as zero).
func BuildTargets(planID string, drafts []planner.TargetDraft) ([]planner.MuscleTarget, int, error) {
	seen := make(map[string]bool, len(drafts))
	targets := make([]planner.MuscleTarget, 0, len(drafts))
	total := 0

	for _, draft := range drafts {
		if _, err := uuid.Parse(draft.MuscleGroupID); err != nil {
			return nil, 0, fmt.Errorf("%w: %q", ErrInvalidMuscleGroupID, draft.MuscleGroupID)
		}
		if seen[draft.MuscleGroupID] {
			return nil, 0, fmt.Errorf("%w: %s", ErrDuplicateMuscleGroup, draft.MuscleGroupID)
		}
		seen[draft.MuscleGroupID] = true

		if draft.ExercisesTarget == nil {
			continue
		}
		value := *draft.ExercisesTarget
		if value < 0 {
			return nil, 0, fmt.Errorf("%w: %s", ErrNegativeTarget, draft.MuscleGroupID)
		}

		total += value
		if value == 0 {
			continue
		}

		targets = append(targets, planner.MuscleTarget{
			ID:              uuid.NewString(),
			WorkoutPlanID:   planID,
			MuscleGroupID:   draft.MuscleGroupID,
			ExercisesTarget: value,
		})
	}

	return targets, total, nil
}
