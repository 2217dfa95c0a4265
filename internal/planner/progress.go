package planner

import "math"

// Progress is completed-vs-target for a muscle group or for a whole plan.
// Percentage is the raw ratio and may exceed 100.
type Progress struct {
	Target     int     `json:"target"`
	Completed  int     `json:"completed"`
	Percentage float64 `json:"percentage"`
}

// DisplayPercentage is Percentage capped at 100, for rendering only.
func (p Progress) DisplayPercentage() float64 {
	return math.Min(p.Percentage, 100)
}

// GroupProgress counts completed executions whose exercise has muscleGroupID as its
// primary group, against that group's target (0 when the plan has no target for it).
// Secondary muscle groups never count. Executions without a loaded exercise are skipped.
func GroupProgress(muscleGroupID string, targets []MuscleTarget, executions []ExerciseExecution) Progress {
	target := 0
	for _, t := range targets {
		if t.MuscleGroupID == muscleGroupID {
			target = t.ExercisesTarget
			break
		}
	}

	completed := 0
	for _, e := range executions {
		if !e.Completed || e.Exercise == nil {
			continue
		}
		if e.Exercise.PrimaryMuscleGroupID == muscleGroupID {
			completed++
		}
	}

	return Progress{
		Target:     target,
		Completed:  completed,
		Percentage: percentage(completed, target),
	}
}

// OverallProgress sums all targets and counts every completed execution once,
// including executions for muscle groups the plan has no target for.
func OverallProgress(targets []MuscleTarget, executions []ExerciseExecution) Progress {
	target := 0
	for _, t := range targets {
		target += t.ExercisesTarget
	}

	completed := 0
	for _, e := range executions {
		if e.Completed {
			completed++
		}
	}

	return Progress{
		Target:     target,
		Completed:  completed,
		Percentage: percentage(completed, target),
	}
}

func percentage(completed, target int) float64 {
	if target <= 0 {
		return 0
	}
	return float64(completed) * 100 / float64(target)
}
