package plans

import "github.com/2beens/gymplans/internal/planner"

type ProgressValue struct {
	Target     int     `json:"target"`
	Completed  int     `json:"completed"`
	Percentage float64 `json:"percentage"`
	// DisplayPercentage is Percentage capped at 100, for progress bars.
	DisplayPercentage float64 `json:"displayPercentage"`
}

type GroupProgress struct {
	MuscleGroupID   string `json:"muscleGroupId"`
	MuscleGroupName string `json:"muscleGroupName"`
	ProgressValue
}

type ProgressReport struct {
	PlanID  string          `json:"planId"`
	Status  string          `json:"status"`
	Overall ProgressValue   `json:"overall"`
	Groups  []GroupProgress `json:"groups"`
}

func progressValue(p planner.Progress) ProgressValue {
	return ProgressValue{
		Target:            p.Target,
		Completed:         p.Completed,
		Percentage:        p.Percentage,
		DisplayPercentage: p.DisplayPercentage(),
	}
}

// Report computes overall progress and the progress of every targeted muscle group.
// plan.Targets must be loaded and executions should carry their exercise.
func Report(plan *planner.WorkoutPlan, executions []planner.ExerciseExecution) ProgressReport {
	report := ProgressReport{
		PlanID:  plan.ID,
		Status:  string(plan.Status),
		Overall: progressValue(planner.OverallProgress(plan.Targets, executions)),
		Groups:  make([]GroupProgress, 0, len(plan.Targets)),
	}

	for _, target := range plan.Targets {
		report.Groups = append(report.Groups, GroupProgress{
			MuscleGroupID:   target.MuscleGroupID,
			MuscleGroupName: target.MuscleGroupName,
			ProgressValue:   progressValue(planner.GroupProgress(target.MuscleGroupID, plan.Targets, executions)),
		})
	}

	return report
}
