package planner

import "strings"

// CanonicalMuscleGroups is the positional order of Template.Values.
var CanonicalMuscleGroups = []string{"Chest", "Back", "Shoulders", "Biceps", "Triceps", "Legs"}

// Template is a named preset of exercise targets, one value per canonical muscle group.
type Template struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Tagline string `json:"tagline"`
	Icon    string `json:"icon"`
	Values  []int  `json:"values"`
}

// Total is the sum of all template values.
func (t Template) Total() int {
	total := 0
	for _, v := range t.Values {
		total += v
	}
	return total
}

var Templates = []Template{
	{
		ID:      "balanced",
		Name:    "Perfectly Balanced",
		Tagline: "Equal focus all muscles",
		Icon:    "⚖️",
		Values:  []int{17, 18, 17, 14, 14, 20},
	},
	{
		ID:      "push-pull-legs",
		Name:    "Push Pull Legs",
		Tagline: "Classic 3-day split",
		Icon:    "🎯",
		Values:  []int{20, 22, 18, 12, 12, 25},
	},
	{
		ID:      "upper-lower",
		Name:    "Upper/Lower Split",
		Tagline: "Balanced upper & lower",
		Icon:    "💪",
		Values:  []int{18, 20, 16, 13, 13, 28},
	},
	{
		ID:      "hypertrophy",
		Name:    "Hypertrophy Focus",
		Tagline: "Volume for muscle growth",
		Icon:    "📈",
		Values:  []int{22, 24, 20, 16, 16, 26},
	},
	{
		ID:      "strength",
		Name:    "Strength Builder",
		Tagline: "Compound movement focus",
		Icon:    "🏋️",
		Values:  []int{16, 18, 14, 10, 10, 22},
	},
	{
		ID:      "start-fresh",
		Name:    "Start Fresh",
		Tagline: "Design your own",
		Icon:    "✨",
		Values:  []int{},
	},
}

func TemplateByID(id string) (Template, bool) {
	for _, t := range Templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// TargetDraft is an initial target value for a muscle group.
// A nil ExercisesTarget means unset, which is not the same as an explicit zero.
type TargetDraft struct {
	MuscleGroupID   string `json:"muscleGroupId"`
	ExercisesTarget *int   `json:"exercisesTarget"`
}

// ApplyTemplate maps template values onto the live muscle groups by canonical name
// (case-insensitive). Groups outside the canonical six, or past the end of the
// template values, are left unset.
func ApplyTemplate(template Template, muscleGroups []MuscleGroup) []TargetDraft {
	drafts := make([]TargetDraft, 0, len(muscleGroups))
	for _, group := range muscleGroups {
		draft := TargetDraft{MuscleGroupID: group.ID}
		if idx := canonicalIndex(group.Name); idx >= 0 && idx < len(template.Values) {
			value := template.Values[idx]
			draft.ExercisesTarget = &value
		}
		drafts = append(drafts, draft)
	}
	return drafts
}

func canonicalIndex(muscleGroupName string) int {
	for i, name := range CanonicalMuscleGroups {
		if strings.EqualFold(name, muscleGroupName) {
			return i
		}
	}
	return -1
}
