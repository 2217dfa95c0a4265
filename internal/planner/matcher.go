package planner

import (
	"sort"
	"strings"
)

type matchTier int

const (
	tierExactName matchTier = iota
	tierNameSubstring
	tierAliasOnly
)

// ExerciseMatch is a single autocomplete result.
// MatchedAlias is set only when the name itself did not match the query.
type ExerciseMatch struct {
	Exercise     Exercise `json:"exercise"`
	MatchedAlias string   `json:"matchedAlias,omitempty"`
}

// SearchExercises returns the exercises whose name or any alias contains query
// (case-insensitive). Exact name matches come first, then other name matches,
// then alias-only matches. Within a tier results are ordered by lowercased name,
// and the input order is kept for equal names.
// An empty query yields no results.
func SearchExercises(query string, exercises []Exercise) []ExerciseMatch {
	if query == "" || len(exercises) == 0 {
		return []ExerciseMatch{}
	}

	q := strings.ToLower(query)

	type ranked struct {
		match     ExerciseMatch
		tier      matchTier
		lowerName string
	}

	candidates := make([]ranked, 0, len(exercises))
	for _, ex := range exercises {
		lowerName := strings.ToLower(ex.Name)
		switch {
		case lowerName == q:
			candidates = append(candidates, ranked{ExerciseMatch{Exercise: ex}, tierExactName, lowerName})
		case strings.Contains(lowerName, q):
			candidates = append(candidates, ranked{ExerciseMatch{Exercise: ex}, tierNameSubstring, lowerName})
		default:
			if alias, ok := firstMatchingAlias(q, ex.Aliases); ok {
				candidates = append(candidates, ranked{ExerciseMatch{Exercise: ex, MatchedAlias: alias}, tierAliasOnly, lowerName})
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].tier != candidates[j].tier {
			return candidates[i].tier < candidates[j].tier
		}
		return candidates[i].lowerName < candidates[j].lowerName
	})

	matches := make([]ExerciseMatch, len(candidates))
	for i, c := range candidates {
		matches[i] = c.match
	}
	return matches
}

// MatchExercises is SearchExercises without the alias annotations.
func MatchExercises(query string, exercises []Exercise) []Exercise {
	matches := SearchExercises(query, exercises)
	result := make([]Exercise, len(matches))
	for i, m := range matches {
		result[i] = m.Exercise
	}
	return result
}

// nil aliases are fine, ranging over them is a no-op
func firstMatchingAlias(lowerQuery string, aliases []string) (string, bool) {
	for _, alias := range aliases {
		if strings.Contains(strings.ToLower(alias), lowerQuery) {
			return alias, true
		}
	}
	return "", false
}
