//go:build integration_test || all_tests

package internal_test

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/2beens/gymplans/internal/auth"
	"github.com/2beens/gymplans/internal/middleware"
	"github.com/2beens/gymplans/internal/planner"
	"github.com/2beens/gymplans/internal/planner/executions"
	"github.com/2beens/gymplans/internal/planner/exercises"
	"github.com/2beens/gymplans/internal/planner/plans"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestAuthFlow() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	creds := auth.Credentials{
		Email:    strings.ToUpper(gofakeit.Email()),
		Password: gofakeit.Password(true, true, true, false, false, 14),
	}
	require.Equal(t, http.StatusCreated, s.doRequest(ctx, "POST", "/a/register", "", creds, nil))
	assert.Equal(t, http.StatusConflict, s.doRequest(ctx, "POST", "/a/register", "", creds, nil))

	wrong := creds
	wrong.Password = "definitely-wrong"
	assert.Equal(t, http.StatusBadRequest, s.doRequest(ctx, "POST", "/a/login", "", wrong, nil))

	// emails are stored lowercased
	lowered := creds
	lowered.Email = strings.ToLower(creds.Email)
	var loginResp auth.LoginResponse
	require.Equal(t, http.StatusOK, s.doRequest(ctx, "POST", "/a/login", "", lowered, &loginResp))

	assert.Equal(t, http.StatusOK, s.doRequest(ctx, "GET", "/plans", loginResp.Token, nil, nil))
	assert.Equal(t, http.StatusUnauthorized, s.doRequest(ctx, "GET", "/plans", "", nil, nil))

	require.Equal(t, http.StatusOK, s.doRequest(ctx, "GET", "/a/logout", loginResp.Token, nil, nil))
	assert.Equal(t, http.StatusUnauthorized, s.doRequest(ctx, "GET", "/plans", loginResp.Token, nil, nil))
}

func (s *IntegrationTestSuite) TestExerciseLibraryAndSearch() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// muscle groups are public
	var groups []planner.MuscleGroup
	require.Equal(t, http.StatusOK, s.doRequest(ctx, "GET", "/muscle-groups", "", nil, &groups))
	require.Len(t, groups, 7)

	token, _ := s.registerAndLogin(ctx)

	var search exercises.SearchResponse
	require.Equal(t, http.StatusOK, s.doRequest(ctx, "GET", "/exercises/search?q=bench", token, nil, &search))
	require.NotEmpty(t, search.Matches)
	assert.Equal(t, "Bench Press", search.Matches[0].Exercise.Name)
	assert.Empty(t, search.Matches[0].MatchedAlias)

	require.Equal(t, http.StatusOK, s.doRequest(ctx, "GET", "/exercises/search?q=ohp", token, nil, &search))
	require.Len(t, search.Matches, 1)
	assert.Equal(t, "Overhead Press", search.Matches[0].Exercise.Name)
	assert.Equal(t, "OHP", search.Matches[0].MatchedAlias)

	var chestID string
	for _, g := range groups {
		if g.Name == "Chest" {
			chestID = g.ID
		}
	}
	require.NotEmpty(t, chestID)

	name := "Svend Press " + gofakeit.LetterN(6)
	var added planner.Exercise
	require.Equal(t, http.StatusCreated, s.doRequest(ctx, "POST", "/exercises", token, exercises.AddExerciseRequest{
		Name:                 name,
		Aliases:              []string{"Plate Squeeze", " plate squeeze "},
		PrimaryMuscleGroupID: chestID,
	}, &added))
	assert.Equal(t, []string{"Plate Squeeze"}, added.Aliases)

	// the library snapshot is invalidated on add
	require.Equal(t, http.StatusOK, s.doRequest(ctx, "GET", "/exercises/search?q="+url.QueryEscape("plate squeeze"), token, nil, &search))
	require.Len(t, search.Matches, 1)
	assert.Equal(t, added.ID, search.Matches[0].Exercise.ID)

	assert.Equal(t, http.StatusConflict, s.doRequest(ctx, "POST", "/exercises", token, exercises.AddExerciseRequest{
		Name:                 name,
		PrimaryMuscleGroupID: chestID,
	}, nil))
}

func (s *IntegrationTestSuite) TestPlanLifecycle() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, userID := s.registerAndLogin(ctx)

	var applied plans.TemplateTargetsResponse
	require.Equal(t, http.StatusOK, s.doRequest(ctx, "GET", "/plans/templates/balanced/targets", token, nil, &applied))
	require.Len(t, applied.Targets, 7)
	assert.Equal(t, 100, applied.Template.Total)

	var plan planner.WorkoutPlan
	require.Equal(t, http.StatusCreated, s.doRequest(ctx, "POST", "/plans", token, plans.PlanRequest{
		Name:    "Week 1",
		Targets: applied.Targets,
	}, &plan))
	assert.Equal(t, userID, plan.UserID)
	assert.Equal(t, 100, plan.TotalExercisesPlanned)
	assert.Equal(t, planner.PlanStatusDraft, plan.Status)
	// Core has no canonical value, so it is not stored
	require.Len(t, plan.Targets, 6)
	for _, target := range plan.Targets {
		assert.NotEmpty(t, target.MuscleGroupName)
	}

	var search exercises.SearchResponse
	require.Equal(t, http.StatusOK, s.doRequest(ctx, "GET", "/exercises/search?q=Bench%20Press", token, nil, &search))
	require.NotEmpty(t, search.Matches)
	benchPress := search.Matches[0].Exercise

	var execution planner.ExerciseExecution
	require.Equal(t, http.StatusCreated, s.doRequest(ctx, "POST", "/plans/"+plan.ID+"/executions", token, executions.AddRequest{
		ExerciseID: benchPress.ID,
		Location:   "Home gym",
	}, &execution))
	assert.False(t, execution.Completed)
	require.NotNil(t, execution.Exercise)
	assert.Equal(t, "Bench Press", execution.Exercise.Name)

	sets, reps, weight, completed := 4, 8, 61.0, true
	require.Equal(t, http.StatusOK, s.doRequest(ctx, "PUT", "/plans/"+plan.ID+"/executions/"+execution.ID, token, executions.UpdateRequest{
		Sets:      &sets,
		Reps:      &reps,
		WeightKg:  &weight,
		Completed: &completed,
	}, &execution))
	assert.Equal(t, 60.0, execution.WeightKg)

	require.Equal(t, http.StatusOK, s.doRequest(ctx, "POST", "/plans/"+plan.ID+"/executions/"+execution.ID+"/step", token, executions.StepRequest{
		Field:     executions.FieldWeight,
		Direction: executions.DirectionUp,
	}, &execution))
	assert.Equal(t, 62.5, execution.WeightKg)

	var report plans.ProgressReport
	require.Equal(t, http.StatusOK, s.doRequest(ctx, "GET", "/plans/"+plan.ID+"/progress", token, nil, &report))
	assert.Equal(t, 100, report.Overall.Target)
	assert.Equal(t, 1, report.Overall.Completed)
	assert.Equal(t, 1.0, report.Overall.Percentage)
	for _, g := range report.Groups {
		if g.MuscleGroupName == "Chest" {
			assert.Equal(t, 17, g.Target)
			assert.Equal(t, 1, g.Completed)
		} else {
			assert.Zero(t, g.Completed, g.MuscleGroupName)
		}
	}

	require.Equal(t, http.StatusOK, s.doRequest(ctx, "PUT", "/plans/"+plan.ID+"/status", token, plans.StatusRequest{
		Status: planner.PlanStatusCompleted,
	}, &plan))
	assert.Equal(t, planner.PlanStatusCompleted, plan.Status)
	assert.NotNil(t, plan.CompletedAt)

	// plans of other users are invisible
	otherToken, _ := s.registerAndLogin(ctx)
	assert.Equal(t, http.StatusNotFound, s.doRequest(ctx, "GET", "/plans/"+plan.ID, otherToken, nil, nil))
	assert.Equal(t, http.StatusNotFound, s.doRequest(ctx, "GET", "/plans/"+plan.ID+"/executions", otherToken, nil, nil))

	var otherPlans []planner.WorkoutPlan
	require.Equal(t, http.StatusOK, s.doRequest(ctx, "GET", "/plans", otherToken, nil, &otherPlans))
	assert.Empty(t, otherPlans)
}

func (s *IntegrationTestSuite) TestMCPRequiresSecret() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "POST", serverEndpoint+"/mcp", strings.NewReader(`{}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	req, err = http.NewRequestWithContext(ctx, "POST", serverEndpoint+"/mcp", strings.NewReader(`{}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.MCPSecretHeader, testMCPSecret)
	resp, err = s.httpClient.Do(req)
	require.NoError(t, err)
	assert.NotEqual(t, http.StatusUnauthorized, resp.StatusCode)
	require.NoError(t, resp.Body.Close())
}
