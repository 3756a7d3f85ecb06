package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/dom/league-improvement-tracker/internal/domain"
	"github.com/dom/league-improvement-tracker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authedRequest(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestGoalHandler_CRUD(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	// Create
	resp := authedRequest(t, http.MethodPost, ts.BaseURL()+"/goals/", token, map[string]string{
		"title":       "Track jungler",
		"description": "Ping missing on every gank window",
	})
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusCreated)

	var goal domain.Goal
	testutil.AssertJSONResponse(t, resp, &goal)
	assert.Equal(t, domain.GoalStatusActive, goal.Status)

	// List
	resp = authedRequest(t, http.MethodGet, ts.BaseURL()+"/goals/", token, nil)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var goals []domain.Goal
	testutil.AssertJSONResponse(t, resp, &goals)
	require.Len(t, goals, 1)

	// Patch status
	resp = authedRequest(t, http.MethodPatch, ts.BaseURL()+"/goals/1/status", token, map[string]string{
		"status": "completed",
	})
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var updated domain.Goal
	testutil.AssertJSONResponse(t, resp, &updated)
	assert.Equal(t, domain.GoalStatusCompleted, updated.Status)

	// Delete
	resp = authedRequest(t, http.MethodDelete, ts.BaseURL()+"/goals/1", token, nil)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusNoContent)

	resp = authedRequest(t, http.MethodGet, ts.BaseURL()+"/goals/1", token, nil)
	defer resp.Body.Close()
	testutil.AssertDetailResponse(t, resp, http.StatusNotFound, "Goal not found")
}

func TestGoalHandler_Validation(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	t.Run("missing title", func(t *testing.T) {
		resp := authedRequest(t, http.MethodPost, ts.BaseURL()+"/goals/", token, map[string]string{
			"description": "no title",
		})
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusUnprocessableEntity)

		var body struct {
			Detail []struct {
				Loc  []string `json:"loc"`
				Msg  string   `json:"msg"`
				Type string   `json:"type"`
			} `json:"detail"`
		}
		testutil.AssertJSONResponse(t, resp, &body)
		require.Len(t, body.Detail, 1)
		assert.Equal(t, []string{"body", "title"}, body.Detail[0].Loc)
		assert.Equal(t, "field required", body.Detail[0].Msg)
	})

	t.Run("invalid status", func(t *testing.T) {
		resp := authedRequest(t, http.MethodPost, ts.BaseURL()+"/goals/", token, map[string]string{
			"title":  "ok",
			"status": "paused",
		})
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusUnprocessableEntity)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		resp := authedRequest(t, http.MethodGet, ts.BaseURL()+"/goals/abc", token, nil)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusUnprocessableEntity)
	})
}

func TestGoalHandler_RequiresAuth(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("no token", func(t *testing.T) {
		resp := authedRequest(t, http.MethodGet, ts.BaseURL()+"/goals/", "", nil)
		defer resp.Body.Close()
		testutil.AssertDetailResponse(t, resp, http.StatusUnauthorized, "Not authenticated")
	})

	t.Run("bad token", func(t *testing.T) {
		resp := authedRequest(t, http.MethodGet, ts.BaseURL()+"/goals/", "garbage", nil)
		defer resp.Body.Close()
		testutil.AssertDetailResponse(t, resp, http.StatusUnauthorized, "Could not validate credentials")
	})
}

func TestGoalHandler_UserIsolation(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, ownerToken := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
	_, otherToken := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	resp := authedRequest(t, http.MethodPost, ts.BaseURL()+"/goals/", ownerToken, map[string]string{
		"title": "private goal",
	})
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusCreated)

	var goal domain.Goal
	testutil.AssertJSONResponse(t, resp, &goal)

	resp = authedRequest(t, http.MethodGet, ts.BaseURL()+"/goals/1", otherToken, nil)
	defer resp.Body.Close()
	testutil.AssertDetailResponse(t, resp, http.StatusNotFound, "Goal not found")

	resp = authedRequest(t, http.MethodGet, ts.BaseURL()+"/goals/", otherToken, nil)
	defer resp.Body.Close()
	var goals []domain.Goal
	testutil.AssertJSONResponse(t, resp, &goals)
	assert.Empty(t, goals)
}
