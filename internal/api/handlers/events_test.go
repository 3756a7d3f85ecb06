package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/dom/league-improvement-tracker/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestEventsHandler_ChangeFeed(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	ws := testutil.NewWSClient(t, ts.WebSocketURL(token))

	resp := authedRequest(t, http.MethodPost, ts.BaseURL()+"/goals/", token, map[string]string{
		"title": "Watch replays weekly",
	})
	resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusCreated)

	event := ws.WaitForEvent(5 * time.Second)
	assert.Equal(t, "goals", event.Resource)
	assert.Equal(t, "created", event.Action)
	assert.NotEmpty(t, event.ID)
}

func TestEventsHandler_ScopedToUser(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, aliceToken := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
	_, bobToken := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	bobFeed := testutil.NewWSClient(t, ts.WebSocketURL(bobToken))

	// Alice's mutation must not show up on Bob's feed
	resp := authedRequest(t, http.MethodPost, ts.BaseURL()+"/goals/", aliceToken, map[string]string{
		"title": "Alice's goal",
	})
	resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusCreated)

	bobFeed.ExpectNoEvent(500 * time.Millisecond)
}

func TestEventsHandler_RejectsBadToken(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Get(ts.BaseURL() + "/ws?token=garbage")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	testutil.AssertDetailResponse(t, resp, http.StatusUnauthorized, "Could not validate credentials")
}
