package state

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dom/league-improvement-tracker/internal/client"
	"github.com/dom/league-improvement-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(handler http.Handler) (*Store, *client.MemoryCredentials, func()) {
	server := httptest.NewServer(handler)
	creds := client.NewMemoryCredentials("test-token")
	c := client.New(server.URL, creds)
	return NewStore(c), creds, server.Close
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func TestStore_LoginSuccess(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"access_token": "fresh",
			"token_type":   "bearer",
		})
	})
	mux.HandleFunc("/users/me", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, domain.User{ID: 1, Username: "dom"})
	})

	store, creds, closeFn := newTestStore(mux)
	defer closeFn()

	require.NoError(t, store.Login(context.Background(), "dom", "secret"))

	snap := store.Snapshot()
	require.NotNil(t, snap.Auth.User)
	assert.Equal(t, "dom", snap.Auth.User.Username)
	assert.False(t, snap.Auth.Loading)
	assert.Empty(t, snap.Auth.Error)
	assert.Equal(t, "fresh", creds.Token())
	assert.True(t, store.IsAuthenticated())
}

func TestStore_LoginFailureSetsError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{
			"detail": "Incorrect username or password",
		})
	})

	store, _, closeFn := newTestStore(mux)
	defer closeFn()

	err := store.Login(context.Background(), "dom", "wrong")
	require.Error(t, err)

	snap := store.Snapshot()
	assert.Nil(t, snap.Auth.User)
	assert.False(t, snap.Auth.Loading)
	assert.Equal(t, "Incorrect username or password", snap.Auth.Error)
	assert.False(t, store.IsAuthenticated())
}

func TestStore_UnauthorizedResetsSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/me", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, domain.User{ID: 1, Username: "dom"})
	})
	mux.HandleFunc("/goals/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{
			"detail": "Could not validate credentials",
		})
	})

	store, creds, closeFn := newTestStore(mux)
	defer closeFn()

	require.NoError(t, store.Restore(context.Background()))
	require.True(t, store.IsAuthenticated())

	err := store.FetchGoals(context.Background(), "")
	require.Error(t, err)

	snap := store.Snapshot()
	assert.Nil(t, snap.Auth.User, "session should be reset after a 401")
	assert.Equal(t, "Could not validate credentials", snap.Goals.Error)
	assert.Empty(t, creds.Token(), "token should be cleared after a 401")
}

func TestGoals_FetchCreateUpdateDelete(t *testing.T) {
	goals := []*domain.Goal{
		{ID: 1, Title: "Track CS at 10", Status: domain.GoalStatusActive},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/goals/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, goals)
		case http.MethodPost:
			var in GoalInput
			json.NewDecoder(r.Body).Decode(&in)
			writeJSON(w, http.StatusCreated, domain.Goal{ID: 2, Title: in.Title, Status: domain.GoalStatusActive})
		}
	})
	mux.HandleFunc("/goals/2/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, domain.Goal{ID: 2, Title: "Ward more", Status: domain.GoalStatusCompleted})
	})
	mux.HandleFunc("/goals/2", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, domain.Goal{ID: 2, Title: "Ward more", Status: domain.GoalStatusCompleted})
	})
	mux.HandleFunc("/goals/1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
		}
	})

	store, _, closeFn := newTestStore(mux)
	defer closeFn()
	ctx := context.Background()

	require.NoError(t, store.FetchGoals(ctx, ""))
	snap := store.Snapshot()
	require.Len(t, snap.Goals.Items, 1)
	assert.False(t, snap.Goals.Loading)

	created, err := store.CreateGoal(ctx, GoalInput{Title: "Ward more"})
	require.NoError(t, err)
	assert.Equal(t, uint(2), created.ID)
	assert.Len(t, store.Snapshot().Goals.Items, 2, "create should append")

	updated, err := store.UpdateGoalStatus(ctx, 2, domain.GoalStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.GoalStatusCompleted, updated.Status)

	snap = store.Snapshot()
	require.Len(t, snap.Goals.Items, 2)
	assert.Equal(t, domain.GoalStatusCompleted, snap.Goals.Items[1].Status, "status change should land in the list")

	require.NoError(t, store.FetchGoal(ctx, 2))
	require.NotNil(t, store.Snapshot().Goals.Current)

	require.NoError(t, store.DeleteGoal(ctx, 1))
	snap = store.Snapshot()
	assert.Len(t, snap.Goals.Items, 1)
	assert.Equal(t, uint(2), snap.Goals.Items[0].ID)
}

func TestGoals_DeleteClearsCurrent(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/goals/7", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, domain.Goal{ID: 7, Title: "Roam timers"})
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	})

	store, _, closeFn := newTestStore(mux)
	defer closeFn()
	ctx := context.Background()

	require.NoError(t, store.FetchGoal(ctx, 7))
	require.NotNil(t, store.Snapshot().Goals.Current)

	require.NoError(t, store.DeleteGoal(ctx, 7))
	assert.Nil(t, store.Snapshot().Goals.Current)
}

// A refetch that raced a create and lost still overwrites the list: the
// store keeps last-write-wins semantics rather than merging.
func TestPools_SlowFetchOverwritesCreate(t *testing.T) {
	stale := []*domain.ChampionPool{
		{ID: 1, Name: "Top pool"},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/champion-pools/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			// Snapshot taken before the create landed
			writeJSON(w, http.StatusOK, stale)
		case http.MethodPost:
			writeJSON(w, http.StatusCreated, domain.ChampionPool{ID: 2, Name: "Mid pool"})
		}
	})

	store, _, closeFn := newTestStore(mux)
	defer closeFn()
	ctx := context.Background()

	_, err := store.CreateChampionPool(ctx, ChampionPoolInput{Name: "Mid pool"})
	require.NoError(t, err)
	require.Len(t, store.Snapshot().ChampionPools.Items, 1)

	require.NoError(t, store.FetchChampionPools(ctx))

	snap := store.Snapshot()
	require.Len(t, snap.ChampionPools.Items, 1)
	assert.Equal(t, uint(1), snap.ChampionPools.Items[0].ID,
		"stale fetch result replaces the list wholesale")
}

func TestStore_SubscribeAndUnsubscribe(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/videos/creators/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []*domain.Creator{{ID: 1, Name: "Coach"}})
	})

	store, _, closeFn := newTestStore(mux)
	defer closeFn()

	var calls int
	unsubscribe := store.Subscribe(func(State) {
		calls++
	})

	require.NoError(t, store.FetchCreators(context.Background()))
	// pending + fulfilled
	assert.Equal(t, 2, calls)

	unsubscribe()
	require.NoError(t, store.FetchCreators(context.Background()))
	assert.Equal(t, 2, calls, "unsubscribed listener must not fire")
}

func TestStore_SnapshotIsolation(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/videos/creators/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writeJSON(w, http.StatusOK, []*domain.Creator{{ID: 1, Name: "Coach"}})
			return
		}
		writeJSON(w, http.StatusCreated, domain.Creator{ID: 2, Name: "Analyst"})
	})

	store, _, closeFn := newTestStore(mux)
	defer closeFn()
	ctx := context.Background()

	require.NoError(t, store.FetchCreators(ctx))
	before := store.Snapshot()

	_, err := store.CreateCreator(ctx, CreatorInput{Name: "Analyst"})
	require.NoError(t, err)

	assert.Len(t, before.Creators.Items, 1, "old snapshot must not see later writes")
	assert.Len(t, store.Snapshot().Creators.Items, 2)
}
