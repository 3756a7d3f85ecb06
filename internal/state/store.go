// Package state is the client-side view of the server's data: one store
// per logged-in user, mutated only through its operation methods, observed
// through snapshots and subscriptions.
package state

import (
	"sync"

	"github.com/dom/league-improvement-tracker/internal/client"
	"github.com/dom/league-improvement-tracker/internal/domain"
)

// AuthState tracks the current session. User is nil when logged out.
type AuthState struct {
	User    *domain.User
	Loading bool
	Error   string
}

type GameSessionsState struct {
	Items   []*domain.GameSession
	Current *domain.GameSession
	Loading bool
	Error   string
}

type GoalsState struct {
	Items   []*domain.Goal
	Current *domain.Goal
	Loading bool
	Error   string
}

type VideosState struct {
	Items      []*domain.VideoTutorial
	Current    *domain.VideoTutorial
	Categories []*domain.VideoCategory
	Loading    bool
	Error      string
}

type ChampionPoolsState struct {
	Items   []*domain.ChampionPool
	Current *domain.ChampionPool
	Loading bool
	Error   string
}

type CreatorsState struct {
	Items   []*domain.Creator
	Current *domain.Creator
	Loading bool
	Error   string
}

// State is the full store snapshot. Entity structs are never mutated in
// place; operations replace them, so a snapshot's contents stay stable
// after it is taken.
type State struct {
	Auth          AuthState
	GameSessions  GameSessionsState
	Goals         GoalsState
	Videos        VideosState
	ChampionPools ChampionPoolsState
	Creators      CreatorsState
}

func (s State) clone() State {
	out := s
	out.GameSessions.Items = append([]*domain.GameSession(nil), s.GameSessions.Items...)
	out.Goals.Items = append([]*domain.Goal(nil), s.Goals.Items...)
	out.Videos.Items = append([]*domain.VideoTutorial(nil), s.Videos.Items...)
	out.Videos.Categories = append([]*domain.VideoCategory(nil), s.Videos.Categories...)
	out.ChampionPools.Items = append([]*domain.ChampionPool(nil), s.ChampionPools.Items...)
	out.Creators.Items = append([]*domain.Creator(nil), s.Creators.Items...)
	return out
}

type Listener func(State)

type Store struct {
	client *client.Client

	mu        sync.Mutex
	state     State
	listeners map[int]Listener
	nextID    int
}

func NewStore(c *client.Client) *Store {
	return &Store{
		client:    c,
		listeners: make(map[int]Listener),
	}
}

// Client exposes the underlying transport for callers that need endpoints
// the store does not model.
func (s *Store) Client() *client.Client {
	return s.client
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe registers a listener called after every state change. The
// returned function removes it.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// update applies a mutation under the lock and notifies listeners with the
// resulting snapshot.
func (s *Store) update(mutate func(*State)) {
	s.mu.Lock()
	mutate(&s.state)
	snapshot := s.state.clone()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}

// fail records an operation error. A 401 additionally resets the session:
// the transport has already dropped the stored token, so the user shown by
// the store must go too.
func (s *Store) fail(err error, setError func(*State, string)) error {
	msg := err.Error()
	if apiErr, ok := err.(*client.APIError); ok {
		msg = apiErr.Message
	}

	s.update(func(st *State) {
		if client.IsUnauthorized(err) {
			st.Auth = AuthState{}
		}
		setError(st, msg)
	})
	return err
}
