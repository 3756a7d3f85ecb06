package state

import (
	"context"

	"github.com/dom/league-improvement-tracker/internal/domain"
)

// Login authenticates, stores the token and loads the user profile.
func (s *Store) Login(ctx context.Context, username, password string) error {
	s.update(func(st *State) {
		st.Auth.Loading = true
		st.Auth.Error = ""
	})

	if err := s.client.Login(ctx, username, password); err != nil {
		return s.fail(err, func(st *State, msg string) {
			st.Auth.Loading = false
			st.Auth.Error = msg
		})
	}

	var user domain.User
	if err := s.client.Get(ctx, "/users/me", &user); err != nil {
		return s.fail(err, func(st *State, msg string) {
			st.Auth.Loading = false
			st.Auth.Error = msg
		})
	}

	s.update(func(st *State) {
		st.Auth = AuthState{User: &user}
	})
	return nil
}

type RegisterInput struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates an account and logs straight in.
func (s *Store) Register(ctx context.Context, input RegisterInput) error {
	s.update(func(st *State) {
		st.Auth.Loading = true
		st.Auth.Error = ""
	})

	var user domain.User
	if err := s.client.Post(ctx, "/users/", input, &user); err != nil {
		return s.fail(err, func(st *State, msg string) {
			st.Auth.Loading = false
			st.Auth.Error = msg
		})
	}

	return s.Login(ctx, input.Username, input.Password)
}

// Restore rebuilds the session from a previously stored token by fetching
// the profile. Used on startup.
func (s *Store) Restore(ctx context.Context) error {
	s.update(func(st *State) {
		st.Auth.Loading = true
		st.Auth.Error = ""
	})

	var user domain.User
	if err := s.client.Get(ctx, "/users/me", &user); err != nil {
		return s.fail(err, func(st *State, msg string) {
			st.Auth.Loading = false
			st.Auth.Error = msg
		})
	}

	s.update(func(st *State) {
		st.Auth = AuthState{User: &user}
	})
	return nil
}

// Logout clears the stored token and resets every slice; the next user on
// this client must not see the previous user's data.
func (s *Store) Logout() error {
	err := s.client.Logout()
	s.update(func(st *State) {
		*st = State{}
	})
	return err
}

func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Auth.User != nil
}
