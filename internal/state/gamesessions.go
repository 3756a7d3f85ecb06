package state

import (
	"context"
	"fmt"
	"time"

	"github.com/dom/league-improvement-tracker/internal/domain"
)

type GameSessionInput struct {
	Date            *time.Time                 `json:"date,omitempty"`
	PlayerCharacter string                     `json:"player_character"`
	EnemyCharacter  string                     `json:"enemy_character"`
	Result          string                     `json:"result"`
	MoodRating      int                        `json:"mood_rating"`
	GoalProgress    []domain.GoalProgressEntry `json:"goal_progress"`
	Notes           string                     `json:"notes"`
}

func (s *Store) sessionsPending() {
	s.update(func(st *State) {
		st.GameSessions.Loading = true
		st.GameSessions.Error = ""
	})
}

func (s *Store) sessionsFail(err error) error {
	return s.fail(err, func(st *State, msg string) {
		st.GameSessions.Loading = false
		st.GameSessions.Error = msg
	})
}

func (s *Store) FetchGameSessions(ctx context.Context) error {
	s.sessionsPending()

	var items []*domain.GameSession
	if err := s.client.Get(ctx, "/game-sessions/", &items); err != nil {
		return s.sessionsFail(err)
	}

	s.update(func(st *State) {
		st.GameSessions.Items = items
		st.GameSessions.Loading = false
	})
	return nil
}

func (s *Store) FetchGameSession(ctx context.Context, id uint) error {
	s.sessionsPending()

	var session domain.GameSession
	if err := s.client.Get(ctx, fmt.Sprintf("/game-sessions/%d", id), &session); err != nil {
		return s.sessionsFail(err)
	}

	s.update(func(st *State) {
		st.GameSessions.Current = &session
		st.GameSessions.Loading = false
	})
	return nil
}

func (s *Store) CreateGameSession(ctx context.Context, input GameSessionInput) (*domain.GameSession, error) {
	s.sessionsPending()

	var session domain.GameSession
	if err := s.client.Post(ctx, "/game-sessions/", input, &session); err != nil {
		return nil, s.sessionsFail(err)
	}

	s.update(func(st *State) {
		st.GameSessions.Items = append(st.GameSessions.Items, &session)
		st.GameSessions.Loading = false
	})
	return &session, nil
}

func (s *Store) UpdateGameSession(ctx context.Context, id uint, input GameSessionInput) (*domain.GameSession, error) {
	s.sessionsPending()

	var session domain.GameSession
	if err := s.client.Put(ctx, fmt.Sprintf("/game-sessions/%d", id), input, &session); err != nil {
		return nil, s.sessionsFail(err)
	}

	s.update(func(st *State) {
		for i, item := range st.GameSessions.Items {
			if item.ID == session.ID {
				st.GameSessions.Items[i] = &session
			}
		}
		if st.GameSessions.Current != nil && st.GameSessions.Current.ID == session.ID {
			st.GameSessions.Current = &session
		}
		st.GameSessions.Loading = false
	})
	return &session, nil
}

func (s *Store) DeleteGameSession(ctx context.Context, id uint) error {
	s.sessionsPending()

	if err := s.client.Delete(ctx, fmt.Sprintf("/game-sessions/%d", id)); err != nil {
		return s.sessionsFail(err)
	}

	s.update(func(st *State) {
		items := st.GameSessions.Items[:0]
		for _, item := range st.GameSessions.Items {
			if item.ID != id {
				items = append(items, item)
			}
		}
		st.GameSessions.Items = items
		if st.GameSessions.Current != nil && st.GameSessions.Current.ID == id {
			st.GameSessions.Current = nil
		}
		st.GameSessions.Loading = false
	})
	return nil
}
