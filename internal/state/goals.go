package state

import (
	"context"
	"fmt"

	"github.com/dom/league-improvement-tracker/internal/domain"
)

type GoalInput struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      domain.GoalStatus `json:"status,omitempty"`
}

func (s *Store) goalsPending() {
	s.update(func(st *State) {
		st.Goals.Loading = true
		st.Goals.Error = ""
	})
}

func (s *Store) goalsFail(err error) error {
	return s.fail(err, func(st *State, msg string) {
		st.Goals.Loading = false
		st.Goals.Error = msg
	})
}

// FetchGoals loads the caller's goals, optionally filtered by status.
func (s *Store) FetchGoals(ctx context.Context, status domain.GoalStatus) error {
	s.goalsPending()

	path := "/goals/"
	if status != "" {
		path += "?status=" + string(status)
	}

	var items []*domain.Goal
	if err := s.client.Get(ctx, path, &items); err != nil {
		return s.goalsFail(err)
	}

	s.update(func(st *State) {
		st.Goals.Items = items
		st.Goals.Loading = false
	})
	return nil
}

func (s *Store) FetchGoal(ctx context.Context, id uint) error {
	s.goalsPending()

	var goal domain.Goal
	if err := s.client.Get(ctx, fmt.Sprintf("/goals/%d", id), &goal); err != nil {
		return s.goalsFail(err)
	}

	s.update(func(st *State) {
		st.Goals.Current = &goal
		st.Goals.Loading = false
	})
	return nil
}

func (s *Store) CreateGoal(ctx context.Context, input GoalInput) (*domain.Goal, error) {
	s.goalsPending()

	var goal domain.Goal
	if err := s.client.Post(ctx, "/goals/", input, &goal); err != nil {
		return nil, s.goalsFail(err)
	}

	s.update(func(st *State) {
		st.Goals.Items = append(st.Goals.Items, &goal)
		st.Goals.Loading = false
	})
	return &goal, nil
}

func (s *Store) UpdateGoal(ctx context.Context, id uint, input GoalInput) (*domain.Goal, error) {
	s.goalsPending()

	var goal domain.Goal
	if err := s.client.Put(ctx, fmt.Sprintf("/goals/%d", id), input, &goal); err != nil {
		return nil, s.goalsFail(err)
	}

	s.replaceGoal(&goal)
	return &goal, nil
}

// UpdateGoalStatus flips just the status without resending the rest of the
// goal.
func (s *Store) UpdateGoalStatus(ctx context.Context, id uint, status domain.GoalStatus) (*domain.Goal, error) {
	s.goalsPending()

	body := struct {
		Status domain.GoalStatus `json:"status"`
	}{Status: status}

	var goal domain.Goal
	if err := s.client.Patch(ctx, fmt.Sprintf("/goals/%d/status", id), body, &goal); err != nil {
		return nil, s.goalsFail(err)
	}

	s.replaceGoal(&goal)
	return &goal, nil
}

func (s *Store) replaceGoal(goal *domain.Goal) {
	s.update(func(st *State) {
		for i, item := range st.Goals.Items {
			if item.ID == goal.ID {
				st.Goals.Items[i] = goal
			}
		}
		if st.Goals.Current != nil && st.Goals.Current.ID == goal.ID {
			st.Goals.Current = goal
		}
		st.Goals.Loading = false
	})
}

func (s *Store) DeleteGoal(ctx context.Context, id uint) error {
	s.goalsPending()

	if err := s.client.Delete(ctx, fmt.Sprintf("/goals/%d", id)); err != nil {
		return s.goalsFail(err)
	}

	s.update(func(st *State) {
		items := st.Goals.Items[:0]
		for _, item := range st.Goals.Items {
			if item.ID != id {
				items = append(items, item)
			}
		}
		st.Goals.Items = items
		if st.Goals.Current != nil && st.Goals.Current.ID == id {
			st.Goals.Current = nil
		}
		st.Goals.Loading = false
	})
	return nil
}
