package state

import (
	"context"
	"fmt"

	"github.com/dom/league-improvement-tracker/internal/domain"
)

type CreatorInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Platform    string `json:"platform"`
	Website     string `json:"website"`
}

func (s *Store) creatorsPending() {
	s.update(func(st *State) {
		st.Creators.Loading = true
		st.Creators.Error = ""
	})
}

func (s *Store) creatorsFail(err error) error {
	return s.fail(err, func(st *State, msg string) {
		st.Creators.Loading = false
		st.Creators.Error = msg
	})
}

func (s *Store) FetchCreators(ctx context.Context) error {
	s.creatorsPending()

	var items []*domain.Creator
	if err := s.client.Get(ctx, "/videos/creators/", &items); err != nil {
		return s.creatorsFail(err)
	}

	s.update(func(st *State) {
		st.Creators.Items = items
		st.Creators.Loading = false
	})
	return nil
}

func (s *Store) FetchCreator(ctx context.Context, id uint) error {
	s.creatorsPending()

	var creator domain.Creator
	if err := s.client.Get(ctx, fmt.Sprintf("/videos/creators/%d", id), &creator); err != nil {
		return s.creatorsFail(err)
	}

	s.update(func(st *State) {
		st.Creators.Current = &creator
		st.Creators.Loading = false
	})
	return nil
}

func (s *Store) CreateCreator(ctx context.Context, input CreatorInput) (*domain.Creator, error) {
	s.creatorsPending()

	var creator domain.Creator
	if err := s.client.Post(ctx, "/videos/creators/", input, &creator); err != nil {
		return nil, s.creatorsFail(err)
	}

	s.update(func(st *State) {
		st.Creators.Items = append(st.Creators.Items, &creator)
		st.Creators.Loading = false
	})
	return &creator, nil
}

func (s *Store) UpdateCreator(ctx context.Context, id uint, input CreatorInput) (*domain.Creator, error) {
	s.creatorsPending()

	var creator domain.Creator
	if err := s.client.Put(ctx, fmt.Sprintf("/videos/creators/%d", id), input, &creator); err != nil {
		return nil, s.creatorsFail(err)
	}

	s.update(func(st *State) {
		for i, item := range st.Creators.Items {
			if item.ID == creator.ID {
				st.Creators.Items[i] = &creator
			}
		}
		if st.Creators.Current != nil && st.Creators.Current.ID == creator.ID {
			st.Creators.Current = &creator
		}
		st.Creators.Loading = false
	})
	return &creator, nil
}

func (s *Store) DeleteCreator(ctx context.Context, id uint) error {
	s.creatorsPending()

	if err := s.client.Delete(ctx, fmt.Sprintf("/videos/creators/%d", id)); err != nil {
		return s.creatorsFail(err)
	}

	s.update(func(st *State) {
		items := st.Creators.Items[:0]
		for _, item := range st.Creators.Items {
			if item.ID != id {
				items = append(items, item)
			}
		}
		st.Creators.Items = items
		if st.Creators.Current != nil && st.Creators.Current.ID == id {
			st.Creators.Current = nil
		}
		st.Creators.Loading = false
	})
	return nil
}
