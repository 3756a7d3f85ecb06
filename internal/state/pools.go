package state

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dom/league-improvement-tracker/internal/domain"
)

type ChampionEntryInput struct {
	ChampionID   string              `json:"champion_id"`
	ChampionName string              `json:"champion_name"`
	Category     domain.PoolCategory `json:"category,omitempty"`
	Notes        string              `json:"notes"`
}

type ChampionPoolInput struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Champions   []ChampionEntryInput `json:"champions"`
}

func (s *Store) poolsPending() {
	s.update(func(st *State) {
		st.ChampionPools.Loading = true
		st.ChampionPools.Error = ""
	})
}

func (s *Store) poolsFail(err error) error {
	return s.fail(err, func(st *State, msg string) {
		st.ChampionPools.Loading = false
		st.ChampionPools.Error = msg
	})
}

func (s *Store) FetchChampionPools(ctx context.Context) error {
	s.poolsPending()

	var items []*domain.ChampionPool
	if err := s.client.Get(ctx, "/champion-pools/", &items); err != nil {
		return s.poolsFail(err)
	}

	s.update(func(st *State) {
		st.ChampionPools.Items = items
		st.ChampionPools.Loading = false
	})
	return nil
}

func (s *Store) FetchChampionPool(ctx context.Context, id uint) error {
	s.poolsPending()

	var pool domain.ChampionPool
	if err := s.client.Get(ctx, fmt.Sprintf("/champion-pools/%d", id), &pool); err != nil {
		return s.poolsFail(err)
	}

	s.update(func(st *State) {
		st.ChampionPools.Current = &pool
		st.ChampionPools.Loading = false
	})
	return nil
}

func (s *Store) CreateChampionPool(ctx context.Context, input ChampionPoolInput) (*domain.ChampionPool, error) {
	s.poolsPending()

	var pool domain.ChampionPool
	if err := s.client.Post(ctx, "/champion-pools/", input, &pool); err != nil {
		return nil, s.poolsFail(err)
	}

	s.update(func(st *State) {
		st.ChampionPools.Items = append(st.ChampionPools.Items, &pool)
		st.ChampionPools.Loading = false
	})
	return &pool, nil
}

func (s *Store) UpdateChampionPool(ctx context.Context, id uint, input ChampionPoolInput) (*domain.ChampionPool, error) {
	s.poolsPending()

	var pool domain.ChampionPool
	if err := s.client.Put(ctx, fmt.Sprintf("/champion-pools/%d", id), input, &pool); err != nil {
		return nil, s.poolsFail(err)
	}

	s.replacePool(&pool)
	return &pool, nil
}

func (s *Store) DeleteChampionPool(ctx context.Context, id uint) error {
	s.poolsPending()

	if err := s.client.Delete(ctx, fmt.Sprintf("/champion-pools/%d", id)); err != nil {
		return s.poolsFail(err)
	}

	s.update(func(st *State) {
		items := st.ChampionPools.Items[:0]
		for _, item := range st.ChampionPools.Items {
			if item.ID != id {
				items = append(items, item)
			}
		}
		st.ChampionPools.Items = items
		if st.ChampionPools.Current != nil && st.ChampionPools.Current.ID == id {
			st.ChampionPools.Current = nil
		}
		st.ChampionPools.Loading = false
	})
	return nil
}

// AddChampion adds an entry to a pool, then refetches the pool so the
// cached copy carries the server-assigned entry id.
func (s *Store) AddChampion(ctx context.Context, poolID uint, input ChampionEntryInput) error {
	s.poolsPending()

	var entry domain.ChampionPoolEntry
	if err := s.client.Post(ctx, fmt.Sprintf("/champion-pools/%d/champions", poolID), input, &entry); err != nil {
		return s.poolsFail(err)
	}

	var pool domain.ChampionPool
	if err := s.client.Get(ctx, fmt.Sprintf("/champion-pools/%d", poolID), &pool); err != nil {
		return s.poolsFail(err)
	}

	s.replacePool(&pool)
	return nil
}

// RemoveChampion drops a champion from a pool. An empty category removes it
// from every category.
func (s *Store) RemoveChampion(ctx context.Context, poolID uint, championID string, category domain.PoolCategory) error {
	s.poolsPending()

	path := fmt.Sprintf("/champion-pools/%d/champions/%s", poolID, url.PathEscape(championID))
	if category != "" {
		path += "?category=" + url.QueryEscape(string(category))
	}

	if err := s.client.Delete(ctx, path); err != nil {
		return s.poolsFail(err)
	}

	var pool domain.ChampionPool
	if err := s.client.Get(ctx, fmt.Sprintf("/champion-pools/%d", poolID), &pool); err != nil {
		return s.poolsFail(err)
	}

	s.replacePool(&pool)
	return nil
}

func (s *Store) replacePool(pool *domain.ChampionPool) {
	s.update(func(st *State) {
		for i, item := range st.ChampionPools.Items {
			if item.ID == pool.ID {
				st.ChampionPools.Items[i] = pool
			}
		}
		if st.ChampionPools.Current != nil && st.ChampionPools.Current.ID == pool.ID {
			st.ChampionPools.Current = pool
		}
		st.ChampionPools.Loading = false
	})
}
