package state

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/dom/league-improvement-tracker/internal/domain"
)

type VideoInput struct {
	Title             string     `json:"title"`
	Creator           string     `json:"creator"`
	URL               string     `json:"url"`
	Description       string     `json:"description"`
	VideoType         string     `json:"video_type"`
	KeyPoints         string     `json:"key_points"`
	UploadDate        *time.Time `json:"upload_date,omitempty"`
	Tags              []string   `json:"tags"`
	CategoryID        *uint      `json:"category_id,omitempty"`
	CreatorRelationID *uint      `json:"creator_relation_id,omitempty"`
}

// VideoSearchQuery mirrors the /videos/search/ query parameters.
type VideoSearchQuery struct {
	Query           string
	CreatorID       *uint
	CategoryID      *uint
	Tags            []string
	PublishedAfter  *time.Time
	PublishedBefore *time.Time
	SortBy          string
	SortOrder       string
	Skip            int
	Limit           int
}

func (q VideoSearchQuery) encode() string {
	values := url.Values{}
	if q.Query != "" {
		values.Set("query", q.Query)
	}
	if q.CreatorID != nil {
		values.Set("creator_id", strconv.FormatUint(uint64(*q.CreatorID), 10))
	}
	if q.CategoryID != nil {
		values.Set("category_id", strconv.FormatUint(uint64(*q.CategoryID), 10))
	}
	for _, tag := range q.Tags {
		values.Add("tag", tag)
	}
	if q.PublishedAfter != nil {
		values.Set("published_after", q.PublishedAfter.Format(time.RFC3339))
	}
	if q.PublishedBefore != nil {
		values.Set("published_before", q.PublishedBefore.Format(time.RFC3339))
	}
	if q.SortBy != "" {
		values.Set("sort_by", q.SortBy)
	}
	if q.SortOrder != "" {
		values.Set("sort_order", q.SortOrder)
	}
	if q.Skip > 0 {
		values.Set("skip", strconv.Itoa(q.Skip))
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

type VideoProgressInput struct {
	IsWatched     *bool    `json:"is_watched,omitempty"`
	WatchProgress *float64 `json:"watch_progress,omitempty"`
	PersonalNotes *string  `json:"personal_notes,omitempty"`
	IsBookmarked  *bool    `json:"is_bookmarked,omitempty"`
}

func (s *Store) videosPending() {
	s.update(func(st *State) {
		st.Videos.Loading = true
		st.Videos.Error = ""
	})
}

func (s *Store) videosFail(err error) error {
	return s.fail(err, func(st *State, msg string) {
		st.Videos.Loading = false
		st.Videos.Error = msg
	})
}

func (s *Store) FetchVideos(ctx context.Context) error {
	s.videosPending()

	var items []*domain.VideoTutorial
	if err := s.client.Get(ctx, "/videos/", &items); err != nil {
		return s.videosFail(err)
	}

	s.update(func(st *State) {
		st.Videos.Items = items
		st.Videos.Loading = false
	})
	return nil
}

// SearchVideos replaces the video list with the filtered result set.
func (s *Store) SearchVideos(ctx context.Context, query VideoSearchQuery) error {
	s.videosPending()

	var items []*domain.VideoTutorial
	if err := s.client.Get(ctx, "/videos/search/"+query.encode(), &items); err != nil {
		return s.videosFail(err)
	}

	s.update(func(st *State) {
		st.Videos.Items = items
		st.Videos.Loading = false
	})
	return nil
}

func (s *Store) FetchVideo(ctx context.Context, id uint) error {
	s.videosPending()

	var video domain.VideoTutorial
	if err := s.client.Get(ctx, fmt.Sprintf("/videos/%d", id), &video); err != nil {
		return s.videosFail(err)
	}

	s.update(func(st *State) {
		st.Videos.Current = &video
		st.Videos.Loading = false
	})
	return nil
}

func (s *Store) CreateVideo(ctx context.Context, input VideoInput) (*domain.VideoTutorial, error) {
	s.videosPending()

	var video domain.VideoTutorial
	if err := s.client.Post(ctx, "/videos/", input, &video); err != nil {
		return nil, s.videosFail(err)
	}

	s.update(func(st *State) {
		st.Videos.Items = append(st.Videos.Items, &video)
		st.Videos.Loading = false
	})
	return &video, nil
}

func (s *Store) UpdateVideo(ctx context.Context, id uint, input VideoInput) (*domain.VideoTutorial, error) {
	s.videosPending()

	var video domain.VideoTutorial
	if err := s.client.Put(ctx, fmt.Sprintf("/videos/%d", id), input, &video); err != nil {
		return nil, s.videosFail(err)
	}

	s.replaceVideo(&video)
	return &video, nil
}

func (s *Store) DeleteVideo(ctx context.Context, id uint) error {
	s.videosPending()

	if err := s.client.Delete(ctx, fmt.Sprintf("/videos/%d", id)); err != nil {
		return s.videosFail(err)
	}

	s.update(func(st *State) {
		items := st.Videos.Items[:0]
		for _, item := range st.Videos.Items {
			if item.ID != id {
				items = append(items, item)
			}
		}
		st.Videos.Items = items
		if st.Videos.Current != nil && st.Videos.Current.ID == id {
			st.Videos.Current = nil
		}
		st.Videos.Loading = false
	})
	return nil
}

// SaveVideoProgress upserts watch progress and patches it onto the cached
// video entries.
func (s *Store) SaveVideoProgress(ctx context.Context, id uint, input VideoProgressInput) (*domain.VideoProgress, error) {
	s.videosPending()

	var progress domain.VideoProgress
	if err := s.client.Post(ctx, fmt.Sprintf("/videos/%d/progress", id), input, &progress); err != nil {
		return nil, s.videosFail(err)
	}

	s.update(func(st *State) {
		for i, item := range st.Videos.Items {
			if item.ID == id {
				updated := *item
				updated.ProgressData = &progress
				st.Videos.Items[i] = &updated
			}
		}
		if st.Videos.Current != nil && st.Videos.Current.ID == id {
			updated := *st.Videos.Current
			updated.ProgressData = &progress
			st.Videos.Current = &updated
		}
		st.Videos.Loading = false
	})
	return &progress, nil
}

func (s *Store) replaceVideo(video *domain.VideoTutorial) {
	s.update(func(st *State) {
		for i, item := range st.Videos.Items {
			if item.ID == video.ID {
				st.Videos.Items[i] = video
			}
		}
		if st.Videos.Current != nil && st.Videos.Current.ID == video.ID {
			st.Videos.Current = video
		}
		st.Videos.Loading = false
	})
}

type VideoCategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Store) FetchVideoCategories(ctx context.Context) error {
	s.videosPending()

	var categories []*domain.VideoCategory
	if err := s.client.Get(ctx, "/videos/categories/", &categories); err != nil {
		return s.videosFail(err)
	}

	s.update(func(st *State) {
		st.Videos.Categories = categories
		st.Videos.Loading = false
	})
	return nil
}

func (s *Store) CreateVideoCategory(ctx context.Context, input VideoCategoryInput) (*domain.VideoCategory, error) {
	s.videosPending()

	var category domain.VideoCategory
	if err := s.client.Post(ctx, "/videos/categories/", input, &category); err != nil {
		return nil, s.videosFail(err)
	}

	s.update(func(st *State) {
		st.Videos.Categories = append(st.Videos.Categories, &category)
		st.Videos.Loading = false
	})
	return &category, nil
}
