package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dom/league-improvement-tracker/internal/api/response"
	"github.com/dom/league-improvement-tracker/internal/domain"
	"github.com/dom/league-improvement-tracker/internal/events"
	"github.com/dom/league-improvement-tracker/internal/repository"
	"github.com/dom/league-improvement-tracker/internal/service"
	"gorm.io/datatypes"
)

type VideoHandler struct {
	videoService *service.VideoService
	hub          *events.Hub
}

func NewVideoHandler(videoService *service.VideoService, hub *events.Hub) *VideoHandler {
	return &VideoHandler{
		videoService: videoService,
		hub:          hub,
	}
}

type VideoRequest struct {
	Title             string     `json:"title"`
	Creator           string     `json:"creator"`
	URL               string     `json:"url"`
	Description       string     `json:"description"`
	VideoType         string     `json:"video_type"`
	KeyPoints         string     `json:"key_points"`
	UploadDate        *time.Time `json:"upload_date"`
	Tags              []string   `json:"tags"`
	CategoryID        *uint      `json:"category_id"`
	CreatorRelationID *uint      `json:"creator_relation_id"`
}

func (req VideoRequest) toModel() *domain.VideoTutorial {
	return &domain.VideoTutorial{
		Title:             req.Title,
		Creator:           req.Creator,
		URL:               req.URL,
		Description:       req.Description,
		VideoType:         req.VideoType,
		KeyPoints:         req.KeyPoints,
		UploadDate:        req.UploadDate,
		Tags:              datatypes.NewJSONSlice(req.Tags),
		CategoryID:        req.CategoryID,
		CreatorRelationID: req.CreatorRelationID,
	}
}

func (h *VideoHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req VideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Detail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" || req.URL == "" {
		var fieldErrs []response.FieldError
		if req.Title == "" {
			fieldErrs = append(fieldErrs, response.FieldError{
				Loc:  []string{"body", "title"},
				Msg:  "field required",
				Type: "value_error.missing",
			})
		}
		if req.URL == "" {
			fieldErrs = append(fieldErrs, response.FieldError{
				Loc:  []string{"body", "url"},
				Msg:  "field required",
				Type: "value_error.missing",
			})
		}
		response.Validation(w, fieldErrs...)
		return
	}

	video, err := h.videoService.Create(r.Context(), req.toModel())
	if err != nil {
		writeVideoError(w, err)
		return
	}

	h.hub.Publish("videos", "created", video.ID, userID)
	response.JSON(w, http.StatusCreated, video)
}

func (h *VideoHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	videos, err := h.videoService.List(r.Context(), userID)
	if err != nil {
		response.Detail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.JSON(w, http.StatusOK, videos)
}

// Search filters the library by free text, creator, category, tags and
// publication window, with whitelisted sort columns.
func (h *VideoHandler) Search(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()

	params := repository.VideoSearchParams{
		Query:     q.Get("query"),
		Tags:      q["tag"],
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
	}
	if v, err := strconv.ParseUint(q.Get("creator_id"), 10, 64); err == nil {
		id := uint(v)
		params.CreatorID = &id
	}
	if v, err := strconv.ParseUint(q.Get("category_id"), 10, 64); err == nil {
		id := uint(v)
		params.CategoryID = &id
	}
	if t, err := time.Parse(time.RFC3339, q.Get("published_after")); err == nil {
		params.MinPublished = &t
	}
	if t, err := time.Parse(time.RFC3339, q.Get("published_before")); err == nil {
		params.MaxPublished = &t
	}
	params.Skip, _ = strconv.Atoi(q.Get("skip"))
	params.Limit, _ = strconv.Atoi(q.Get("limit"))

	videos, err := h.videoService.Search(r.Context(), userID, params)
	if err != nil {
		response.Detail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.JSON(w, http.StatusOK, videos)
}

func (h *VideoHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	video, err := h.videoService.Get(r.Context(), id, userID)
	if err != nil {
		writeVideoError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, video)
}

func (h *VideoHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	var req VideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Detail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	video, err := h.videoService.Update(r.Context(), id, req.toModel())
	if err != nil {
		writeVideoError(w, err)
		return
	}

	h.hub.Publish("videos", "updated", video.ID, userID)
	response.JSON(w, http.StatusOK, video)
}

func (h *VideoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	if err := h.videoService.Delete(r.Context(), id); err != nil {
		writeVideoError(w, err)
		return
	}

	h.hub.Publish("videos", "deleted", id, userID)
	response.NoContent(w)
}

func (h *VideoHandler) SetCreator(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	creatorID, ok := urlID(w, r, "creatorID")
	if !ok {
		return
	}

	video, err := h.videoService.SetCreator(r.Context(), id, creatorID)
	if err != nil {
		writeVideoError(w, err)
		return
	}

	h.hub.Publish("videos", "updated", video.ID, userID)
	response.JSON(w, http.StatusOK, video)
}

// Progress

type VideoProgressRequest struct {
	IsWatched     *bool    `json:"is_watched"`
	WatchProgress *float64 `json:"watch_progress"`
	PersonalNotes *string  `json:"personal_notes"`
	IsBookmarked  *bool    `json:"is_bookmarked"`
}

func (h *VideoHandler) SaveProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	var req VideoProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Detail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	progress, err := h.videoService.SaveProgress(r.Context(), userID, id, service.VideoProgressInput{
		IsWatched:     req.IsWatched,
		WatchProgress: req.WatchProgress,
		PersonalNotes: req.PersonalNotes,
		IsBookmarked:  req.IsBookmarked,
	})
	if err != nil {
		writeVideoError(w, err)
		return
	}

	h.hub.Publish("videos", "updated", id, userID)
	response.JSON(w, http.StatusOK, progress)
}

func (h *VideoHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	progress, err := h.videoService.GetProgress(r.Context(), userID, id)
	if err != nil {
		writeVideoError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, progress)
}

// Categories

type VideoCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *VideoHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	var req VideoCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Detail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		response.Validation(w, response.FieldError{
			Loc:  []string{"body", "name"},
			Msg:  "field required",
			Type: "value_error.missing",
		})
		return
	}

	category, err := h.videoService.CreateCategory(r.Context(), &domain.VideoCategory{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeVideoError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, category)
}

func (h *VideoHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	categories, err := h.videoService.ListCategories(r.Context())
	if err != nil {
		response.Detail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.JSON(w, http.StatusOK, categories)
}

func (h *VideoHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	var req VideoCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Detail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.videoService.UpdateCategory(r.Context(), id, &domain.VideoCategory{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeVideoError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, category)
}

func (h *VideoHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	if err := h.videoService.DeleteCategory(r.Context(), id); err != nil {
		writeVideoError(w, err)
		return
	}

	response.NoContent(w)
}

// Kemono

func (h *VideoHandler) PreviewKemono(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	svc := r.URL.Query().Get("service")
	creatorID := r.URL.Query().Get("creator_id")
	if svc == "" || creatorID == "" {
		response.Detail(w, http.StatusBadRequest, "service and creator_id are required")
		return
	}

	posts, err := h.videoService.PreviewKemono(r.Context(), svc, creatorID)
	if err != nil {
		response.Detail(w, http.StatusBadGateway, "Failed to fetch creator feed")
		return
	}

	response.JSON(w, http.StatusOK, posts)
}

type KemonoImportRequest struct {
	Service   string `json:"service"`
	CreatorID string `json:"creator_id"`
}

func (h *VideoHandler) ImportKemono(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req KemonoImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Detail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Service == "" || req.CreatorID == "" {
		response.Detail(w, http.StatusBadRequest, "service and creator_id are required")
		return
	}

	result, err := h.videoService.ImportKemono(r.Context(), req.Service, req.CreatorID)
	if err != nil {
		response.Detail(w, http.StatusBadGateway, "Failed to import creator feed")
		return
	}

	for _, video := range result.Videos {
		h.hub.Publish("videos", "created", video.ID, userID)
	}

	response.JSON(w, http.StatusOK, result)
}

func writeVideoError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrVideoNotFound):
		response.Detail(w, http.StatusNotFound, "Video not found")
	case errors.Is(err, domain.ErrCategoryNotFound):
		response.Detail(w, http.StatusNotFound, "Category not found")
	case errors.Is(err, domain.ErrCreatorNotFound):
		response.Detail(w, http.StatusNotFound, "Creator not found")
	case errors.Is(err, domain.ErrProgressNotFound):
		response.Detail(w, http.StatusNotFound, "Progress not found")
	case errors.Is(err, service.ErrCategoryNameExists):
		response.Detail(w, http.StatusBadRequest, "Category with this name already exists")
	default:
		response.Detail(w, http.StatusInternalServerError, "Internal server error")
	}
}
