package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dom/league-improvement-tracker/internal/api/response"
	"github.com/dom/league-improvement-tracker/internal/domain"
	"github.com/dom/league-improvement-tracker/internal/events"
	"github.com/dom/league-improvement-tracker/internal/service"
)

type CreatorHandler struct {
	creatorService *service.CreatorService
	hub            *events.Hub
}

func NewCreatorHandler(creatorService *service.CreatorService, hub *events.Hub) *CreatorHandler {
	return &CreatorHandler{
		creatorService: creatorService,
		hub:            hub,
	}
}

type CreatorRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Platform    string `json:"platform"`
	Website     string `json:"website"`
}

func (h *CreatorHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req CreatorRequest
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

	creator, err := h.creatorService.Create(r.Context(), &domain.Creator{
		Name:        req.Name,
		Description: req.Description,
		Platform:    req.Platform,
		Website:     req.Website,
	})
	if err != nil {
		writeCreatorError(w, err)
		return
	}

	h.hub.Publish("creators", "created", creator.ID, userID)
	response.JSON(w, http.StatusCreated, creator)
}

func (h *CreatorHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	creators, err := h.creatorService.List(r.Context())
	if err != nil {
		response.Detail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.JSON(w, http.StatusOK, creators)
}

func (h *CreatorHandler) Get(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	creator, err := h.creatorService.Get(r.Context(), id)
	if err != nil {
		writeCreatorError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, creator)
}

func (h *CreatorHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	var req CreatorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Detail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	creator, err := h.creatorService.Update(r.Context(), id, &domain.Creator{
		Name:        req.Name,
		Description: req.Description,
		Platform:    req.Platform,
		Website:     req.Website,
	})
	if err != nil {
		writeCreatorError(w, err)
		return
	}

	h.hub.Publish("creators", "updated", creator.ID, userID)
	response.JSON(w, http.StatusOK, creator)
}

func (h *CreatorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	if err := h.creatorService.Delete(r.Context(), id); err != nil {
		writeCreatorError(w, err)
		return
	}

	h.hub.Publish("creators", "deleted", id, userID)
	response.NoContent(w)
}

func (h *CreatorHandler) ListVideos(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	videos, err := h.creatorService.ListVideos(r.Context(), id)
	if err != nil {
		writeCreatorError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, videos)
}

func writeCreatorError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrCreatorNotFound):
		response.Detail(w, http.StatusNotFound, "Creator not found")
	case errors.Is(err, service.ErrCreatorNameExists):
		response.Detail(w, http.StatusBadRequest, "Creator with this name already exists")
	default:
		response.Detail(w, http.StatusInternalServerError, "Internal server error")
	}
}
