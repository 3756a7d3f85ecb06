package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dom/league-improvement-tracker/internal/api/response"
	"github.com/dom/league-improvement-tracker/internal/domain"
	"github.com/dom/league-improvement-tracker/internal/events"
	"github.com/dom/league-improvement-tracker/internal/service"
	"github.com/go-chi/chi/v5"
)

type ChampionPoolHandler struct {
	poolService *service.ChampionPoolService
	hub         *events.Hub
}

func NewChampionPoolHandler(poolService *service.ChampionPoolService, hub *events.Hub) *ChampionPoolHandler {
	return &ChampionPoolHandler{
		poolService: poolService,
		hub:         hub,
	}
}

type ChampionEntryRequest struct {
	ChampionID   string              `json:"champion_id"`
	ChampionName string              `json:"champion_name"`
	Category     domain.PoolCategory `json:"category"`
	Notes        string              `json:"notes"`
}

func (req ChampionEntryRequest) toInput() service.ChampionEntryInput {
	return service.ChampionEntryInput{
		ChampionID:   req.ChampionID,
		ChampionName: req.ChampionName,
		Category:     req.Category,
		Notes:        req.Notes,
	}
}

type ChampionPoolRequest struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Champions   []ChampionEntryRequest `json:"champions"`
}

func (req ChampionPoolRequest) toInput() service.ChampionPoolInput {
	input := service.ChampionPoolInput{
		Name:        req.Name,
		Description: req.Description,
	}
	for _, c := range req.Champions {
		input.Champions = append(input.Champions, c.toInput())
	}
	return input
}

func (h *ChampionPoolHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req ChampionPoolRequest
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

	pool, err := h.poolService.Create(r.Context(), userID, req.toInput())
	if err != nil {
		writePoolError(w, err)
		return
	}

	h.hub.Publish("champion_pools", "created", pool.ID, userID)
	response.JSON(w, http.StatusCreated, pool)
}

func (h *ChampionPoolHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	pools, err := h.poolService.List(r.Context(), userID)
	if err != nil {
		response.Detail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.JSON(w, http.StatusOK, pools)
}

func (h *ChampionPoolHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	pool, err := h.poolService.Get(r.Context(), id, userID)
	if err != nil {
		writePoolError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, pool)
}

func (h *ChampionPoolHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	var req ChampionPoolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Detail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	pool, err := h.poolService.Update(r.Context(), id, userID, req.toInput())
	if err != nil {
		writePoolError(w, err)
		return
	}

	h.hub.Publish("champion_pools", "updated", pool.ID, userID)
	response.JSON(w, http.StatusOK, pool)
}

func (h *ChampionPoolHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	if err := h.poolService.Delete(r.Context(), id, userID); err != nil {
		writePoolError(w, err)
		return
	}

	h.hub.Publish("champion_pools", "deleted", id, userID)
	response.NoContent(w)
}

func (h *ChampionPoolHandler) AddChampion(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	var req ChampionEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Detail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ChampionID == "" {
		response.Validation(w, response.FieldError{
			Loc:  []string{"body", "champion_id"},
			Msg:  "field required",
			Type: "value_error.missing",
		})
		return
	}

	entry, err := h.poolService.AddChampion(r.Context(), id, userID, req.toInput())
	if err != nil {
		writePoolError(w, err)
		return
	}

	h.hub.Publish("champion_pools", "updated", id, userID)
	response.JSON(w, http.StatusCreated, entry)
}

// RemoveChampion accepts an optional ?category= query; without it the
// champion is removed from every category in the pool.
func (h *ChampionPoolHandler) RemoveChampion(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	championID := chi.URLParam(r, "championID")

	category := domain.PoolCategory(r.URL.Query().Get("category"))

	if err := h.poolService.RemoveChampion(r.Context(), id, userID, championID, category); err != nil {
		writePoolError(w, err)
		return
	}

	h.hub.Publish("champion_pools", "updated", id, userID)
	response.NoContent(w)
}

// ListAllChampions flattens every pool the caller owns into one entry list,
// optionally filtered by category.
func (h *ChampionPoolHandler) ListAllChampions(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	category := domain.PoolCategory(r.URL.Query().Get("category"))

	var (
		entries []*domain.ChampionPoolEntry
		err     error
	)
	if category != "" {
		entries, err = h.poolService.ListChampionsByCategory(r.Context(), userID, category)
	} else {
		entries, err = h.poolService.ListAllChampions(r.Context(), userID)
	}
	if err != nil {
		writePoolError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, entries)
}

func (h *ChampionPoolHandler) ListChampionsByCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	category := domain.PoolCategory(chi.URLParam(r, "category"))

	entries, err := h.poolService.ListChampionsByCategory(r.Context(), userID, category)
	if err != nil {
		writePoolError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, entries)
}

func writePoolError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrPoolNotFound):
		response.Detail(w, http.StatusNotFound, "Champion pool not found")
	case errors.Is(err, domain.ErrChampionNotInPool):
		response.Detail(w, http.StatusNotFound, "Champion not found in pool")
	case errors.Is(err, domain.ErrInvalidPoolCategory):
		response.Validation(w, response.FieldError{
			Loc:  []string{"body", "category"},
			Msg:  err.Error(),
			Type: "value_error.const",
		})
	default:
		response.Detail(w, http.StatusInternalServerError, "Internal server error")
	}
}
