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
	"github.com/dom/league-improvement-tracker/internal/service"
)

type GameSessionHandler struct {
	sessionService *service.GameSessionService
	hub            *events.Hub
}

func NewGameSessionHandler(sessionService *service.GameSessionService, hub *events.Hub) *GameSessionHandler {
	return &GameSessionHandler{
		sessionService: sessionService,
		hub:            hub,
	}
}

type GameSessionRequest struct {
	Date            *time.Time                 `json:"date"`
	PlayerCharacter string                     `json:"player_character"`
	EnemyCharacter  string                     `json:"enemy_character"`
	Result          string                     `json:"result"`
	MoodRating      int                        `json:"mood_rating"`
	GoalProgress    []domain.GoalProgressEntry `json:"goal_progress"`
	Notes           string                     `json:"notes"`
}

func (req GameSessionRequest) toInput() service.GameSessionInput {
	return service.GameSessionInput{
		Date:            req.Date,
		PlayerCharacter: req.PlayerCharacter,
		EnemyCharacter:  req.EnemyCharacter,
		Result:          req.Result,
		MoodRating:      req.MoodRating,
		GoalProgress:    req.GoalProgress,
		Notes:           req.Notes,
	}
}

func (h *GameSessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req GameSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Detail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.sessionService.Create(r.Context(), userID, req.toInput())
	if err != nil {
		writeSessionError(w, err)
		return
	}

	h.hub.Publish("game_sessions", "created", session.ID, userID)
	response.JSON(w, http.StatusCreated, session)
}

func (h *GameSessionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("skip"))

	sessions, err := h.sessionService.List(r.Context(), userID, limit, offset)
	if err != nil {
		response.Detail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.JSON(w, http.StatusOK, sessions)
}

func (h *GameSessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	session, err := h.sessionService.Get(r.Context(), id, userID)
	if err != nil {
		writeSessionError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, session)
}

func (h *GameSessionHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	var req GameSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Detail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.sessionService.Update(r.Context(), id, userID, req.toInput())
	if err != nil {
		writeSessionError(w, err)
		return
	}

	h.hub.Publish("game_sessions", "updated", session.ID, userID)
	response.JSON(w, http.StatusOK, session)
}

func (h *GameSessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	if err := h.sessionService.Delete(r.Context(), id, userID); err != nil {
		writeSessionError(w, err)
		return
	}

	h.hub.Publish("game_sessions", "deleted", id, userID)
	response.NoContent(w)
}

func writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrGameSessionNotFound):
		response.Detail(w, http.StatusNotFound, "Game session not found")
	case errors.Is(err, domain.ErrInvalidMoodRating):
		response.Validation(w, response.FieldError{
			Loc:  []string{"body", "mood_rating"},
			Msg:  err.Error(),
			Type: "value_error",
		})
	default:
		response.Detail(w, http.StatusInternalServerError, "Internal server error")
	}
}
