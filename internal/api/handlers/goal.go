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

type GoalHandler struct {
	goalService *service.GoalService
	hub         *events.Hub
}

func NewGoalHandler(goalService *service.GoalService, hub *events.Hub) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
		hub:         hub,
	}
}

type GoalRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      domain.GoalStatus `json:"status"`
}

type GoalStatusRequest struct {
	Status domain.GoalStatus `json:"status"`
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req GoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Detail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" {
		response.Validation(w, response.FieldError{
			Loc:  []string{"body", "title"},
			Msg:  "field required",
			Type: "value_error.missing",
		})
		return
	}

	goal, err := h.goalService.Create(r.Context(), userID, service.GoalInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		writeGoalError(w, err)
		return
	}

	h.hub.Publish("goals", "created", goal.ID, userID)
	response.JSON(w, http.StatusCreated, goal)
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	status := domain.GoalStatus(r.URL.Query().Get("status"))

	goals, err := h.goalService.List(r.Context(), userID, status)
	if err != nil {
		writeGoalError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, goals)
}

func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	goal, err := h.goalService.Get(r.Context(), id, userID)
	if err != nil {
		writeGoalError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, goal)
}

func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	var req GoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Detail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	goal, err := h.goalService.Update(r.Context(), id, userID, service.GoalInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		writeGoalError(w, err)
		return
	}

	h.hub.Publish("goals", "updated", goal.ID, userID)
	response.JSON(w, http.StatusOK, goal)
}

// UpdateStatus is the narrow PATCH that flips a goal between active,
// completed and archived without touching anything else.
func (h *GoalHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	var req GoalStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Detail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	goal, err := h.goalService.UpdateStatus(r.Context(), id, userID, req.Status)
	if err != nil {
		writeGoalError(w, err)
		return
	}

	h.hub.Publish("goals", "updated", goal.ID, userID)
	response.JSON(w, http.StatusOK, goal)
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	if err := h.goalService.Delete(r.Context(), id, userID); err != nil {
		writeGoalError(w, err)
		return
	}

	h.hub.Publish("goals", "deleted", id, userID)
	response.NoContent(w)
}

func writeGoalError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrGoalNotFound):
		response.Detail(w, http.StatusNotFound, "Goal not found")
	case errors.Is(err, domain.ErrInvalidGoalStatus):
		response.Validation(w, response.FieldError{
			Loc:  []string{"body", "status"},
			Msg:  err.Error(),
			Type: "value_error.const",
		})
	default:
		response.Detail(w, http.StatusInternalServerError, "Internal server error")
	}
}
