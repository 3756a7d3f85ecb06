package handlers

import (
	"net/http"
	"strconv"

	"github.com/dom/league-improvement-tracker/internal/api/middleware"
	"github.com/dom/league-improvement-tracker/internal/api/response"
	"github.com/go-chi/chi/v5"
)

// urlID parses a numeric path parameter. Writes a validation error and
// returns false when the segment is not a positive integer.
func urlID(w http.ResponseWriter, r *http.Request, name string) (uint, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.Validation(w, response.FieldError{
			Loc:  []string{"path", name},
			Msg:  "value is not a valid integer",
			Type: "type_error.integer",
		})
		return 0, false
	}
	return uint(id), true
}

// requireUser pulls the authenticated user id set by the auth middleware.
func requireUser(w http.ResponseWriter, r *http.Request) (uint, bool) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Detail(w, http.StatusUnauthorized, "Not authenticated")
		return 0, false
	}
	return userID, true
}
