// Package response writes API responses in the wire format the frontend
// error handling expects: plain entities on success, a "detail" envelope on
// failure. Validation failures carry a list of field errors.
package response

import (
	"encoding/json"
	"log"
	"net/http"
)

// FieldError is one entry in a 422 validation detail list.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ERROR [response] failed to encode response: %v", err)
	}
}

// Detail writes an error with a string detail message.
func Detail(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"detail": msg})
}

// Validation writes a 422 with a structured field error list.
func Validation(w http.ResponseWriter, errs ...FieldError) {
	JSON(w, http.StatusUnprocessableEntity, map[string][]FieldError{"detail": errs})
}

// NoContent writes an empty 204.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
