package client

import (
	"encoding/json"
	"fmt"
	"strings"
)

// APIError is a non-2xx response from the server, normalized to a single
// human-readable message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// IsUnauthorized reports whether err is an APIError with status 401.
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == 401
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == 404
}

type fieldError struct {
	Loc  []json.RawMessage `json:"loc"`
	Msg  string            `json:"msg"`
	Type string            `json:"type"`
}

// NormalizeErrorBody turns a server error body into a display message. The
// shapes it understands, in order:
//
//  1. {"detail": "message"}           -> the message verbatim
//  2. {"detail": [{loc, msg, type}]}  -> "loc: msg" entries joined by "; "
//  3. {"detail": {...}}               -> the object's "msg" field, or the
//     object re-serialized
//  4. any other JSON                  -> the body re-serialized
//  5. non-JSON                        -> empty, caller falls through
func NormalizeErrorBody(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}

	if len(envelope.Detail) > 0 {
		var s string
		if err := json.Unmarshal(envelope.Detail, &s); err == nil {
			return s
		}

		var fields []fieldError
		if err := json.Unmarshal(envelope.Detail, &fields); err == nil && len(fields) > 0 {
			parts := make([]string, 0, len(fields))
			for _, f := range fields {
				parts = append(parts, fmt.Sprintf("%s: %s", joinLoc(f.Loc), f.Msg))
			}
			return strings.Join(parts, "; ")
		}

		var obj map[string]json.RawMessage
		if err := json.Unmarshal(envelope.Detail, &obj); err == nil {
			if rawMsg, ok := obj["msg"]; ok {
				var msg string
				if err := json.Unmarshal(rawMsg, &msg); err == nil {
					return msg
				}
			}
			return string(envelope.Detail)
		}

		return string(envelope.Detail)
	}

	// Valid JSON without a detail key; surface it as-is.
	trimmed := strings.TrimSpace(string(body))
	if trimmed != "" && trimmed != "null" && trimmed != "{}" {
		return trimmed
	}
	return ""
}

// joinLoc renders a validation location path. Segments can be strings or
// array indices.
func joinLoc(loc []json.RawMessage) string {
	parts := make([]string, 0, len(loc))
	for _, seg := range loc {
		var s string
		if err := json.Unmarshal(seg, &s); err == nil {
			parts = append(parts, s)
			continue
		}
		parts = append(parts, string(seg))
	}
	return strings.Join(parts, ".")
}

// NormalizeError produces the message for any failure on the request path.
// Transport errors fall back to err.Error(); a completely opaque failure
// becomes "Unknown error occurred".
func NormalizeError(statusCode int, body []byte, err error) string {
	if msg := NormalizeErrorBody(body); msg != "" {
		return msg
	}
	if err != nil {
		return err.Error()
	}
	if statusCode != 0 {
		return fmt.Sprintf("Request failed with status %d", statusCode)
	}
	return "Unknown error occurred"
}
