package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/dom/league-improvement-tracker/internal/api/response"
	"github.com/dom/league-improvement-tracker/internal/service"
)

type contextKey string

const (
	UserIDKey contextKey = "userID"
)

func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				log.Printf("ERROR [middleware.Auth] missing authorization header")
				response.Detail(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				log.Printf("ERROR [middleware.Auth] invalid authorization header format")
				response.Detail(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			userID, err := authService.ValidateToken(parts[1])
			if err != nil {
				log.Printf("ERROR [middleware.Auth] token validation failed: %v", err)
				response.Detail(w, http.StatusUnauthorized, "Could not validate credentials")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUserID(ctx context.Context) (uint, bool) {
	userID, ok := ctx.Value(UserIDKey).(uint)
	return userID, ok
}
