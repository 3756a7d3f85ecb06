package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dom/league-improvement-tracker/internal/api/response"
	"github.com/dom/league-improvement-tracker/internal/domain"
	"github.com/dom/league-improvement-tracker/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}

type UpdateMeRequest struct {
	Email           string `json:"email"`
	Username        string `json:"username"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// Token implements the OAuth2 password flow: form-encoded username and
// password in, bearer token out.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		response.Detail(w, http.StatusBadRequest, "Invalid form body")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		response.Validation(w, response.FieldError{
			Loc:  []string{"body", "username"},
			Msg:  "field required",
			Type: "value_error.missing",
		})
		return
	}

	token, _, err := h.authService.Login(r.Context(), username, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Detail(w, http.StatusUnauthorized, "Incorrect username or password")
		case errors.Is(err, service.ErrInactiveUser):
			response.Detail(w, http.StatusBadRequest, "Inactive user")
		default:
			response.Detail(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response.JSON(w, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Detail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var fieldErrs []response.FieldError
	for field, value := range map[string]string{
		"email":    req.Email,
		"username": req.Username,
		"password": req.Password,
	} {
		if value == "" {
			fieldErrs = append(fieldErrs, response.FieldError{
				Loc:  []string{"body", field},
				Msg:  "field required",
				Type: "value_error.missing",
			})
		}
	}
	if len(fieldErrs) > 0 {
		response.Validation(w, fieldErrs...)
		return
	}

	user, err := h.authService.Register(r.Context(), service.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameExists):
			response.Detail(w, http.StatusBadRequest, "Username already registered")
		case errors.Is(err, service.ErrEmailExists):
			response.Detail(w, http.StatusBadRequest, "Email already registered")
		default:
			response.Detail(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response.JSON(w, http.StatusCreated, user)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		response.Detail(w, http.StatusNotFound, "User not found")
		return
	}

	response.JSON(w, http.StatusOK, user)
}

func (h *AuthHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req UpdateMeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Detail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authService.UpdateMe(r.Context(), userID, service.UpdateMeInput{
		Email:           req.Email,
		Username:        req.Username,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWrongPassword):
			response.Detail(w, http.StatusBadRequest, "Current password is incorrect")
		case errors.Is(err, service.ErrUsernameExists):
			response.Detail(w, http.StatusBadRequest, "Username already registered")
		case errors.Is(err, service.ErrEmailExists):
			response.Detail(w, http.StatusBadRequest, "Email already registered")
		case errors.Is(err, domain.ErrUserNotFound):
			response.Detail(w, http.StatusNotFound, "User not found")
		default:
			response.Detail(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response.JSON(w, http.StatusOK, user)
}

// ListUsers is the admin dashboard listing; non-admins get a 403.
func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	caller, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		response.Detail(w, http.StatusNotFound, "User not found")
		return
	}
	if !caller.IsAdmin {
		response.Detail(w, http.StatusForbidden, "Not enough permissions")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("skip"))

	users, err := h.authService.ListUsers(r.Context(), limit, offset)
	if err != nil {
		response.Detail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.JSON(w, http.StatusOK, users)
}
