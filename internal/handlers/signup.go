package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/easyjobs/resume-summary-api/internal/jwt"
	"github.com/easyjobs/resume-summary-api/internal/logger"
	"github.com/easyjobs/resume-summary-api/internal/models"
	"github.com/easyjobs/resume-summary-api/internal/services"
)

// Registerer defines the interface that the signup service must implement.
type Registerer interface {
	Register(ctx context.Context, name, email, password string) (*models.AccountDB, string, error)
}

// SignupRequest represents the JSON body for account signup
// swagger:model SignupRequest
type SignupRequest struct {
	// Display name
	// required: true
	// default: Ana
	Name string `json:"name"`

	// Email
	// required: true
	// default: ana@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// SignupResponse represents a successful signup response
// swagger:model SignupResponse
type SignupResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Token   string         `json:"token"`
	User    AccountSummary `json:"user"`
}

// AccountSummary is the account view returned to clients.
type AccountSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ErrorResponse represents a generic error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewSignupHandler returns an HTTP handler for account signup.
// @Summary Create a new account
// @Description Creates an account with a unique email, hashes the password, and starts a session.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "Signup request"
// @Success 200 {object} handlers.SignupResponse "Account created"
// @Failure 400 {object} handlers.ErrorResponse "Missing field or duplicate email"
// @Router /api/auth/signup [post]
func NewSignupHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req SignupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Invalid request body"})
			return
		}

		account, token, err := svc.Register(r.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingField):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Name, email and password are required"})
			case errors.Is(err, services.ErrEmailAlreadyExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "An account with this email already exists"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Internal server error"})
			}
			return
		}

		setSessionCookie(w, token)
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SignupResponse{
			Success: true,
			Message: "Account created successfully!",
			Token:   token,
			User:    AccountSummary{Name: account.Name, Email: account.Email},
		})
	}
}

// setSessionCookie installs the session token for browser clients.
func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     jwt.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
