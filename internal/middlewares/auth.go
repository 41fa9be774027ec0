package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/easyjobs/resume-summary-api/internal/jwt"
	"github.com/easyjobs/resume-summary-api/internal/logger"
	"github.com/easyjobs/resume-summary-api/internal/models"
)

// Tokener extracts and parses session tokens from requests.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetAccountID(ctx context.Context, tokenString string) (uuid.UUID, error)
}

// SessionResolver maps a session account id to a live account.
// A nil account with a nil error means the session is stale.
type SessionResolver interface {
	ResolveSession(ctx context.Context, accountID uuid.UUID) (*models.AccountDB, error)
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var accountKey = contextKey{}

// AuthMiddleware resolves the session token to a live account and stores it in the
// request context. Stale tokens clear the session cookie and short-circuit with 401.
func AuthMiddleware(tokener Tokener, resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				writeUnauthorized(w, "Session invalid, please login again")
				return
			}

			accountID, err := tokener.GetAccountID(ctx, tokenString)
			if err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				writeUnauthorized(w, "Session invalid, please login again")
				return
			}

			account, err := resolver.ResolveSession(ctx, accountID)
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]any{
					"success": false,
					"error":   "Internal server error",
				})
				return
			}
			if account == nil {
				clearSessionCookie(w)
				writeUnauthorized(w, "Session invalid, please login again")
				return
			}

			next.ServeHTTP(w, r.WithContext(SetAccountToContext(ctx, account)))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   msg,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     jwt.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// SetAccountToContext stores the resolved account in the context
func SetAccountToContext(ctx context.Context, account *models.AccountDB) context.Context {
	return context.WithValue(ctx, accountKey, account)
}

// GetAccountFromContext retrieves the resolved account. Returns nil if not present.
func GetAccountFromContext(ctx context.Context) *models.AccountDB {
	account, _ := ctx.Value(accountKey).(*models.AccountDB)
	return account
}
