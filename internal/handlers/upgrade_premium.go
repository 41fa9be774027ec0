package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/easyjobs/resume-summary-api/internal/logger"
	"github.com/easyjobs/resume-summary-api/internal/middlewares"
	"github.com/easyjobs/resume-summary-api/internal/services"
)

// PremiumUpgrader defines the direct premium grant.
type PremiumUpgrader interface {
	UpgradePremium(ctx context.Context, accountID uuid.UUID) error
}

// UpgradePremiumResponse represents a successful upgrade response
// swagger:model UpgradePremiumResponse
type UpgradePremiumResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	IsPremium bool   `json:"is_premium"`
}

// NewUpgradePremiumHandler returns an HTTP handler for the direct premium upgrade.
// @Summary Upgrade to premium
// @Description Grants the premium entitlement to the current account.
// @Tags payment
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.UpgradePremiumResponse "Premium granted"
// @Failure 404 {object} handlers.ErrorResponse "Account missing"
// @Failure 500 {object} handlers.ErrorResponse "Store failure"
// @Router /api/upgrade-premium [post]
func NewUpgradePremiumHandler(svc PremiumUpgrader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		account := middlewares.GetAccountFromContext(r.Context())
		if account == nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "User not found"})
			return
		}

		if err := svc.UpgradePremium(r.Context(), account.AccountID); err != nil {
			if errors.Is(err, services.ErrAccountNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "User not found"})
				return
			}
			logger.Log.Errorw("failed to upgrade to premium", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Failed to upgrade to premium"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpgradePremiumResponse{
			Success:   true,
			Message:   "Successfully upgraded to Premium! You now have unlimited generations.",
			IsPremium: true,
		})
	}
}
