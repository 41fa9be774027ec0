package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/easyjobs/resume-summary-api/internal/middlewares"
	"github.com/easyjobs/resume-summary-api/internal/models"
)

// QuotaProjector projects an account's quota state.
type QuotaProjector interface {
	Status(account *models.AccountDB) models.UsageStatus
}

// UsageStatusResponse represents the quota snapshot response
// swagger:model UsageStatusResponse
type UsageStatusResponse struct {
	Success bool               `json:"success"`
	Data    models.UsageStatus `json:"data"`
}

// NewUsageStatusHandler returns an HTTP handler for the quota snapshot.
// @Summary Get usage status
// @Description Returns the current account's usage count, limit, and entitlement flags.
// @Tags usage
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.UsageStatusResponse "Quota snapshot"
// @Failure 401 {object} handlers.ErrorResponse "Invalid session"
// @Router /api/usage-status [get]
func NewUsageStatusHandler(svc QuotaProjector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		account := middlewares.GetAccountFromContext(r.Context())
		if account == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Session invalid, please login again"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UsageStatusResponse{
			Success: true,
			Data:    svc.Status(account),
		})
	}
}
