package handlers

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/easyjobs/resume-summary-api/internal/logger"
	"github.com/easyjobs/resume-summary-api/internal/models"
)

// StatsProvider defines the interface that the stats service must implement.
type StatsProvider interface {
	GetUsageStats(ctx context.Context) (*models.UsageStats, error)
}

// StatsResponse represents the aggregate counters response
// swagger:model StatsResponse
type StatsResponse struct {
	Success bool              `json:"success"`
	Data    models.UsageStats `json:"data"`
}

// NewStatsHandler returns an HTTP handler for admin usage statistics,
// gated by a shared admin key carried in the X-Admin-Key header.
// @Summary Usage statistics
// @Tags admin
// @Produce json
// @Param X-Admin-Key header string true "Admin key"
// @Success 200 {object} handlers.StatsResponse "Aggregate counters"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /api/admin/stats [get]
func NewStatsHandler(svc StatsProvider, adminKey string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		supplied := r.Header.Get("X-Admin-Key")
		if adminKey == "" || subtle.ConstantTimeCompare([]byte(supplied), []byte(adminKey)) != 1 {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Unauthorized"})
			return
		}

		stats, err := svc.GetUsageStats(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to get usage stats", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(StatsResponse{
			Success: true,
			Data:    *stats,
		})
	}
}
