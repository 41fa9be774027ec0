package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/easyjobs/resume-summary-api/internal/logger"
	"github.com/easyjobs/resume-summary-api/internal/middlewares"
	"github.com/easyjobs/resume-summary-api/internal/models"
	"github.com/easyjobs/resume-summary-api/internal/services"
)

// SummaryGenerator defines the interface that the generation service must implement.
type SummaryGenerator interface {
	Generate(ctx context.Context, account *models.AccountDB, input models.SummaryInput) ([]string, models.UsageStatus, error)
}

// GenerateSummaryResponse represents a successful generation response
// swagger:model GenerateSummaryResponse
type GenerateSummaryResponse struct {
	Success   bool            `json:"success"`
	Data      SummaryVariants `json:"data"`
	UsageInfo UsageInfo       `json:"usage_info"`
}

// SummaryVariants holds the three produced variants, order-preserving.
type SummaryVariants struct {
	V1 string `json:"v1"`
	V2 string `json:"v2"`
	V3 string `json:"v3"`
}

// UsageInfo is the quota snapshot attached to a generation response.
// Remaining is a number for trial accounts and the string "unlimited" for premium.
type UsageInfo struct {
	UsageCount int  `json:"usage_count"`
	Remaining  any  `json:"remaining"`
	IsPremium  bool `json:"is_premium"`
}

// TrialExceededResponse represents the quota-exhausted outcome
// swagger:model TrialExceededResponse
type TrialExceededResponse struct {
	Success    bool   `json:"success"`
	Error      string `json:"error"`
	Message    string `json:"message"`
	UsageCount int    `json:"usage_count"`
	Limit      int    `json:"limit"`
}

// NewGenerateSummaryHandler returns an HTTP handler for summary generation.
// @Summary Generate resume summaries
// @Description Produces three summary variants from six input fields. Counts against the free trial for non-premium accounts.
// @Tags generation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body models.SummaryInput true "Generation input"
// @Success 200 {object} handlers.GenerateSummaryResponse "Three variants and quota snapshot"
// @Failure 400 {object} handlers.ErrorResponse "Missing required field"
// @Failure 404 {object} handlers.ErrorResponse "Account missing"
// @Failure 429 {object} handlers.TrialExceededResponse "Free trial exceeded"
// @Router /api/generate-summary [post]
func NewGenerateSummaryHandler(svc SummaryGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		account := middlewares.GetAccountFromContext(r.Context())
		if account == nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "User not found"})
			return
		}

		var input models.SummaryInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Invalid request body"})
			return
		}

		summaries, status, err := svc.Generate(r.Context(), account, input)
		if err != nil {
			var missingField *services.MissingInputFieldError
			switch {
			case errors.As(err, &missingField):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Message: missingField.Error()})
			case errors.Is(err, services.ErrTrialExceeded):
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(TrialExceededResponse{
					Error:      "free_trial_exceeded",
					Message:    "You have reached your free trial limit. Upgrade to Premium for unlimited access!",
					UsageCount: status.UsageCount,
					Limit:      status.Limit,
				})
			case errors.Is(err, services.ErrAccountNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Internal server error"})
			}
			return
		}

		var remaining any = status.Remaining
		if status.IsPremium {
			remaining = "unlimited"
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(GenerateSummaryResponse{
			Success: true,
			Data: SummaryVariants{
				V1: summaries[0],
				V2: summaries[1],
				V3: summaries[2],
			},
			UsageInfo: UsageInfo{
				UsageCount: status.UsageCount,
				Remaining:  remaining,
				IsPremium:  status.IsPremium,
			},
		})
	}
}
