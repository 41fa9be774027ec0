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

// PaymentVerifier defines the interface that the payment service must implement.
type PaymentVerifier interface {
	VerifyPayment(ctx context.Context, orderID, paymentID, signature string, account *models.AccountDB) error
}

// VerifyPaymentRequest represents the checkout result returned by the provider client.
// swagger:model VerifyPaymentRequest
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

// VerifyPaymentResponse represents a successful verification response
// swagger:model VerifyPaymentResponse
type VerifyPaymentResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	IsPremium bool   `json:"is_premium"`
	PaymentID string `json:"payment_id"`
}

// NewVerifyPaymentHandler returns an HTTP handler for payment verification.
// @Summary Verify a payment
// @Description Checks the provider signature and grants the premium entitlement. Safe to retry with the same tuple.
// @Tags payment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param verifyPaymentRequest body handlers.VerifyPaymentRequest true "Checkout result"
// @Success 200 {object} handlers.VerifyPaymentResponse "Premium activated"
// @Failure 400 {object} handlers.ErrorResponse "Missing fields or signature mismatch"
// @Failure 500 {object} handlers.ErrorResponse "Entitlement write failure"
// @Router /api/verify-razorpay-payment [post]
func NewVerifyPaymentHandler(svc PaymentVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		account := middlewares.GetAccountFromContext(r.Context())
		if account == nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "User not found"})
			return
		}

		var req VerifyPaymentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Invalid request body"})
			return
		}

		err := svc.VerifyPayment(r.Context(), req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, account)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingPaymentFields):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Missing payment verification data"})
			case errors.Is(err, services.ErrSignatureMismatch):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Payment verification failed"})
			case errors.Is(err, services.ErrEntitlementNotApplied):
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Failed to activate premium subscription"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Message: "Payment verification failed"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(VerifyPaymentResponse{
			Success:   true,
			Message:   "Payment verified and premium activated successfully!",
			IsPremium: true,
			PaymentID: req.RazorpayPaymentID,
		})
	}
}
