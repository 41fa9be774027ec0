package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/easyjobs/resume-summary-api/internal/logger"
	"github.com/easyjobs/resume-summary-api/internal/middlewares"
	"github.com/easyjobs/resume-summary-api/internal/models"
)

// Default order parameters for the premium subscription: 1000 INR in paise.
const (
	defaultOrderAmount   = 100000
	defaultOrderCurrency = "INR"
)

// OrderCreator defines the interface that the payment service must implement.
type OrderCreator interface {
	CreateOrder(ctx context.Context, account *models.AccountDB, amount int64, currency string) (*models.Order, error)
}

// CreateOrderRequest represents the JSON body for order creation
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	// Amount in the currency's smallest unit
	// default: 100000
	Amount int64 `json:"amount"`

	// Currency code
	// default: INR
	Currency string `json:"currency"`
}

// CreateOrderResponse represents a successful order-creation response
// swagger:model CreateOrderResponse
type CreateOrderResponse struct {
	Success     bool   `json:"success"`
	OrderID     string `json:"order_id"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	RazorpayKey string `json:"razorpay_key"`
}

// NewCreateOrderHandler returns an HTTP handler for payment-order creation.
// @Summary Create a payment order
// @Description Mints a provider order for the premium subscription. No entitlement is granted here.
// @Tags payment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createOrderRequest body handlers.CreateOrderRequest false "Order parameters"
// @Success 200 {object} handlers.CreateOrderResponse "Order created"
// @Failure 500 {object} handlers.ErrorResponse "Provider unavailable"
// @Router /api/create-razorpay-order [post]
func NewCreateOrderHandler(svc OrderCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		account := middlewares.GetAccountFromContext(r.Context())
		if account == nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "User not found"})
			return
		}

		req := CreateOrderRequest{Amount: defaultOrderAmount, Currency: defaultOrderCurrency}
		// An empty body keeps the defaults.
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Amount <= 0 {
			req.Amount = defaultOrderAmount
		}
		if req.Currency == "" {
			req.Currency = defaultOrderCurrency
		}

		order, err := svc.CreateOrder(r.Context(), account, req.Amount, req.Currency)
		if err != nil {
			logger.Log.Errorw("failed to create payment order", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "Failed to create payment order"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CreateOrderResponse{
			Success:     true,
			OrderID:     order.OrderID,
			Amount:      order.Amount,
			Currency:    order.Currency,
			RazorpayKey: order.KeyID,
		})
	}
}
