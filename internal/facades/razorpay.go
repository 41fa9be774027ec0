package facades

import (
	"context"
	"errors"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"

	"github.com/easyjobs/resume-summary-api/internal/logger"
	"github.com/easyjobs/resume-summary-api/internal/models"
)

// OrderCreator is the subset of the Razorpay client the facade relies on.
// The SDK returns decoded JSON as a generic map.
type OrderCreator interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

// RazorpayFacade wraps the payment provider's order API.
type RazorpayFacade struct {
	orders OrderCreator
	keyID  string
}

// NewRazorpayFacade creates a facade over a configured Razorpay client.
func NewRazorpayFacade(keyID, keySecret string) *RazorpayFacade {
	client := razorpay.NewClient(keyID, keySecret)
	return &RazorpayFacade{orders: client.Order, keyID: keyID}
}

// NewRazorpayFacadeWithOrders creates a facade with an injected order API, for tests.
func NewRazorpayFacadeWithOrders(orders OrderCreator, keyID string) *RazorpayFacade {
	return &RazorpayFacade{orders: orders, keyID: keyID}
}

// KeyID returns the public key the client needs to open checkout.
func (f *RazorpayFacade) KeyID() string {
	return f.keyID
}

// CreateOrder asks the provider to mint an order. No funds move at this step.
func (f *RazorpayFacade) CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]interface{}) (*models.Order, error) {
	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
		"notes":    notes,
	}

	resp, err := f.orders.Create(data, nil)
	if err != nil {
		logger.Log.Errorw("failed to create provider order", "error", err)
		return nil, err
	}

	orderID, ok := resp["id"].(string)
	if !ok || orderID == "" {
		return nil, errors.New("provider order response missing id")
	}

	order := &models.Order{
		OrderID:  orderID,
		Amount:   amount,
		Currency: currency,
		KeyID:    f.keyID,
	}
	if amt, ok := asInt64(resp["amount"]); ok {
		order.Amount = amt
	}
	if cur, ok := resp["currency"].(string); ok && cur != "" {
		order.Currency = cur
	}

	logger.Log.Infow("provider order created", "order_id", order.OrderID, "amount", order.Amount, "currency", order.Currency)
	return order, nil
}

// asInt64 normalizes the number types generic JSON decoding can produce.
func asInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	case string:
		var parsed int64
		if _, err := fmt.Sscan(n, &parsed); err == nil {
			return parsed, true
		}
	}
	return 0, false
}
