package facades

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeOrderAPI stands in for the SDK's order API.
type fakeOrderAPI struct {
	lastData map[string]interface{}
	resp     map[string]interface{}
	err      error
}

func (f *fakeOrderAPI) Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error) {
	f.lastData = data
	return f.resp, f.err
}

func TestRazorpayFacade_CreateOrder(t *testing.T) {
	ctx := context.Background()
	notes := map[string]interface{}{"account_id": "abc"}

	t.Run("successful order", func(t *testing.T) {
		api := &fakeOrderAPI{resp: map[string]interface{}{
			"id":       "order_123",
			"amount":   float64(100000),
			"currency": "INR",
		}}
		facade := NewRazorpayFacadeWithOrders(api, "rzp_test_key")

		order, err := facade.CreateOrder(ctx, 100000, "INR", "prem_abc_12345678", notes)
		assert.NoError(t, err)
		assert.Equal(t, "order_123", order.OrderID)
		assert.Equal(t, int64(100000), order.Amount)
		assert.Equal(t, "INR", order.Currency)
		assert.Equal(t, "rzp_test_key", order.KeyID)

		assert.Equal(t, int64(100000), api.lastData["amount"])
		assert.Equal(t, "INR", api.lastData["currency"])
		assert.Equal(t, "prem_abc_12345678", api.lastData["receipt"])
		assert.Equal(t, notes, api.lastData["notes"])
	})

	t.Run("request values used when response omits them", func(t *testing.T) {
		api := &fakeOrderAPI{resp: map[string]interface{}{"id": "order_456"}}
		facade := NewRazorpayFacadeWithOrders(api, "rzp_test_key")

		order, err := facade.CreateOrder(ctx, 50000, "USD", "rcpt", nil)
		assert.NoError(t, err)
		assert.Equal(t, int64(50000), order.Amount)
		assert.Equal(t, "USD", order.Currency)
	})

	t.Run("provider error", func(t *testing.T) {
		api := &fakeOrderAPI{err: errors.New("provider down")}
		facade := NewRazorpayFacadeWithOrders(api, "rzp_test_key")

		order, err := facade.CreateOrder(ctx, 100000, "INR", "rcpt", nil)
		assert.Error(t, err)
		assert.Nil(t, order)
	})

	t.Run("response missing id", func(t *testing.T) {
		api := &fakeOrderAPI{resp: map[string]interface{}{"amount": float64(100000)}}
		facade := NewRazorpayFacadeWithOrders(api, "rzp_test_key")

		order, err := facade.CreateOrder(ctx, 100000, "INR", "rcpt", nil)
		assert.Error(t, err)
		assert.Nil(t, order)
	})

	t.Run("KeyID", func(t *testing.T) {
		facade := NewRazorpayFacadeWithOrders(&fakeOrderAPI{}, "rzp_test_key")
		assert.Equal(t, "rzp_test_key", facade.KeyID())
	})
}
