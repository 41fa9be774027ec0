package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/easyjobs/resume-summary-api/internal/middlewares"
	"github.com/easyjobs/resume-summary-api/internal/models"
)

func TestCreateOrderHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockOrderCreator(ctrl)

	account := &models.AccountDB{AccountID: uuid.New(), Name: "Ana"}
	order := &models.Order{
		OrderID:  "order_123",
		Amount:   100000,
		Currency: "INR",
		KeyID:    "rzp_test_key",
	}

	doRequest := func(body []byte) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/create-razorpay-order", bytes.NewReader(body))
		req = req.WithContext(middlewares.SetAccountToContext(req.Context(), account))
		w := httptest.NewRecorder()
		NewCreateOrderHandler(mockSvc).ServeHTTP(w, req)
		return w
	}

	t.Run("defaults applied on empty body", func(t *testing.T) {
		mockSvc.EXPECT().
			CreateOrder(gomock.Any(), account, int64(100000), "INR").
			Return(order, nil)

		w := doRequest(nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp CreateOrderResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "order_123", resp.OrderID)
		assert.Equal(t, int64(100000), resp.Amount)
		assert.Equal(t, "INR", resp.Currency)
		assert.Equal(t, "rzp_test_key", resp.RazorpayKey)
	})

	t.Run("explicit amount and currency", func(t *testing.T) {
		mockSvc.EXPECT().
			CreateOrder(gomock.Any(), account, int64(50000), "USD").
			Return(&models.Order{OrderID: "order_456", Amount: 50000, Currency: "USD", KeyID: "rzp_test_key"}, nil)

		body, _ := json.Marshal(CreateOrderRequest{Amount: 50000, Currency: "USD"})
		w := doRequest(body)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("non-positive amount falls back to default", func(t *testing.T) {
		mockSvc.EXPECT().
			CreateOrder(gomock.Any(), account, int64(100000), "INR").
			Return(order, nil)

		body, _ := json.Marshal(CreateOrderRequest{Amount: -5})
		w := doRequest(body)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("provider error", func(t *testing.T) {
		mockSvc.EXPECT().
			CreateOrder(gomock.Any(), account, int64(100000), "INR").
			Return(nil, errors.New("provider down"))

		w := doRequest(nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Failed to create payment order", resp.Message)
	})

	t.Run("no account in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/create-razorpay-order", nil)
		w := httptest.NewRecorder()

		NewCreateOrderHandler(mockSvc).ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
