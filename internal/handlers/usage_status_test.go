package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/easyjobs/resume-summary-api/internal/middlewares"
	"github.com/easyjobs/resume-summary-api/internal/models"
)

func TestUsageStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockQuotaProjector(ctrl)

	account := &models.AccountDB{
		AccountID:  uuid.New(),
		Name:       "Ana",
		Email:      "ana@example.com",
		UsageCount: 2,
	}

	t.Run("success", func(t *testing.T) {
		status := models.UsageStatus{
			UsageCount: 2,
			Limit:      3,
			Remaining:  1,
			UserName:   "Ana",
			UserEmail:  "ana@example.com",
		}
		mockSvc.EXPECT().Status(account).Return(status)

		req := httptest.NewRequest(http.MethodGet, "/api/usage-status", nil)
		req = req.WithContext(middlewares.SetAccountToContext(req.Context(), account))
		w := httptest.NewRecorder()

		NewUsageStatusHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp UsageStatusResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, status, resp.Data)
	})

	t.Run("no account in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/usage-status", nil)
		w := httptest.NewRecorder()

		NewUsageStatusHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
