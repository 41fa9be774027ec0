package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/easyjobs/resume-summary-api/internal/models"
)

func TestStatsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockStatsProvider(ctrl)

	const adminKey = "admin_secret"

	doRequest := func(configuredKey, suppliedKey string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
		if suppliedKey != "" {
			req.Header.Set("X-Admin-Key", suppliedKey)
		}
		w := httptest.NewRecorder()
		NewStatsHandler(mockSvc, configuredKey).ServeHTTP(w, req)
		return w
	}

	t.Run("success", func(t *testing.T) {
		stats := &models.UsageStats{
			TotalUsers:        10,
			TotalGenerations:  25,
			PremiumUsers:      2,
			RecentUsers:       4,
			RecentGenerations: 7,
		}
		mockSvc.EXPECT().GetUsageStats(gomock.Any()).Return(stats, nil)

		w := doRequest(adminKey, adminKey)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp StatsResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, *stats, resp.Data)
	})

	t.Run("wrong key", func(t *testing.T) {
		w := doRequest(adminKey, "wrong")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing key", func(t *testing.T) {
		w := doRequest(adminKey, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("no key configured always unauthorized", func(t *testing.T) {
		w := doRequest("", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = doRequest("", "anything")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("stats error", func(t *testing.T) {
		mockSvc.EXPECT().GetUsageStats(gomock.Any()).Return(nil, errors.New("db error"))

		w := doRequest(adminKey, adminKey)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
