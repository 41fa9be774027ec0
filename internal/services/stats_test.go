package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/easyjobs/resume-summary-api/internal/models"
	"github.com/easyjobs/resume-summary-api/internal/services"
)

func TestStatsService_GetUsageStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := &models.UsageStats{
		TotalUsers:        10,
		TotalGenerations:  25,
		PremiumUsers:      2,
		RecentUsers:       4,
		RecentGenerations: 7,
	}

	t.Run("cache hit", func(t *testing.T) {
		mockReader := services.NewMockStatsReader(ctrl)
		mockCache := services.NewMockStatsCache(ctrl)
		svc := services.NewStatsService(mockReader, mockCache, 24*time.Hour)

		mockCache.EXPECT().GetUsageStats(gomock.Any()).Return(stats, nil)

		got, err := svc.GetUsageStats(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, stats, got)
	})

	t.Run("cache miss falls back to storage and repopulates", func(t *testing.T) {
		mockReader := services.NewMockStatsReader(ctrl)
		mockCache := services.NewMockStatsCache(ctrl)
		svc := services.NewStatsService(mockReader, mockCache, 24*time.Hour)

		mockCache.EXPECT().GetUsageStats(gomock.Any()).Return(nil, errors.New("not found"))
		mockReader.EXPECT().
			GetUsageStats(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, since time.Time) (*models.UsageStats, error) {
				assert.WithinDuration(t, time.Now().Add(-24*time.Hour), since, time.Minute)
				return stats, nil
			})
		mockCache.EXPECT().SetUsageStats(gomock.Any(), *stats).Return(nil)

		got, err := svc.GetUsageStats(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, stats, got)
	})

	t.Run("cache write failure is non-fatal", func(t *testing.T) {
		mockReader := services.NewMockStatsReader(ctrl)
		mockCache := services.NewMockStatsCache(ctrl)
		svc := services.NewStatsService(mockReader, mockCache, 24*time.Hour)

		mockCache.EXPECT().GetUsageStats(gomock.Any()).Return(nil, errors.New("not found"))
		mockReader.EXPECT().GetUsageStats(gomock.Any(), gomock.Any()).Return(stats, nil)
		mockCache.EXPECT().SetUsageStats(gomock.Any(), *stats).Return(errors.New("redis down"))

		got, err := svc.GetUsageStats(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, stats, got)
	})

	t.Run("no cache configured", func(t *testing.T) {
		mockReader := services.NewMockStatsReader(ctrl)
		svc := services.NewStatsService(mockReader, nil, 24*time.Hour)

		mockReader.EXPECT().GetUsageStats(gomock.Any(), gomock.Any()).Return(stats, nil)

		got, err := svc.GetUsageStats(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, stats, got)
	})

	t.Run("storage error", func(t *testing.T) {
		mockReader := services.NewMockStatsReader(ctrl)
		svc := services.NewStatsService(mockReader, nil, 24*time.Hour)

		mockReader.EXPECT().GetUsageStats(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))

		got, err := svc.GetUsageStats(context.Background())
		assert.Error(t, err)
		assert.Nil(t, got)
	})
}
