package services

import (
	"context"
	"time"

	"github.com/easyjobs/resume-summary-api/internal/logger"
	"github.com/easyjobs/resume-summary-api/internal/models"
)

// StatsReader aggregates counters from storage.
type StatsReader interface {
	GetUsageStats(ctx context.Context, since time.Time) (*models.UsageStats, error)
}

// StatsCache caches the aggregated snapshot.
type StatsCache interface {
	GetUsageStats(ctx context.Context) (*models.UsageStats, error)
	SetUsageStats(ctx context.Context, stats models.UsageStats) error
}

// StatsService serves the admin usage-statistics snapshot, cache-aside.
type StatsService struct {
	reader StatsReader
	cache  StatsCache
	window time.Duration // how far back "recent" counters look
}

// NewStatsService creates a new StatsService. cache may be nil; every call then
// hits storage.
func NewStatsService(reader StatsReader, cache StatsCache, window time.Duration) *StatsService {
	return &StatsService{reader: reader, cache: cache, window: window}
}

// GetUsageStats returns the aggregate counters, preferring the cached snapshot.
func (svc *StatsService) GetUsageStats(ctx context.Context) (*models.UsageStats, error) {
	if svc.cache != nil {
		if stats, err := svc.cache.GetUsageStats(ctx); err == nil {
			return stats, nil
		}
	}

	since := time.Now().Add(-svc.window)
	stats, err := svc.reader.GetUsageStats(ctx, since)
	if err != nil {
		logger.Log.Errorw("failed to aggregate usage stats", "error", err)
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.SetUsageStats(ctx, *stats); err != nil {
			logger.Log.Errorw("failed to cache usage stats", "error", err)
		}
	}

	return stats, nil
}
