package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/easyjobs/resume-summary-api/internal/logger"
	"github.com/easyjobs/resume-summary-api/internal/models"
)

const statsCacheKey = "usage_stats:snapshot"

// StatsCacheRepository caches the usage-statistics snapshot in Redis
type StatsCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for the cached snapshot
}

// NewStatsCacheRepository creates a new repository instance with the given TTL
func NewStatsCacheRepository(client *redis.Client, expiration time.Duration) *StatsCacheRepository {
	return &StatsCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetUsageStats fetches the cached snapshot, if present and fresh
func (r *StatsCacheRepository) GetUsageStats(ctx context.Context) (*models.UsageStats, error) {
	val, err := r.client.Get(ctx, statsCacheKey).Result()
	if err != nil {
		logger.Log.Infow("cache read",
			"key", statsCacheKey,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("usage stats not found in cache")
		}
		return nil, err
	}

	var stats models.UsageStats
	if err := json.Unmarshal([]byte(val), &stats); err != nil {
		logger.Log.Errorw("cache entry unmarshal failed",
			"key", statsCacheKey,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow("cache read",
		"key", statsCacheKey,
		"error", nil,
	)

	return &stats, nil
}

// SetUsageStats caches a new snapshot with expiration
func (r *StatsCacheRepository) SetUsageStats(ctx context.Context, stats models.UsageStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, statsCacheKey, data, r.exp).Err()

	logger.Log.Infow("cache write",
		"key", statsCacheKey,
		"error", err,
	)

	return err
}
