package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/easyjobs/resume-summary-api/internal/logger"
	"github.com/easyjobs/resume-summary-api/internal/models"
)

type GenerationWriteRepository struct {
	db *sqlx.DB
}

func NewGenerationWriteRepository(db *sqlx.DB) *GenerationWriteRepository {
	return &GenerationWriteRepository{db: db}
}

// Save appends a generation record. Records are never updated or deleted.
func (r *GenerationWriteRepository) Save(ctx context.Context, gen models.GenerationDB) error {
	const query = `
		INSERT INTO generations (generation_id, account_id, input, summaries, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	args := []any{gen.GenerationID, gen.AccountID, gen.Input, gen.Summaries}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{gen.GenerationID, gen.AccountID},
		"error", err,
	)

	return err
}

type StatsReadRepository struct {
	db *sqlx.DB
}

func NewStatsReadRepository(db *sqlx.DB) *StatsReadRepository {
	return &StatsReadRepository{db: db}
}

// GetUsageStats aggregates account and generation counters, with "recent" counters
// filtered by the given threshold.
func (r *StatsReadRepository) GetUsageStats(ctx context.Context, since time.Time) (*models.UsageStats, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM accounts)                               AS total_users,
			(SELECT COUNT(*) FROM generations)                            AS total_generations,
			(SELECT COUNT(*) FROM accounts WHERE is_premium)              AS premium_users,
			(SELECT COUNT(*) FROM accounts WHERE last_active >= $1)       AS recent_users,
			(SELECT COUNT(*) FROM generations WHERE created_at >= $1)     AS recent_generations
	`

	var stats models.UsageStats
	err := r.db.GetContext(ctx, &stats, query, since)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{since},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &stats, nil
}
