package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/easyjobs/resume-summary-api/internal/logger"
)

// Connect tries each DSN in order with a per-attempt timeout and returns the first
// connection that answers a ping. Deployment environments differ in TLS and pooling
// parameters, so the caller passes the candidate DSNs as an ordered list.
func Connect(ctx context.Context, driver string, dsns []string, attemptTimeout time.Duration) (*sqlx.DB, error) {
	if len(dsns) == 0 {
		return nil, errors.New("no database DSNs configured")
	}

	var lastErr error
	for i, dsn := range dsns {
		attemptCtx, cancel := context.WithTimeout(ctx, attemptTimeout)
		db, err := sqlx.ConnectContext(attemptCtx, driver, dsn)
		cancel()

		if err != nil {
			logger.Log.Warnw("database connection attempt failed",
				"attempt", i+1,
				"attempts_total", len(dsns),
				"error", err,
			)
			lastErr = err
			continue
		}

		logger.Log.Infow("database connected", "attempt", i+1)
		return db, nil
	}

	return nil, lastErr
}
