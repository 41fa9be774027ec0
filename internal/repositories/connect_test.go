package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/easyjobs/resume-summary-api/internal/logger"
)

func TestConnect(t *testing.T) {
	logger.Initialize("debug")
	ctx := context.Background()

	t.Run("no DSNs configured", func(t *testing.T) {
		db, err := Connect(ctx, "sqlmock", nil, time.Second)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("all attempts fail returns last error", func(t *testing.T) {
		db, err := Connect(ctx, "sqlmock", []string{"unregistered_dsn_1", "unregistered_dsn_2"}, time.Second)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("falls through to the first working DSN", func(t *testing.T) {
		mockDB, _, err := sqlmock.NewWithDSN("working_dsn")
		assert.NoError(t, err)
		defer mockDB.Close()

		db, err := Connect(ctx, "sqlmock", []string{"broken_dsn", "working_dsn"}, time.Second)
		assert.NoError(t, err)
		assert.NotNil(t, db)
		db.Close()
	})
}
