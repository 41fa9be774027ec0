package repositories

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/easyjobs/resume-summary-api/internal/logger"
)

func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	logger.Initialize("debug")
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, err := container.Host(ctx)
	assert.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	assert.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())
	db, err := sqlx.Connect("pgx", dsn)
	assert.NoError(t, err)

	migrations := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
			account_id UUID PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			email VARCHAR(100) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			usage_count INTEGER NOT NULL DEFAULT 0,
			is_premium BOOLEAN NOT NULL DEFAULT FALSE,
			upgraded_at TIMESTAMP,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			last_active TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS generations (
			generation_id UUID PRIMARY KEY,
			account_id UUID NOT NULL REFERENCES accounts(account_id) ON DELETE CASCADE,
			input JSONB NOT NULL,
			summaries JSONB NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
	}

	for _, m := range migrations {
		_, err = db.Exec(m)
		assert.NoError(t, err)
	}

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

func TestAccountRepositories(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()
	readRepo := NewAccountReadRepository(db)
	writeRepo := NewAccountWriteRepository(db)

	aliceID := uuid.New()

	t.Run("Save and GetByEmail", func(t *testing.T) {
		err := writeRepo.Save(ctx, aliceID, "Alice", "alice@example.com", "hash1")
		assert.NoError(t, err)

		account, err := readRepo.GetByEmail(ctx, "alice@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, account)
		assert.Equal(t, aliceID, account.AccountID)
		assert.Equal(t, "Alice", account.Name)
		assert.Equal(t, "hash1", account.PasswordHash)
		assert.Equal(t, 0, account.UsageCount)
		assert.False(t, account.IsPremium)
		assert.Nil(t, account.UpgradedAt)
	})

	t.Run("Save duplicate email", func(t *testing.T) {
		err := writeRepo.Save(ctx, uuid.New(), "Impostor", "alice@example.com", "hash2")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("GetByEmail unknown returns nil", func(t *testing.T) {
		account, err := readRepo.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, account)
	})

	t.Run("GetByID", func(t *testing.T) {
		account, err := readRepo.GetByID(ctx, aliceID)
		assert.NoError(t, err)
		assert.NotNil(t, account)
		assert.Equal(t, "alice@example.com", account.Email)

		account, err = readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, account)
	})

	t.Run("IncrementUsage", func(t *testing.T) {
		ok, err := writeRepo.IncrementUsage(ctx, aliceID)
		assert.NoError(t, err)
		assert.True(t, ok)

		account, err := readRepo.GetByID(ctx, aliceID)
		assert.NoError(t, err)
		assert.Equal(t, 1, account.UsageCount)

		ok, err = writeRepo.IncrementUsage(ctx, uuid.New())
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("IncrementUsage concurrent commits all land", func(t *testing.T) {
		bobID := uuid.New()
		assert.NoError(t, writeRepo.Save(ctx, bobID, "Bob", "bob@example.com", "hash"))

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := writeRepo.IncrementUsage(ctx, bobID)
				assert.NoError(t, err)
				assert.True(t, ok)
			}()
		}
		wg.Wait()

		account, err := readRepo.GetByID(ctx, bobID)
		assert.NoError(t, err)
		assert.Equal(t, 10, account.UsageCount)
	})

	t.Run("SetPremium is idempotent", func(t *testing.T) {
		ok, err := writeRepo.SetPremium(ctx, aliceID)
		assert.NoError(t, err)
		assert.True(t, ok)

		account, err := readRepo.GetByID(ctx, aliceID)
		assert.NoError(t, err)
		assert.True(t, account.IsPremium)
		assert.NotNil(t, account.UpgradedAt)
		firstUpgrade := *account.UpgradedAt

		ok, err = writeRepo.SetPremium(ctx, aliceID)
		assert.NoError(t, err)
		assert.True(t, ok)

		account, err = readRepo.GetByID(ctx, aliceID)
		assert.NoError(t, err)
		assert.Equal(t, firstUpgrade, *account.UpgradedAt)

		ok, err = writeRepo.SetPremium(ctx, uuid.New())
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("TouchLastActive", func(t *testing.T) {
		before, err := readRepo.GetByID(ctx, aliceID)
		assert.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
		assert.NoError(t, writeRepo.TouchLastActive(ctx, aliceID))

		after, err := readRepo.GetByID(ctx, aliceID)
		assert.NoError(t, err)
		assert.True(t, after.LastActive.After(before.LastActive) || after.LastActive.Equal(before.LastActive))
	})
}
