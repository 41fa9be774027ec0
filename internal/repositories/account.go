package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/easyjobs/resume-summary-api/internal/logger"
	"github.com/easyjobs/resume-summary-api/internal/models"
)

// ErrEmailTaken is returned by Save when the email unique index rejects the insert.
var ErrEmailTaken = errors.New("email already taken")

type AccountReadRepository struct {
	db *sqlx.DB
}

func NewAccountReadRepository(db *sqlx.DB) *AccountReadRepository {
	return &AccountReadRepository{db: db}
}

// GetByEmail returns the account with the given email, or nil if none exists.
func (r *AccountReadRepository) GetByEmail(ctx context.Context, email string) (*models.AccountDB, error) {
	const query = `
		SELECT account_id, name, email, password_hash, usage_count, is_premium, upgraded_at, created_at, last_active
		FROM accounts
		WHERE email = $1
	`

	var account models.AccountDB
	err := r.db.GetContext(ctx, &account, query, email)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &account, nil
}

// GetByID returns the account with the given id, or nil if none exists.
func (r *AccountReadRepository) GetByID(ctx context.Context, accountID uuid.UUID) (*models.AccountDB, error) {
	const query = `
		SELECT account_id, name, email, password_hash, usage_count, is_premium, upgraded_at, created_at, last_active
		FROM accounts
		WHERE account_id = $1
	`

	var account models.AccountDB
	err := r.db.GetContext(ctx, &account, query, accountID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &account, nil
}

type AccountWriteRepository struct {
	db *sqlx.DB
}

func NewAccountWriteRepository(db *sqlx.DB) *AccountWriteRepository {
	return &AccountWriteRepository{db: db}
}

// Save inserts a new account in a single statement. The unique email index decides
// duplicates, so concurrent signups with the same email cannot both succeed.
func (r *AccountWriteRepository) Save(ctx context.Context, accountID uuid.UUID, name, email, passwordHash string) error {
	const query = `
		INSERT INTO accounts (account_id, name, email, password_hash, usage_count, is_premium, created_at, last_active)
		VALUES ($1, $2, $3, $4, 0, FALSE, NOW(), NOW())
		ON CONFLICT (email) DO NOTHING
	`
	args := []any{accountID, name, email, passwordHash}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID, name, email},
		"rows_affected", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrEmailTaken
	}
	return nil
}

// TouchLastActive refreshes last_active for the account.
func (r *AccountWriteRepository) TouchLastActive(ctx context.Context, accountID uuid.UUID) error {
	const query = `UPDATE accounts SET last_active = NOW() WHERE account_id = $1`

	_, err := r.db.ExecContext(ctx, query, accountID)

	logger.Log.Infow("query executed",
		"query", query,
		"args", []any{accountID},
		"error", err,
	)

	return err
}

// IncrementUsage atomically bumps usage_count and refreshes last_active in one
// statement. Returns false when the account no longer exists.
func (r *AccountWriteRepository) IncrementUsage(ctx context.Context, accountID uuid.UUID) (bool, error) {
	const query = `
		UPDATE accounts
		SET usage_count = usage_count + 1, last_active = NOW()
		WHERE account_id = $1
	`

	res, err := r.db.ExecContext(ctx, query, accountID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID},
		"rows_affected", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// SetPremium grants premium in one atomic statement. upgraded_at is preserved on
// repeat calls, so the transition is idempotent. Returns false when the account
// no longer exists.
func (r *AccountWriteRepository) SetPremium(ctx context.Context, accountID uuid.UUID) (bool, error) {
	const query = `
		UPDATE accounts
		SET is_premium = TRUE, upgraded_at = COALESCE(upgraded_at, NOW())
		WHERE account_id = $1
	`

	res, err := r.db.ExecContext(ctx, query, accountID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID},
		"rows_affected", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
