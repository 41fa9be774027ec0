package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/easyjobs/resume-summary-api/internal/logger"
	"github.com/easyjobs/resume-summary-api/internal/models"
)

// ErrTrialExceeded marks the expected quota-exhausted outcome, not a system fault.
var ErrTrialExceeded = errors.New("free trial exceeded")

// UsageWriter defines the atomic quota commit operation.
type UsageWriter interface {
	IncrementUsage(ctx context.Context, accountID uuid.UUID) (bool, error)
}

// QuotaService enforces the free-trial limit for non-premium accounts.
type QuotaService struct {
	writer UsageWriter
	limit  int
}

// NewQuotaService creates a QuotaService with the configured free-trial limit.
func NewQuotaService(writer UsageWriter, limit int) *QuotaService {
	return &QuotaService{writer: writer, limit: limit}
}

// Limit returns the configured free-trial limit.
func (svc *QuotaService) Limit() int {
	return svc.limit
}

// CheckAdmission decides admit/deny from the account's current state. Premium
// accounts are always admitted without evaluating the counter.
func (svc *QuotaService) CheckAdmission(account *models.AccountDB) error {
	if account.IsPremium {
		return nil
	}
	if account.UsageCount >= svc.limit {
		return ErrTrialExceeded
	}
	return nil
}

// CommitUsage atomically increments the account's usage counter. The caller invokes
// it exactly once, only after a generation has completed.
func (svc *QuotaService) CommitUsage(ctx context.Context, accountID uuid.UUID) (bool, error) {
	ok, err := svc.writer.IncrementUsage(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to commit usage", "account_id", accountID, "err", err)
		return false, err
	}
	return ok, nil
}

// Status returns the account's quota snapshot. Pure projection, no side effects.
func (svc *QuotaService) Status(account *models.AccountDB) models.UsageStatus {
	remaining := svc.limit - account.UsageCount
	if remaining < 0 {
		remaining = 0
	}
	return models.UsageStatus{
		UsageCount: account.UsageCount,
		Limit:      svc.limit,
		Remaining:  remaining,
		IsPremium:  account.IsPremium,
		IsLimited:  !account.IsPremium && account.UsageCount >= svc.limit,
		UserName:   account.Name,
		UserEmail:  account.Email,
	}
}
