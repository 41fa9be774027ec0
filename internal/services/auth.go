package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/easyjobs/resume-summary-api/internal/logger"
	"github.com/easyjobs/resume-summary-api/internal/models"
	"github.com/easyjobs/resume-summary-api/internal/repositories"
)

// Error variables
var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingField       = errors.New("missing required field")
	ErrAccountNotFound    = errors.New("account not found")
)

// AccountReader defines read-only operations for accounts.
type AccountReader interface {
	GetByEmail(ctx context.Context, email string) (*models.AccountDB, error)
	GetByID(ctx context.Context, accountID uuid.UUID) (*models.AccountDB, error)
}

// AccountWriter defines write operations for accounts.
type AccountWriter interface {
	Save(ctx context.Context, accountID uuid.UUID, name, email, passwordHash string) error
	TouchLastActive(ctx context.Context, accountID uuid.UUID) error
}

// TokenGenerator defines an interface for minting session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, accountID uuid.UUID) (string, error)
}

// AuthService handles registration, login, and session resolution.
type AuthService struct {
	reader AccountReader
	writer AccountWriter
	tokens TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader AccountReader, writer AccountWriter, tokens TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		tokens: tokens,
	}
}

// Register creates a new account and returns it together with a session token.
// The insert is all-or-nothing; the unique email index is the authority on duplicates.
func (svc *AuthService) Register(ctx context.Context, name, email, password string) (*models.AccountDB, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", ErrMissingField
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	accountID := uuid.New()
	if err := svc.writer.Save(ctx, accountID, name, email, string(hashedPassword)); err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			logger.Log.Warnw("account already exists", "email", email)
			return nil, "", ErrEmailAlreadyExists
		}
		logger.Log.Errorw("failed to save account", "err", err)
		return nil, "", err
	}

	account, err := svc.reader.GetByID(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to read account after insert", "err", err)
		return nil, "", err
	}

	token, err := svc.tokens.Generate(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return nil, "", err
	}

	account.PasswordHash = ""
	return account, token, nil
}

// Login authenticates an account and returns it with a session token.
// A missing account and a failed hash comparison produce the same error, so the
// response never reveals whether an email is registered.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.AccountDB, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrMissingField
	}

	account, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get account", "err", err)
		return nil, "", err
	}
	if account == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		logger.Log.Warnw("invalid credentials", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	if err := svc.writer.TouchLastActive(ctx, account.AccountID); err != nil {
		logger.Log.Errorw("failed to touch last_active", "err", err)
		return nil, "", err
	}

	token, err := svc.tokens.Generate(ctx, account.AccountID)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return nil, "", err
	}

	account.PasswordHash = ""
	return account, token, nil
}

// ResolveSession maps a session account id to a live account. A nil result with a
// nil error means the account no longer exists and the session must be discarded.
func (svc *AuthService) ResolveSession(ctx context.Context, accountID uuid.UUID) (*models.AccountDB, error) {
	account, err := svc.reader.GetByID(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to resolve session", "account_id", accountID, "err", err)
		return nil, err
	}
	if account == nil {
		logger.Log.Warnw("session references missing account", "account_id", accountID)
		return nil, nil
	}

	account.PasswordHash = ""
	return account, nil
}
