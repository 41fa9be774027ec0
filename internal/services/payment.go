package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/easyjobs/resume-summary-api/internal/logger"
	"github.com/easyjobs/resume-summary-api/internal/models"
)

// Error variables
var (
	ErrPaymentNotConfigured = errors.New("payment system not configured")
	ErrMissingPaymentFields = errors.New("missing payment verification data")
	ErrSignatureMismatch    = errors.New("payment signature mismatch")
	// ErrEntitlementNotApplied marks the fatal case where the provider accepted
	// funds but the premium grant did not reach storage. Reconciled out-of-band.
	ErrEntitlementNotApplied = errors.New("entitlement write failed after verified payment")
)

// receiptMaxLen is the provider's hard cap on receipt strings.
const receiptMaxLen = 40

// PremiumWriter defines the one-way premium grant.
type PremiumWriter interface {
	SetPremium(ctx context.Context, accountID uuid.UUID) (bool, error)
}

// OrderFacade mints provider-side orders.
type OrderFacade interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]interface{}) (*models.Order, error)
	KeyID() string
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// PaymentService creates provider orders and verifies payment signatures.
type PaymentService struct {
	writer      PremiumWriter
	orders      OrderFacade
	keySecret   string
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewPaymentService creates a new PaymentService. orders may be nil when the
// provider is not configured; order creation and verification then fail cleanly.
func NewPaymentService(writer PremiumWriter, orders OrderFacade, keySecret string, kafkaWriter KafkaWriter) *PaymentService {
	return &PaymentService{
		writer:      writer,
		orders:      orders,
		keySecret:   keySecret,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
}

// CreateOrder mints a provider order for the premium subscription. No entitlement
// is granted at this step.
func (svc *PaymentService) CreateOrder(ctx context.Context, account *models.AccountDB, amount int64, currency string) (*models.Order, error) {
	if svc.orders == nil {
		return nil, ErrPaymentNotConfigured
	}

	receipt := buildReceipt(account.AccountID, svc.now())
	notes := map[string]interface{}{
		"account_id":        account.AccountID.String(),
		"name":              account.Name,
		"subscription_type": "premium_monthly",
	}

	order, err := svc.orders.CreateOrder(ctx, amount, currency, receipt, notes)
	if err != nil {
		logger.Log.Errorw("failed to create payment order", "account_id", account.AccountID, "err", err)
		return nil, err
	}

	return order, nil
}

// buildReceipt derives a short receipt from the account id and a truncated
// timestamp, hard-capped to the provider's length limit. Collisions between
// orders for long ids minted in the same second are a known, accepted gap.
func buildReceipt(accountID uuid.UUID, now time.Time) string {
	ts := strconv.FormatInt(now.Unix(), 10)
	if len(ts) > 8 {
		ts = ts[len(ts)-8:]
	}
	receipt := fmt.Sprintf("prem_%s_%s", accountID, ts)
	if len(receipt) > receiptMaxLen {
		receipt = receipt[:receiptMaxLen]
	}
	return receipt
}

// VerifyPayment checks the provider signature and grants premium exactly once.
// Re-verifying the same tuple is safe: the grant is idempotent.
func (svc *PaymentService) VerifyPayment(ctx context.Context, orderID, paymentID, signature string, account *models.AccountDB) error {
	if svc.keySecret == "" {
		return ErrPaymentNotConfigured
	}
	if orderID == "" || paymentID == "" || signature == "" {
		return ErrMissingPaymentFields
	}

	mac := hmac.New(sha256.New, []byte(svc.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		logger.Log.Warnw("payment signature verification failed",
			"account_id", account.AccountID,
			"order_id", orderID,
		)
		return ErrSignatureMismatch
	}

	ok, err := svc.writer.SetPremium(ctx, account.AccountID)
	if err != nil || !ok {
		// The provider has accepted funds for an account we could not upgrade.
		logger.Log.Errorw("RECONCILE: premium grant failed after verified payment",
			"account_id", account.AccountID,
			"order_id", orderID,
			"payment_id", paymentID,
			"err", err,
		)
		return ErrEntitlementNotApplied
	}

	logger.Log.Infow("account upgraded to premium",
		"account_id", account.AccountID,
		"payment_id", paymentID,
	)

	publishAudit(ctx, svc.kafkaWriter, models.AuditEvent{
		EventID:   uuid.NewString(),
		Timestamp: svc.now().Unix(),
		AccountID: account.AccountID.String(),
		Operation: "premium_upgrade",
		PaymentID: paymentID,
	})

	return nil
}

// UpgradePremium grants premium directly, without payment verification.
func (svc *PaymentService) UpgradePremium(ctx context.Context, accountID uuid.UUID) error {
	ok, err := svc.writer.SetPremium(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to upgrade account", "account_id", accountID, "err", err)
		return err
	}
	if !ok {
		return ErrAccountNotFound
	}
	return nil
}

// publishAudit publishes an audit event to Kafka, best-effort.
func publishAudit(ctx context.Context, w KafkaWriter, event models.AuditEvent) {
	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal audit event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.AccountID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish audit event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("audit event published", "event_id", event.EventID, "operation", event.Operation)
	}
}
