package models

// AuditEvent is published to Kafka for every completed generation and verified payment.
type AuditEvent struct {
	EventID   string `json:"event_id"`             // Unique event identifier
	Timestamp int64  `json:"timestamp"`            // Unix timestamp (seconds)
	AccountID string `json:"account_id"`           // Account the event belongs to
	Operation string `json:"operation"`            // "generation" or "premium_upgrade"
	PaymentID string `json:"payment_id,omitempty"` // Provider payment id, for upgrades
}
