package models

// Order represents a provider-side payment order before verification.
type Order struct {
	OrderID  string `json:"order_id"` // Provider-issued order id
	Amount   int64  `json:"amount"`   // Amount in the currency's smallest unit
	Currency string `json:"currency"` // ISO currency code
	KeyID    string `json:"key_id"`   // Public key the client needs to open checkout
}
