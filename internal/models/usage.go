package models

// UsageStatus is a pure projection of an account's quota state.
type UsageStatus struct {
	UsageCount int    `json:"usage_count"` // Completed free-tier generations
	Limit      int    `json:"limit"`       // Configured free-trial limit
	Remaining  int    `json:"remaining"`   // max(0, limit - usage_count)
	IsPremium  bool   `json:"is_premium"`  // Entitlement flag
	IsLimited  bool   `json:"is_limited"`  // Non-premium and usage_count >= limit
	UserName   string `json:"user_name"`   // Display name, for the dashboard
	UserEmail  string `json:"user_email"`  // Account email, for the dashboard
}

// UsageStats holds aggregate counters across all accounts and generations.
type UsageStats struct {
	TotalUsers        int64 `json:"total_users" db:"total_users"`
	TotalGenerations  int64 `json:"total_generations" db:"total_generations"`
	PremiumUsers      int64 `json:"premium_users" db:"premium_users"`
	RecentUsers       int64 `json:"recent_users" db:"recent_users"`                   // Active within the last 24h
	RecentGenerations int64 `json:"recent_generations" db:"recent_generations"`       // Created within the last 24h
}
