package models

import (
	"time"

	"github.com/google/uuid"
)

// SummaryInput holds the six fields required to generate resume summaries.
type SummaryInput struct {
	CurrentJobTitle string `json:"current_job_title"`
	JobDescription  string `json:"job_description"`
	YearsExperience string `json:"years_experience"`
	Achievements    string `json:"achievements"`
	TechnicalSkills string `json:"technical_skills"`
	Education       string `json:"education"`
}

// GenerationDB represents an append-only record of a completed generation.
type GenerationDB struct {
	GenerationID uuid.UUID `json:"generation_id" db:"generation_id"` // Primary key
	AccountID    uuid.UUID `json:"account_id" db:"account_id"`       // Owning account
	Input        []byte    `json:"-" db:"input"`                     // JSON-encoded SummaryInput
	Summaries    []byte    `json:"-" db:"summaries"`                 // JSON-encoded [3]string
	CreatedAt    time.Time `json:"created_at" db:"created_at"`       // Immutable
}
