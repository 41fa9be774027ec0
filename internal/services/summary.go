package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/easyjobs/resume-summary-api/internal/logger"
	"github.com/easyjobs/resume-summary-api/internal/models"
)

// MissingInputFieldError reports which required generation field was absent.
type MissingInputFieldError struct {
	Field string
}

func (e *MissingInputFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// SummaryGenerator is the remote generation strategy.
type SummaryGenerator interface {
	GenerateSummaries(ctx context.Context, input models.SummaryInput) ([]string, error)
}

// AdmissionDecider enforces the free-trial quota around a generation.
type AdmissionDecider interface {
	CheckAdmission(account *models.AccountDB) error
	CommitUsage(ctx context.Context, accountID uuid.UUID) (bool, error)
	Status(account *models.AccountDB) models.UsageStatus
}

// GenerationWriter appends completed generation records.
type GenerationWriter interface {
	Save(ctx context.Context, gen models.GenerationDB) error
}

// SummaryService produces three resume-summary variants per request.
type SummaryService struct {
	remote      SummaryGenerator
	quota       AdmissionDecider
	reader      AccountReader
	generations GenerationWriter
	kafkaWriter KafkaWriter
}

// NewSummaryService creates a new SummaryService. remote may be nil; every request
// then uses the template strategy.
func NewSummaryService(
	remote SummaryGenerator,
	quota AdmissionDecider,
	reader AccountReader,
	generations GenerationWriter,
	kafkaWriter KafkaWriter,
) *SummaryService {
	return &SummaryService{
		remote:      remote,
		quota:       quota,
		reader:      reader,
		generations: generations,
		kafkaWriter: kafkaWriter,
	}
}

// Generate validates the input, checks the quota, produces three normalized
// variants, and on success commits the quota and appends the generation record for
// non-premium accounts. Returns the updated quota snapshot.
// Remote-service failures never surface to the caller; they select the template
// strategy instead.
func (svc *SummaryService) Generate(ctx context.Context, account *models.AccountDB, input models.SummaryInput) ([]string, models.UsageStatus, error) {
	if err := validateInput(input); err != nil {
		return nil, models.UsageStatus{}, err
	}

	if err := svc.quota.CheckAdmission(account); err != nil {
		return nil, svc.quota.Status(account), err
	}

	summaries := svc.produceSummaries(ctx, input)

	if !account.IsPremium {
		committed, err := svc.quota.CommitUsage(ctx, account.AccountID)
		if err != nil {
			return nil, svc.quota.Status(account), err
		}
		if !committed {
			return nil, svc.quota.Status(account), ErrAccountNotFound
		}

		svc.logGeneration(ctx, account.AccountID, input, summaries)

		if updated, err := svc.reader.GetByID(ctx, account.AccountID); err == nil && updated != nil {
			account = updated
		} else {
			// Commit already happened; reflect it locally rather than failing the request.
			account.UsageCount++
		}
	}

	return summaries, svc.quota.Status(account), nil
}

// validateInput rejects the request before any network call, naming the first
// missing field.
func validateInput(input models.SummaryInput) error {
	fields := []struct {
		name  string
		value string
	}{
		{"current_job_title", input.CurrentJobTitle},
		{"job_description", input.JobDescription},
		{"years_experience", input.YearsExperience},
		{"achievements", input.Achievements},
		{"technical_skills", input.TechnicalSkills},
		{"education", input.Education},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return &MissingInputFieldError{Field: f.name}
		}
	}
	return nil
}

// produceSummaries runs the remote strategy and falls back to templates on any
// failure, then normalizes every variant.
func (svc *SummaryService) produceSummaries(ctx context.Context, input models.SummaryInput) []string {
	var summaries []string

	if svc.remote != nil {
		remote, err := svc.remote.GenerateSummaries(ctx, input)
		if err != nil {
			logger.Log.Warnw("remote generation failed, using template strategy", "error", err)
		} else {
			summaries = remote
		}
	}

	if summaries == nil {
		summaries = templateSummaries(input)
	}

	out := make([]string, len(summaries))
	for i, s := range summaries {
		out[i] = normalizeSummary(s)
	}
	return out
}

// templateSummaries deterministically composes three stylistically distinct
// variants from the input fields.
func templateSummaries(input models.SummaryInput) []string {
	title := input.CurrentJobTitle
	desc := strings.ToLower(input.JobDescription)
	years := input.YearsExperience
	achievements := strings.ToLower(input.Achievements)
	skills := input.TechnicalSkills
	education := input.Education

	v1 := fmt.Sprintf(
		"Detail-oriented %s with %s years of experience in %s. Skilled in %s, with a track record of %s. Proven ability to deliver results through strategic analysis and implementation, supported by %s.",
		title, years, desc, skills, achievements, education,
	)
	v2 := fmt.Sprintf(
		"Accomplished %s possessing %s years of expertise in %s. Proficient in %s, contributing to %s. Holds %s, demonstrating a strong foundation in professional excellence and innovative problem-solving.",
		title, years, desc, skills, achievements, education,
	)
	v3 := fmt.Sprintf(
		"Results-driven %s with %s years of experience leveraging %s. Expert in using %s for comprehensive solutions, leading to %s. %s graduate, committed to enabling success through strategic initiatives and data-driven strategies.",
		title, years, desc, skills, achievements, education,
	)

	return []string{v1, v2, v3}
}

// normalizeSummary collapses whitespace runs, capitalizes a lowercase first letter,
// and guarantees a terminal period.
func normalizeSummary(summary string) string {
	summary = strings.Join(strings.Fields(summary), " ")
	if summary == "" {
		return summary
	}

	first, size := utf8.DecodeRuneInString(summary)
	if unicode.IsLower(first) {
		summary = string(unicode.ToUpper(first)) + summary[size:]
	}

	if !strings.HasSuffix(summary, ".") {
		summary += "."
	}
	return summary
}

// logGeneration appends the generation record and publishes the audit event.
// Both are best-effort: the summaries are already produced and the quota committed.
func (svc *SummaryService) logGeneration(ctx context.Context, accountID uuid.UUID, input models.SummaryInput, summaries []string) {
	inputJSON, err := json.Marshal(input)
	if err != nil {
		logger.Log.Errorw("failed to marshal generation input", "error", err)
		return
	}
	summariesJSON, err := json.Marshal(summaries)
	if err != nil {
		logger.Log.Errorw("failed to marshal summaries", "error", err)
		return
	}

	gen := models.GenerationDB{
		GenerationID: uuid.New(),
		AccountID:    accountID,
		Input:        inputJSON,
		Summaries:    summariesJSON,
	}
	if err := svc.generations.Save(ctx, gen); err != nil {
		logger.Log.Errorw("failed to save generation record", "generation_id", gen.GenerationID, "error", err)
	}

	publishAudit(ctx, svc.kafkaWriter, models.AuditEvent{
		EventID:   gen.GenerationID.String(),
		Timestamp: time.Now().Unix(),
		AccountID: accountID.String(),
		Operation: "generation",
	})
}
