package service

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"crediscope/internal/domain"
	"crediscope/internal/extract"
	"crediscope/internal/letter"
	"crediscope/internal/port"
	"crediscope/internal/standardize"
	"crediscope/internal/strategy"
	"crediscope/internal/violation"
)

// AnalyzeInput is the DTO for a full pipeline run.
type AnalyzeInput struct {
	Text   string
	Method string
	UserID string
}

// AnalysisResult bundles the output of one pipeline run. AnalysisID is
// uuid.Nil when persistence was skipped or failed; the analysis itself is
// still returned.
type AnalysisResult struct {
	Report     *domain.ParsedCreditReport `json:"report"`
	Violations []domain.Violation         `json:"violations"`
	Strategy   *domain.DisputeStrategy    `json:"strategy"`
	Letter     string                     `json:"dispute_letter,omitempty"`
	AnalysisID uuid.UUID                  `json:"analysis_id,omitempty"`
}

// AnalysisService defines the credit-report processing contract.
type AnalysisService interface {
	// ParseReport runs extraction and standardization over raw report text.
	ParseReport(ctx context.Context, text, method string) *domain.ParsedCreditReport
	// GenerateStrategy builds a dispute strategy for an already parsed profile.
	GenerateStrategy(ctx context.Context, profile *domain.ParsedCreditReport) (*domain.DisputeStrategy, error)
	// AnalyzeReport runs the full pipeline: parse, standardize, detect
	// violations, build the strategy and letter, persist the result.
	AnalyzeReport(ctx context.Context, input *AnalyzeInput) (*AnalysisResult, error)
	GetAnalysis(ctx context.Context, id uuid.UUID) (*domain.CreditAnalysis, error)
	ListAnalyses(ctx context.Context, userID string, offset, limit int) ([]domain.CreditAnalysis, int, error)
}

type analysisService struct {
	extractor  *extract.Engine
	resolver   *standardize.Resolver
	detector   *violation.Detector
	strategies *strategy.Engine
	letters    *letter.Generator
	analyses   port.AnalysisRepository
	clock      func() time.Time
}

// NewAnalysisService creates the pipeline orchestrator. analyses may be nil,
// in which case results are not persisted.
func NewAnalysisService(
	extractor *extract.Engine,
	resolver *standardize.Resolver,
	detector *violation.Detector,
	strategies *strategy.Engine,
	letters *letter.Generator,
	analyses port.AnalysisRepository,
) AnalysisService {
	return &analysisService{
		extractor:  extractor,
		resolver:   resolver,
		detector:   detector,
		strategies: strategies,
		letters:    letters,
		analyses:   analyses,
		clock:      time.Now,
	}
}

func (s *analysisService) ParseReport(ctx context.Context, text, method string) *domain.ParsedCreditReport {
	report := s.extractor.Parse(text, method)
	s.standardize(ctx, report)
	return report
}

func (s *analysisService) GenerateStrategy(ctx context.Context, profile *domain.ParsedCreditReport) (*domain.DisputeStrategy, error) {
	return s.strategies.Generate(ctx, profile)
}

func (s *analysisService) AnalyzeReport(ctx context.Context, input *AnalyzeInput) (*AnalysisResult, error) {
	report := s.ParseReport(ctx, input.Text, input.Method)
	violations := s.detector.Detect(report)

	strat, err := s.strategies.Generate(ctx, report)
	if err != nil {
		return nil, err
	}

	disputeLetter, err := s.letters.Generate(report.PersonalInfo, strat)
	if err != nil {
		// A rendering failure costs the letter, not the analysis.
		log.Printf("service.analysisService: letter generation failed: %v", err)
		disputeLetter = ""
	}

	result := &AnalysisResult{
		Report:     report,
		Violations: violations,
		Strategy:   strat,
		Letter:     disputeLetter,
	}
	result.AnalysisID = s.persist(ctx, input, result)
	return result, nil
}

func (s *analysisService) GetAnalysis(ctx context.Context, id uuid.UUID) (*domain.CreditAnalysis, error) {
	return s.analyses.GetByID(ctx, id)
}

func (s *analysisService) ListAnalyses(ctx context.Context, userID string, offset, limit int) ([]domain.CreditAnalysis, int, error) {
	return s.analyses.ListByUser(ctx, userID, offset, limit)
}

// standardize resolves creditor names, validates payment histories, and
// recomputes per-account confidence in place. Resolution failures degrade
// confidence rather than aborting the pipeline.
func (s *analysisService) standardize(ctx context.Context, report *domain.ParsedCreditReport) {
	now := s.clock().UTC()

	for i := range report.Accounts {
		acct := &report.Accounts[i]

		match, err := s.resolver.Resolve(ctx, acct.CreditorName)
		if err == nil {
			acct.Standardized = &match.Identity
			acct.Confidence = blendConfidence(acct.Confidence, match.Confidence)
		}

		history, issues := standardize.ValidateHistory(acct.PaymentHistory, now)
		acct.PaymentHistory = history
		acct.HistoryIssues = issues

		perf := standardize.CalculatePerformance(history)
		acct.Performance = &perf
	}

	for i := range report.NegativeItems {
		item := &report.NegativeItems[i]
		match, err := s.resolver.Resolve(ctx, item.CreditorName)
		if err == nil && match.Method != standardize.MatchCreated {
			item.CreditorName = match.Identity.StandardizedName
		}
	}
}

// persist stores the completed run, best-effort: failures are logged and the
// caller still gets the in-memory result.
func (s *analysisService) persist(ctx context.Context, input *AnalyzeInput, result *AnalysisResult) uuid.UUID {
	if s.analyses == nil {
		return uuid.Nil
	}

	reportJSON, err := json.Marshal(result.Report)
	if err != nil {
		log.Printf("service.analysisService: marshaling report: %v", err)
		return uuid.Nil
	}
	violationsJSON, err := json.Marshal(result.Violations)
	if err != nil {
		log.Printf("service.analysisService: marshaling violations: %v", err)
		return uuid.Nil
	}
	strategyJSON, err := json.Marshal(result.Strategy)
	if err != nil {
		log.Printf("service.analysisService: marshaling strategy: %v", err)
		return uuid.Nil
	}

	analysis := &domain.CreditAnalysis{
		ID:          uuid.New(),
		UserID:      input.UserID,
		Method:      input.Method,
		Report:      reportJSON,
		Violations:  violationsJSON,
		Strategy:    strategyJSON,
		Letter:      result.Letter,
		ProcessedAt: s.clock().UTC(),
	}
	if err := s.analyses.Create(ctx, analysis); err != nil {
		log.Printf("service.analysisService: persisting analysis: %v", err)
		return uuid.Nil
	}
	return analysis.ID
}

// blendConfidence folds a 0-1 creditor-resolution confidence into a 0-100
// extraction confidence, weighted toward the extraction side.
func blendConfidence(extraction int, resolution float64) int {
	blended := int(math.Round(0.7*float64(extraction) + 0.3*resolution*100))
	if blended > 100 {
		blended = 100
	}
	if blended < 0 {
		blended = 0
	}
	return blended
}
