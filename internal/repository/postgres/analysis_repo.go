package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"crediscope/internal/domain"
	"crediscope/internal/port"
)

type analysisRepo struct {
	db *sqlx.DB
}

// NewAnalysisRepo creates a new PostgreSQL-backed AnalysisRepository.
func NewAnalysisRepo(db *sqlx.DB) port.AnalysisRepository {
	return &analysisRepo{db: db}
}

func (r *analysisRepo) Create(ctx context.Context, analysis *domain.CreditAnalysis) error {
	if analysis.ID == uuid.Nil {
		analysis.ID = uuid.New()
	}
	if analysis.ProcessedAt.IsZero() {
		analysis.ProcessedAt = time.Now().UTC()
	}

	query := `INSERT INTO credit_report_analyses (
		id, user_id, method, report, violations, strategy, letter, processed_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8
	)`

	_, err := r.db.ExecContext(ctx, query,
		analysis.ID, analysis.UserID, analysis.Method,
		analysis.Report, analysis.Violations, analysis.Strategy,
		analysis.Letter, analysis.ProcessedAt)
	if err != nil {
		return fmt.Errorf("analysisRepo.Create: %w", err)
	}
	return nil
}

func (r *analysisRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CreditAnalysis, error) {
	var analysis domain.CreditAnalysis
	err := r.db.GetContext(ctx, &analysis,
		"SELECT * FROM credit_report_analyses WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAnalysisNotFound
		}
		return nil, fmt.Errorf("analysisRepo.GetByID: %w", err)
	}
	return &analysis, nil
}

func (r *analysisRepo) ListByUser(ctx context.Context, userID string, offset, limit int) ([]domain.CreditAnalysis, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM credit_report_analyses WHERE user_id = $1", userID)
	if err != nil {
		return nil, 0, fmt.Errorf("analysisRepo.ListByUser count: %w", err)
	}

	var analyses []domain.CreditAnalysis
	err = r.db.SelectContext(ctx, &analyses,
		`SELECT * FROM credit_report_analyses WHERE user_id = $1
		 ORDER BY processed_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("analysisRepo.ListByUser: %w", err)
	}
	return analyses, total, nil
}
