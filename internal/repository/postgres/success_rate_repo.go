package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"crediscope/internal/domain"
	"crediscope/internal/port"
)

type successRateRepo struct {
	db *sqlx.DB
}

// NewSuccessRateRepo creates a new PostgreSQL-backed SuccessRateRepository.
func NewSuccessRateRepo(db *sqlx.DB) port.SuccessRateRepository {
	return &successRateRepo{db: db}
}

func (r *successRateRepo) LookupRate(ctx context.Context, disputeType domain.NegativeItemType) (float64, error) {
	var rate float64
	err := r.db.GetContext(ctx, &rate,
		"SELECT rate FROM dispute_success_rates WHERE dispute_type = $1", string(disputeType))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("successRateRepo.LookupRate: %w", err)
	}
	return rate, nil
}
