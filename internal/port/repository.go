package port

import (
	"context"

	"github.com/google/uuid"

	"crediscope/internal/domain"
)

// CreditorRepository defines the contract for the creditor alias dictionary.
// Lookups are read-heavy; Insert and IncrementUsage are best-effort
// write-throughs and callers must tolerate their failure.
type CreditorRepository interface {
	// LookupByAlias returns the identity a normalized alias maps to, or
	// domain.ErrCreditorNotFound.
	LookupByAlias(ctx context.Context, alias string) (*domain.CreditorIdentity, error)
	// Insert persists a newly minted identity together with its aliases.
	Insert(ctx context.Context, identity *domain.CreditorIdentity) error
	// IncrementUsage bumps the usage counter on a resolved identity.
	IncrementUsage(ctx context.Context, standardizedName string) error
	// List returns the full dictionary for the in-memory fuzzy-match snapshot.
	List(ctx context.Context) ([]domain.CreditorIdentity, error)
}

// SuccessRateRepository serves persisted dispute success base rates.
type SuccessRateRepository interface {
	// LookupRate returns the base success rate for a dispute type, or
	// domain.ErrNotFound when no row exists.
	LookupRate(ctx context.Context, disputeType domain.NegativeItemType) (float64, error)
}

// AnalysisRepository persists completed pipeline runs.
type AnalysisRepository interface {
	Create(ctx context.Context, analysis *domain.CreditAnalysis) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CreditAnalysis, error)
	ListByUser(ctx context.Context, userID string, offset, limit int) ([]domain.CreditAnalysis, int, error)
}
