package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"crediscope/internal/domain"
	"crediscope/internal/port"
)

type creditorRepo struct {
	db *sqlx.DB
}

// NewCreditorRepo creates a new PostgreSQL-backed CreditorRepository.
func NewCreditorRepo(db *sqlx.DB) port.CreditorRepository {
	return &creditorRepo{db: db}
}

func (r *creditorRepo) LookupByAlias(ctx context.Context, alias string) (*domain.CreditorIdentity, error) {
	var identity domain.CreditorIdentity
	err := r.db.GetContext(ctx, &identity,
		`SELECT c.* FROM creditors c
		 JOIN creditor_aliases a ON a.standardized_name = c.standardized_name
		 WHERE a.alias = $1`, alias)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCreditorNotFound
		}
		return nil, fmt.Errorf("creditorRepo.LookupByAlias: %w", err)
	}

	if err := r.loadAliases(ctx, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

func (r *creditorRepo) Insert(ctx context.Context, identity *domain.CreditorIdentity) error {
	now := time.Now().UTC()
	if identity.CreatedAt.IsZero() {
		identity.CreatedAt = now
	}
	identity.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("creditorRepo.Insert begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO creditors (standardized_name, registry_code, industry, usage_count, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (standardized_name) DO NOTHING`,
		identity.StandardizedName, identity.RegistryCode, identity.Industry,
		identity.UsageCount, identity.CreatedAt, identity.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrCreditorAlreadyExists
		}
		return fmt.Errorf("creditorRepo.Insert: %w", err)
	}

	for _, alias := range identity.Aliases {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO creditor_aliases (alias, standardized_name)
			 VALUES ($1, $2) ON CONFLICT (alias) DO NOTHING`,
			alias, identity.StandardizedName)
		if err != nil {
			return fmt.Errorf("creditorRepo.Insert alias: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("creditorRepo.Insert commit: %w", err)
	}
	return nil
}

func (r *creditorRepo) IncrementUsage(ctx context.Context, standardizedName string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE creditors SET usage_count = usage_count + 1, updated_at = $2
		 WHERE standardized_name = $1`,
		standardizedName, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("creditorRepo.IncrementUsage: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrCreditorNotFound
	}
	return nil
}

func (r *creditorRepo) List(ctx context.Context) ([]domain.CreditorIdentity, error) {
	var identities []domain.CreditorIdentity
	err := r.db.SelectContext(ctx, &identities,
		"SELECT * FROM creditors ORDER BY usage_count DESC, standardized_name")
	if err != nil {
		return nil, fmt.Errorf("creditorRepo.List: %w", err)
	}

	type aliasRow struct {
		Alias            string `db:"alias"`
		StandardizedName string `db:"standardized_name"`
	}
	var rows []aliasRow
	err = r.db.SelectContext(ctx, &rows, "SELECT alias, standardized_name FROM creditor_aliases")
	if err != nil {
		return nil, fmt.Errorf("creditorRepo.List aliases: %w", err)
	}

	byName := make(map[string][]string, len(identities))
	for _, row := range rows {
		byName[row.StandardizedName] = append(byName[row.StandardizedName], row.Alias)
	}
	for i := range identities {
		identities[i].Aliases = byName[identities[i].StandardizedName]
	}
	return identities, nil
}

func (r *creditorRepo) loadAliases(ctx context.Context, identity *domain.CreditorIdentity) error {
	err := r.db.SelectContext(ctx, &identity.Aliases,
		"SELECT alias FROM creditor_aliases WHERE standardized_name = $1 ORDER BY alias",
		identity.StandardizedName)
	if err != nil {
		return fmt.Errorf("creditorRepo.loadAliases: %w", err)
	}
	return nil
}
