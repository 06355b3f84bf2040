package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ciic/internhub/internal/app/models"
	"github.com/ciic/internhub/internal/pkg/apperrors"
	"github.com/ciic/internhub/internal/pkg/dberrors"
)

// DomainRepository handles database operations for internship domains
type DomainRepository struct {
	db *pgxpool.Pool
}

// NewDomainRepository creates a new domain repository
func NewDomainRepository(db *pgxpool.Pool) *DomainRepository {
	return &DomainRepository{
		db: db,
	}
}

// Create inserts a new domain key/label pair
func (r *DomainRepository) Create(ctx context.Context, domain *models.InternshipDomain) error {
	query := `
		INSERT INTO internship_domains (key, label)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, domain.Key, domain.Label).Scan(&domain.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "internship_domains_key_key") {
			return apperrors.ErrDomainAlreadyExists
		}
		return fmt.Errorf("error creating domain: %w", err)
	}

	return nil
}

// GetAll retrieves all domains ordered by label
func (r *DomainRepository) GetAll(ctx context.Context) ([]*models.InternshipDomain, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, key, label FROM internship_domains ORDER BY label`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving domains: %w", err)
	}
	defer rows.Close()

	var domains []*models.InternshipDomain
	for rows.Next() {
		var domain models.InternshipDomain
		if err := rows.Scan(&domain.ID, &domain.Key, &domain.Label); err != nil {
			return nil, err
		}
		domains = append(domains, &domain)
	}

	return domains, rows.Err()
}

// KeyExists checks if a domain key is registered
func (r *DomainRepository) KeyExists(ctx context.Context, key string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM internship_domains WHERE key = $1)`, key).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking domain key: %w", err)
	}
	return exists, nil
}

// Delete removes a domain by key
func (r *DomainRepository) Delete(ctx context.Context, key string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM internship_domains WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("error deleting domain: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDomainNotFound
	}
	return nil
}
