package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ciic/internhub/internal/app/models"
	"github.com/ciic/internhub/internal/pkg/apperrors"
	"github.com/ciic/internhub/internal/pkg/dberrors"
)

// StartupRepository handles database operations for startup profiles
type StartupRepository struct {
	db *pgxpool.Pool
}

// NewStartupRepository creates a new startup repository
func NewStartupRepository(db *pgxpool.Pool) *StartupRepository {
	return &StartupRepository{
		db: db,
	}
}

const startupColumns = `
	id, user_id, company_name, founder_name, email, phone, description,
	website, location, year_founded, logo_url, linkedin_url, created_at
`

func scanStartup(row pgx.Row) (*models.Startup, error) {
	var startup models.Startup
	err := row.Scan(
		&startup.ID,
		&startup.UserID,
		&startup.CompanyName,
		&startup.FounderName,
		&startup.Email,
		&startup.Phone,
		&startup.Description,
		&startup.Website,
		&startup.Location,
		&startup.YearFounded,
		&startup.LogoURL,
		&startup.LinkedInURL,
		&startup.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &startup, nil
}

// Create inserts a new startup profile
func (r *StartupRepository) Create(ctx context.Context, startup *models.Startup) error {
	query := `
		INSERT INTO startups (user_id, company_name, founder_name, email, phone,
			description, website, location, year_founded, logo_url, linkedin_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		startup.UserID, startup.CompanyName, startup.FounderName, startup.Email,
		startup.Phone, startup.Description, startup.Website, startup.Location,
		startup.YearFounded, startup.LogoURL, startup.LinkedInURL,
	).Scan(&startup.ID, &startup.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "startups_company_name_key") {
			return apperrors.ErrStartupAlreadyExists
		}
		return fmt.Errorf("error creating startup: %w", err)
	}

	return nil
}

// GetByID retrieves a startup by ID
func (r *StartupRepository) GetByID(ctx context.Context, id int64) (*models.Startup, error) {
	query := `SELECT ` + startupColumns + ` FROM startups WHERE id = $1`

	startup, err := scanStartup(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStartupNotFound
		}
		return nil, fmt.Errorf("error retrieving startup: %w", err)
	}

	return startup, nil
}

// GetByUserID retrieves a startup profile by the owning user account
func (r *StartupRepository) GetByUserID(ctx context.Context, userID int64) (*models.Startup, error) {
	query := `SELECT ` + startupColumns + ` FROM startups WHERE user_id = $1`

	startup, err := scanStartup(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStartupNotFound
		}
		return nil, fmt.Errorf("error retrieving startup by user: %w", err)
	}

	return startup, nil
}

// GetAll retrieves all startups ordered by company name
func (r *StartupRepository) GetAll(ctx context.Context) ([]*models.Startup, error) {
	query := `SELECT ` + startupColumns + ` FROM startups ORDER BY company_name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving startups: %w", err)
	}
	defer rows.Close()

	var startups []*models.Startup
	for rows.Next() {
		startup, err := scanStartup(rows)
		if err != nil {
			return nil, err
		}
		startups = append(startups, startup)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return startups, nil
}

// Update updates the mutable profile fields of a startup
func (r *StartupRepository) Update(ctx context.Context, startup *models.Startup) error {
	query := `
		UPDATE startups
		SET company_name = $1, founder_name = $2, phone = $3, description = $4,
			website = $5, location = $6, year_founded = $7, logo_url = $8, linkedin_url = $9
		WHERE id = $10
	`

	cmdTag, err := r.db.Exec(ctx, query,
		startup.CompanyName, startup.FounderName, startup.Phone, startup.Description,
		startup.Website, startup.Location, startup.YearFounded, startup.LogoURL,
		startup.LinkedInURL, startup.ID,
	)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "startups_company_name_key") {
			return apperrors.ErrStartupAlreadyExists
		}
		return fmt.Errorf("error updating startup: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStartupNotFound
	}

	return nil
}

// GetCreatedTimes returns the creation timestamps of all startups, for KPI derivation
func (r *StartupRepository) GetCreatedTimes(ctx context.Context) ([]time.Time, error) {
	rows, err := r.db.Query(ctx, `SELECT created_at FROM startups`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving startup creation times: %w", err)
	}
	defer rows.Close()

	var times []time.Time
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		times = append(times, t)
	}

	return times, rows.Err()
}
