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
)

// InternshipRepository handles database operations for internship postings
type InternshipRepository struct {
	db *pgxpool.Pool
}

// NewInternshipRepository creates a new internship repository
func NewInternshipRepository(db *pgxpool.Pool) *InternshipRepository {
	return &InternshipRepository{
		db: db,
	}
}

const internshipColumns = `
	i.id, i.startup_id, i.title, i.description, i.domain, i.location, i.duration,
	i.stipend, i.skills_required, i.eligibility, i.positions_available,
	i.application_deadline, i.is_active, i.applications_count, i.created_at, i.updated_at
`

func scanInternship(row pgx.Row) (*models.Internship, error) {
	var internship models.Internship
	err := row.Scan(
		&internship.ID,
		&internship.StartupID,
		&internship.Title,
		&internship.Description,
		&internship.Domain,
		&internship.Location,
		&internship.Duration,
		&internship.Stipend,
		&internship.SkillsRequired,
		&internship.Eligibility,
		&internship.PositionsAvailable,
		&internship.ApplicationDeadline,
		&internship.IsActive,
		&internship.ApplicationsCount,
		&internship.CreatedAt,
		&internship.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &internship, nil
}

// Create inserts a new internship posting
func (r *InternshipRepository) Create(ctx context.Context, internship *models.Internship) error {
	query := `
		INSERT INTO internships (startup_id, title, description, domain, location, duration,
			stipend, skills_required, eligibility, positions_available, application_deadline,
			is_active, applications_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 0, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		internship.StartupID, internship.Title, internship.Description, internship.Domain,
		internship.Location, internship.Duration, internship.Stipend, internship.SkillsRequired,
		internship.Eligibility, internship.PositionsAvailable, internship.ApplicationDeadline,
		internship.IsActive,
	).Scan(&internship.ID, &internship.CreatedAt, &internship.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating internship: %w", err)
	}

	return nil
}

// GetByID retrieves an internship with its owning startup
func (r *InternshipRepository) GetByID(ctx context.Context, id int64) (*models.Internship, error) {
	query := `
		SELECT ` + internshipColumns + `,
			st.id, st.user_id, st.company_name, st.founder_name, st.email, st.phone,
			st.description, st.website, st.location, st.year_founded, st.logo_url,
			st.linkedin_url, st.created_at
		FROM internships i
		JOIN startups st ON st.id = i.startup_id
		WHERE i.id = $1
	`

	internship, err := scanInternshipWithStartup(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInternshipNotFound
		}
		return nil, fmt.Errorf("error retrieving internship: %w", err)
	}

	return internship, nil
}

func scanInternshipWithStartup(row pgx.Row) (*models.Internship, error) {
	var internship models.Internship
	var startup models.Startup
	err := row.Scan(
		&internship.ID, &internship.StartupID, &internship.Title, &internship.Description,
		&internship.Domain, &internship.Location, &internship.Duration, &internship.Stipend,
		&internship.SkillsRequired, &internship.Eligibility, &internship.PositionsAvailable,
		&internship.ApplicationDeadline, &internship.IsActive, &internship.ApplicationsCount,
		&internship.CreatedAt, &internship.UpdatedAt,
		&startup.ID, &startup.UserID, &startup.CompanyName, &startup.FounderName,
		&startup.Email, &startup.Phone, &startup.Description, &startup.Website,
		&startup.Location, &startup.YearFounded, &startup.LogoURL, &startup.LinkedInURL,
		&startup.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	internship.Startup = &startup
	return &internship, nil
}

// GetAllActive retrieves every active internship with its startup, newest first.
// Catalog filtering and re-sorting happen in the service layer.
func (r *InternshipRepository) GetAllActive(ctx context.Context) ([]*models.Internship, error) {
	query := `
		SELECT ` + internshipColumns + `,
			st.id, st.user_id, st.company_name, st.founder_name, st.email, st.phone,
			st.description, st.website, st.location, st.year_founded, st.logo_url,
			st.linkedin_url, st.created_at
		FROM internships i
		JOIN startups st ON st.id = i.startup_id
		WHERE i.is_active = TRUE AND i.application_deadline > NOW()
		ORDER BY i.created_at DESC, i.id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving active internships: %w", err)
	}
	defer rows.Close()

	var internships []*models.Internship
	for rows.Next() {
		internship, err := scanInternshipWithStartup(rows)
		if err != nil {
			return nil, err
		}
		internships = append(internships, internship)
	}

	return internships, rows.Err()
}

// GetByStartupID retrieves all internships posted by a startup, newest first
func (r *InternshipRepository) GetByStartupID(ctx context.Context, startupID int64) ([]*models.Internship, error) {
	query := `
		SELECT ` + internshipColumns + `
		FROM internships i
		WHERE i.startup_id = $1
		ORDER BY i.created_at DESC, i.id DESC
	`

	rows, err := r.db.Query(ctx, query, startupID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving startup internships: %w", err)
	}
	defer rows.Close()

	var internships []*models.Internship
	for rows.Next() {
		internship, err := scanInternship(rows)
		if err != nil {
			return nil, err
		}
		internships = append(internships, internship)
	}

	return internships, rows.Err()
}

// Update updates the mutable fields of an internship posting
func (r *InternshipRepository) Update(ctx context.Context, internship *models.Internship) error {
	query := `
		UPDATE internships
		SET title = $1, description = $2, domain = $3, location = $4, duration = $5,
			stipend = $6, skills_required = $7, eligibility = $8, positions_available = $9,
			application_deadline = $10, updated_at = NOW()
		WHERE id = $11
	`

	cmdTag, err := r.db.Exec(ctx, query,
		internship.Title, internship.Description, internship.Domain, internship.Location,
		internship.Duration, internship.Stipend, internship.SkillsRequired,
		internship.Eligibility, internship.PositionsAvailable, internship.ApplicationDeadline,
		internship.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating internship: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInternshipNotFound
	}

	return nil
}

// SetActive toggles an internship's catalog visibility
func (r *InternshipRepository) SetActive(ctx context.Context, id int64, isActive bool) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE internships SET is_active = $1, updated_at = NOW() WHERE id = $2`, isActive, id)
	if err != nil {
		return fmt.Errorf("error setting internship active flag: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInternshipNotFound
	}
	return nil
}

// Delete removes an internship posting
func (r *InternshipRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM internships WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting internship: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInternshipNotFound
	}
	return nil
}

// IncrementApplicationsCount bumps the advisory applications counter
func (r *InternshipRepository) IncrementApplicationsCount(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE internships SET applications_count = applications_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error incrementing applications count: %w", err)
	}
	return nil
}

// DecrementApplicationsCount lowers the advisory applications counter, never below zero
func (r *InternshipRepository) DecrementApplicationsCount(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE internships SET applications_count = GREATEST(applications_count - 1, 0) WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error decrementing applications count: %w", err)
	}
	return nil
}

// DeactivateExpired deactivates active internships whose deadline has passed
// and returns how many were swept
func (r *InternshipRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE internships SET is_active = FALSE, updated_at = NOW()
		 WHERE is_active = TRUE AND application_deadline < $1`, now)
	if err != nil {
		return 0, fmt.Errorf("error deactivating expired internships: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// CountActive returns the number of currently active internships
func (r *InternshipRepository) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM internships WHERE is_active = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting active internships: %w", err)
	}
	return count, nil
}

// GetActiveCreatedTimes returns creation timestamps of active internships, for KPI derivation
func (r *InternshipRepository) GetActiveCreatedTimes(ctx context.Context) ([]time.Time, error) {
	rows, err := r.db.Query(ctx,
		`SELECT created_at FROM internships WHERE is_active = TRUE`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving internship creation times: %w", err)
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
