package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ciic/internhub/internal/app/models"
	"github.com/ciic/internhub/internal/pkg/apperrors"
	"github.com/ciic/internhub/internal/pkg/dberrors"
)

// ApplicationFilter narrows admin application listings. Zero values mean
// "no constraint"; set fields are combined with AND.
type ApplicationFilter struct {
	Status     models.ApplicationStatus
	Domain     string
	Department string
	StartupID  int64
	From       *time.Time
	To         *time.Time
}

// ApplicationRepository handles database operations for applications
type ApplicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
	}
}

// Create inserts a new application in APPLIED state
func (r *ApplicationRepository) Create(ctx context.Context, application *models.Application) error {
	query := `
		INSERT INTO applications (student_id, internship_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		application.StudentID, application.InternshipID, application.Status,
	).Scan(&application.ID, &application.CreatedAt, &application.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "applications_student_id_internship_id_key") {
			return apperrors.ErrAlreadyApplied
		}
		return fmt.Errorf("error creating application: %w", err)
	}

	return nil
}

// GetByID retrieves an application without relations
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	query := `
		SELECT id, student_id, internship_id, status, certificate_url, created_at, updated_at
		FROM applications
		WHERE id = $1
	`

	var application models.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&application.ID,
		&application.StudentID,
		&application.InternshipID,
		&application.Status,
		&application.CertificateURL,
		&application.CreatedAt,
		&application.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}

	return &application, nil
}

// ExistsByStudentAndInternship checks whether a student already applied to an internship
func (r *ApplicationRepository) ExistsByStudentAndInternship(ctx context.Context, studentID, internshipID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE student_id = $1 AND internship_id = $2)`,
		studentID, internshipID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking application existence: %w", err)
	}
	return exists, nil
}

// detailedApplicationQuery joins the relations every display path needs.
// LEFT JOINs keep an application visible even when the referenced
// internship, startup or student row is gone.
func detailedApplicationQuery() sq.SelectBuilder {
	return sq.Select(
		"a.id", "a.student_id", "a.internship_id", "a.status", "a.certificate_url",
		"a.created_at", "a.updated_at",
		"s.id", "s.user_id", "s.register_number", "s.department", "s.course", "s.year",
		"u.name",
		"i.id", "i.title", "i.domain", "i.location", "i.duration", "i.stipend",
		"i.application_deadline", "i.is_active",
		"st.id", "st.company_name",
	).
		From("applications a").
		LeftJoin("students s ON s.id = a.student_id").
		LeftJoin("users u ON u.id = s.user_id").
		LeftJoin("internships i ON i.id = a.internship_id").
		LeftJoin("startups st ON st.id = i.startup_id").
		PlaceholderFormat(sq.Dollar)
}

func scanDetailedApplication(row pgx.Row) (*models.Application, error) {
	var application models.Application
	var (
		studentID      *int64
		studentUserID  *int64
		registerNumber *string
		department     *string
		course         *string
		year           *int
		studentName    *string

		internshipID *int64
		title        *string
		domain       *string
		location     *string
		duration     *string
		stipend      *int64
		deadline     *time.Time
		isActive     *bool

		startupID   *int64
		companyName *string
	)

	err := row.Scan(
		&application.ID, &application.StudentID, &application.InternshipID,
		&application.Status, &application.CertificateURL,
		&application.CreatedAt, &application.UpdatedAt,
		&studentID, &studentUserID, &registerNumber, &department, &course, &year,
		&studentName,
		&internshipID, &title, &domain, &location, &duration, &stipend,
		&deadline, &isActive,
		&startupID, &companyName,
	)
	if err != nil {
		return nil, err
	}

	if studentID != nil {
		student := &models.Student{
			ID:             *studentID,
			RegisterNumber: derefString(registerNumber),
			Department:     derefString(department),
			Course:         derefString(course),
		}
		if studentUserID != nil {
			student.UserID = *studentUserID
		}
		if year != nil {
			student.Year = *year
		}
		if studentName != nil {
			student.User = &models.User{ID: student.UserID, Name: *studentName}
		}
		application.Student = student
	}

	if internshipID != nil {
		internship := &models.Internship{
			ID:       *internshipID,
			Title:    derefString(title),
			Domain:   derefString(domain),
			Location: derefString(location),
			Duration: derefString(duration),
		}
		if stipend != nil {
			internship.Stipend = *stipend
		}
		if deadline != nil {
			internship.ApplicationDeadline = *deadline
		}
		if isActive != nil {
			internship.IsActive = *isActive
		}
		if startupID != nil {
			internship.StartupID = *startupID
			internship.Startup = &models.Startup{
				ID:          *startupID,
				CompanyName: derefString(companyName),
			}
		}
		application.Internship = internship
	}

	return &application, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// GetByStudentID retrieves a student's applications with relations, newest first
func (r *ApplicationRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Application, error) {
	query, args, err := detailedApplicationQuery().
		Where(sq.Eq{"a.student_id": studentID}).
		OrderBy("a.created_at DESC", "a.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	return r.queryDetailed(ctx, query, args)
}

// GetByInternshipID retrieves all applications for an internship, newest first
func (r *ApplicationRepository) GetByInternshipID(ctx context.Context, internshipID int64) ([]*models.Application, error) {
	query, args, err := detailedApplicationQuery().
		Where(sq.Eq{"a.internship_id": internshipID}).
		OrderBy("a.created_at DESC", "a.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	return r.queryDetailed(ctx, query, args)
}

// GetAllFiltered retrieves applications matching the filter with relations,
// newest first. Used by the admin listing and report export.
func (r *ApplicationRepository) GetAllFiltered(ctx context.Context, filter ApplicationFilter) ([]*models.Application, error) {
	builder := detailedApplicationQuery().
		OrderBy("a.created_at DESC", "a.id DESC")

	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"a.status": filter.Status})
	}
	if filter.Domain != "" && filter.Domain != models.DomainAll {
		builder = builder.Where(sq.Eq{"i.domain": filter.Domain})
	}
	if filter.Department != "" {
		builder = builder.Where(sq.Eq{"s.department": filter.Department})
	}
	if filter.StartupID != 0 {
		builder = builder.Where(sq.Eq{"i.startup_id": filter.StartupID})
	}
	if filter.From != nil {
		builder = builder.Where(sq.GtOrEq{"a.created_at": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(sq.LtOrEq{"a.created_at": *filter.To})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	return r.queryDetailed(ctx, query, args)
}

func (r *ApplicationRepository) queryDetailed(ctx context.Context, query string, args []interface{}) ([]*models.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving applications: %w", err)
	}
	defer rows.Close()

	var applications []*models.Application
	for rows.Next() {
		application, err := scanDetailedApplication(rows)
		if err != nil {
			return nil, err
		}
		applications = append(applications, application)
	}

	return applications, rows.Err()
}

// UpdateStatus moves an application to a new status
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating application status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}
	return nil
}

// SetCertificate attaches a certificate URL to a completed application
func (r *ApplicationRepository) SetCertificate(ctx context.Context, id int64, certificateURL string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE applications SET certificate_url = $1, updated_at = NOW() WHERE id = $2`,
		certificateURL, id)
	if err != nil {
		return fmt.Errorf("error setting certificate: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}
	return nil
}

// Delete removes an application (student withdrawal)
func (r *ApplicationRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting application: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}
	return nil
}

// GetCreatedTimes returns the creation timestamps of all applications, for KPI derivation
func (r *ApplicationRepository) GetCreatedTimes(ctx context.Context) ([]time.Time, error) {
	rows, err := r.db.Query(ctx, `SELECT created_at FROM applications`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving application creation times: %w", err)
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
