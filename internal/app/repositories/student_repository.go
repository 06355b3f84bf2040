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

// StudentRepository handles database operations for student profiles
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

const studentColumns = `
	s.id, s.user_id, s.register_number, s.department, s.course, s.year, s.cgpa,
	s.skills, s.interests, s.achievements, s.projects, s.certifications,
	s.resume_url, s.linkedin_url, s.github_url
`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID,
		&student.UserID,
		&student.RegisterNumber,
		&student.Department,
		&student.Course,
		&student.Year,
		&student.CGPA,
		&student.Skills,
		&student.Interests,
		&student.Achievements,
		&student.Projects,
		&student.Certifications,
		&student.ResumeURL,
		&student.LinkedInURL,
		&student.GithubURL,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// Create inserts a new student profile
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (user_id, register_number, department, course, year, cgpa,
			skills, interests, achievements, projects, certifications, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		student.UserID, student.RegisterNumber, student.Department, student.Course,
		student.Year, student.CGPA, student.Skills, student.Interests,
		student.Achievements, student.Projects, student.Certifications,
	).Scan(&student.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_register_number_key") {
			return apperrors.ErrRegisterNumberExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student with the associated user row
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT ` + studentColumns + `,
			u.id, u.email, u.name, u.role_type, u.is_active, u.created_at, u.updated_at
		FROM students s
		JOIN users u ON u.id = s.user_id
		WHERE s.id = $1
	`

	var student models.Student
	var user models.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&student.ID, &student.UserID, &student.RegisterNumber, &student.Department,
		&student.Course, &student.Year, &student.CGPA, &student.Skills,
		&student.Interests, &student.Achievements, &student.Projects,
		&student.Certifications, &student.ResumeURL, &student.LinkedInURL, &student.GithubURL,
		&user.ID, &user.Email, &user.Name, &user.RoleType, &user.IsActive,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	student.User = &user
	return &student, nil
}

// GetByUserID retrieves a student profile by the owning user account
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students s WHERE s.user_id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student by user: %w", err)
	}

	return student, nil
}

// GetAll retrieves a page of students with their user rows
func (r *StudentRepository) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Student, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	query := `
		SELECT ` + studentColumns + `,
			u.id, u.email, u.name, u.role_type, u.is_active, u.created_at, u.updated_at
		FROM students s
		JOIN users u ON u.id = s.user_id
		ORDER BY s.id
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		var user models.User
		if err := rows.Scan(
			&student.ID, &student.UserID, &student.RegisterNumber, &student.Department,
			&student.Course, &student.Year, &student.CGPA, &student.Skills,
			&student.Interests, &student.Achievements, &student.Projects,
			&student.Certifications, &student.ResumeURL, &student.LinkedInURL, &student.GithubURL,
			&user.ID, &user.Email, &user.Name, &user.RoleType, &user.IsActive,
			&user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		student.User = &user
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

// UpdateProfile updates the mutable profile fields of a student
func (r *StudentRepository) UpdateProfile(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET department = $1, course = $2, year = $3, cgpa = $4, skills = $5,
			interests = $6, achievements = $7, projects = $8, certifications = $9,
			resume_url = $10, linkedin_url = $11, github_url = $12
		WHERE id = $13
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.Department, student.Course, student.Year, student.CGPA,
		student.Skills, student.Interests, student.Achievements, student.Projects,
		student.Certifications, student.ResumeURL, student.LinkedInURL, student.GithubURL,
		student.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating student profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// RegisterNumberExists checks if a register number is already taken
func (r *StudentRepository) RegisterNumberExists(ctx context.Context, registerNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE register_number = $1)`, registerNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking register number existence: %w", err)
	}
	return exists, nil
}

// GetCreatedTimes returns the creation timestamps of all students, for KPI derivation
func (r *StudentRepository) GetCreatedTimes(ctx context.Context) ([]time.Time, error) {
	rows, err := r.db.Query(ctx, `SELECT created_at FROM students`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student creation times: %w", err)
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
