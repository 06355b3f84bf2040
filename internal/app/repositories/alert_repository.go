package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ciic/internhub/internal/app/models"
	"github.com/ciic/internhub/internal/pkg/apperrors"
)

// AlertRepository handles database operations for broadcast alerts
type AlertRepository struct {
	db *pgxpool.Pool
}

// NewAlertRepository creates a new alert repository
func NewAlertRepository(db *pgxpool.Pool) *AlertRepository {
	return &AlertRepository{
		db: db,
	}
}

// Create inserts a new alert
func (r *AlertRepository) Create(ctx context.Context, alert *models.Alert) error {
	query := `
		INSERT INTO alerts (title, message, created_by, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		alert.Title, alert.Message, alert.CreatedBy,
	).Scan(&alert.ID, &alert.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating alert: %w", err)
	}

	return nil
}

// GetByID retrieves an alert by ID
func (r *AlertRepository) GetByID(ctx context.Context, id int64) (*models.Alert, error) {
	query := `SELECT id, title, message, created_by, created_at FROM alerts WHERE id = $1`

	var alert models.Alert
	err := r.db.QueryRow(ctx, query, id).Scan(
		&alert.ID, &alert.Title, &alert.Message, &alert.CreatedBy, &alert.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAlertNotFound
		}
		return nil, fmt.Errorf("error retrieving alert: %w", err)
	}

	return &alert, nil
}

// GetAll retrieves all alerts, newest first
func (r *AlertRepository) GetAll(ctx context.Context) ([]*models.Alert, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, message, created_by, created_at FROM alerts ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving alerts: %w", err)
	}
	defer rows.Close()

	var alerts []*models.Alert
	for rows.Next() {
		var alert models.Alert
		if err := rows.Scan(&alert.ID, &alert.Title, &alert.Message,
			&alert.CreatedBy, &alert.CreatedAt); err != nil {
			return nil, err
		}
		alerts = append(alerts, &alert)
	}

	return alerts, rows.Err()
}

// Delete removes an alert
func (r *AlertRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM alerts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting alert: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAlertNotFound
	}
	return nil
}
