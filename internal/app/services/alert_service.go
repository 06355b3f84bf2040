package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ciic/internhub/internal/app/models"
	"github.com/ciic/internhub/internal/app/models/dto"
	"github.com/ciic/internhub/internal/app/repositories"
)

// AlertService handles admin broadcast alerts
type AlertService struct {
	alertRepo *repositories.AlertRepository
	logger    zerolog.Logger
}

// NewAlertService creates a new AlertService
func NewAlertService(alertRepo *repositories.AlertRepository, logger zerolog.Logger) *AlertService {
	return &AlertService{
		alertRepo: alertRepo,
		logger:    logger,
	}
}

// Create publishes a new alert authored by the calling admin
func (s *AlertService) Create(ctx context.Context, createdBy int64, req *dto.CreateAlertRequest) (*models.Alert, error) {
	alert := &models.Alert{
		Title:     req.Title,
		Message:   req.Message,
		CreatedBy: createdBy,
	}

	if err := s.alertRepo.Create(ctx, alert); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("alertID", alert.ID).Str("title", alert.Title).Msg("Alert published")
	return alert, nil
}

// GetAll retrieves all alerts, newest first
func (s *AlertService) GetAll(ctx context.Context) ([]*models.Alert, error) {
	return s.alertRepo.GetAll(ctx)
}

// Delete removes an alert
func (s *AlertService) Delete(ctx context.Context, id int64) error {
	if err := s.alertRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("alertID", id).Msg("Alert deleted")
	return nil
}
