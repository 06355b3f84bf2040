package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ciic/internhub/internal/app/models"
	"github.com/ciic/internhub/internal/app/models/dto"
	"github.com/ciic/internhub/internal/app/repositories"
	"github.com/ciic/internhub/internal/pkg/apperrors"
	"github.com/ciic/internhub/internal/pkg/auth"
)

// StartupService handles startup profile and directory operations
type StartupService struct {
	startupRepo *repositories.StartupRepository
	userRepo    *repositories.UserRepository
	logger      zerolog.Logger
}

// NewStartupService creates a new StartupService
func NewStartupService(
	startupRepo *repositories.StartupRepository,
	userRepo *repositories.UserRepository,
	logger zerolog.Logger,
) *StartupService {
	return &StartupService{
		startupRepo: startupRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// Enroll creates a startup account and profile on behalf of an admin
func (s *StartupService) Enroll(ctx context.Context, req *dto.EnrollStartupRequest) (*dto.StartupResponse, error) {
	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    req.Email,
		Password: hashedPassword,
		Name:     req.FounderName,
		RoleType: models.RoleStartup,
		IsActive: true,
	}
	userID, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	startup := &models.Startup{
		UserID:      userID,
		CompanyName: req.CompanyName,
		FounderName: req.FounderName,
		Email:       req.Email,
		Phone:       req.Phone,
		Description: req.Description,
		Location:    req.Location,
		YearFounded: req.YearFounded,
	}
	if err := s.startupRepo.Create(ctx, startup); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("startupID", startup.ID).Str("companyName", req.CompanyName).
		Msg("Startup enrolled")

	resp := dto.FromStartup(startup)
	return &resp, nil
}

// GetProfile retrieves the calling startup user's own profile
func (s *StartupService) GetProfile(ctx context.Context, userID int64) (*dto.StartupResponse, error) {
	startup, err := s.startupRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := dto.FromStartup(startup)
	return &resp, nil
}

// GetByID retrieves a startup dossier
func (s *StartupService) GetByID(ctx context.Context, id int64) (*dto.StartupResponse, error) {
	startup, err := s.startupRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.FromStartup(startup)
	return &resp, nil
}

// GetAll retrieves the startup directory
func (s *StartupService) GetAll(ctx context.Context) ([]dto.StartupResponse, error) {
	startups, err := s.startupRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.StartupResponse, 0, len(startups))
	for _, startup := range startups {
		responses = append(responses, dto.FromStartup(startup))
	}

	return responses, nil
}

// UpdateProfile updates the calling startup user's own profile
func (s *StartupService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateStartupProfileRequest) (*dto.StartupResponse, error) {
	startup, err := s.startupRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	startup.CompanyName = req.CompanyName
	startup.FounderName = req.FounderName
	startup.Phone = req.Phone
	startup.Description = req.Description
	startup.Website = req.Website
	startup.Location = req.Location
	startup.YearFounded = req.YearFounded
	startup.LogoURL = req.LogoURL
	startup.LinkedInURL = req.LinkedInURL

	if err := s.startupRepo.Update(ctx, startup); err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateName(ctx, userID, req.FounderName); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("startupID", startup.ID).Msg("Startup profile updated")

	resp := dto.FromStartup(startup)
	return &resp, nil
}
