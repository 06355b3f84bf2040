package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ciic/internhub/internal/app/models"
	"github.com/ciic/internhub/internal/app/models/dto"
	"github.com/ciic/internhub/internal/app/repositories"
	"github.com/ciic/internhub/internal/pkg/apperrors"
)

// DomainService manages the internship domain taxonomy
type DomainService struct {
	domainRepo *repositories.DomainRepository
	logger     zerolog.Logger
}

// NewDomainService creates a new DomainService
func NewDomainService(domainRepo *repositories.DomainRepository, logger zerolog.Logger) *DomainService {
	return &DomainService{
		domainRepo: domainRepo,
		logger:     logger,
	}
}

// GetAll retrieves all domain key/label pairs
func (s *DomainService) GetAll(ctx context.Context) ([]dto.InternshipDomainResponse, error) {
	domains, err := s.domainRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.InternshipDomainResponse, 0, len(domains))
	for _, domain := range domains {
		responses = append(responses, dto.InternshipDomainResponse{
			Key:   domain.Key,
			Label: domain.Label,
		})
	}

	return responses, nil
}

// Create registers a new domain. Keys are stored upper-cased and the ALL
// sentinel is reserved for catalog filtering.
func (s *DomainService) Create(ctx context.Context, req *dto.CreateDomainRequest) (*dto.InternshipDomainResponse, error) {
	key := strings.ToUpper(strings.TrimSpace(req.Key))
	if key == "" || key == models.DomainAll {
		return nil, apperrors.NewBadRequestError("invalid domain key")
	}

	domain := &models.InternshipDomain{
		Key:   key,
		Label: strings.TrimSpace(req.Label),
	}
	if err := s.domainRepo.Create(ctx, domain); err != nil {
		return nil, err
	}

	s.logger.Info().Str("key", domain.Key).Msg("Internship domain added")

	return &dto.InternshipDomainResponse{Key: domain.Key, Label: domain.Label}, nil
}

// Delete removes a domain by key
func (s *DomainService) Delete(ctx context.Context, key string) error {
	return s.domainRepo.Delete(ctx, strings.ToUpper(strings.TrimSpace(key)))
}
