package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ciic/internhub/internal/app/models"
	"github.com/ciic/internhub/internal/app/models/dto"
	"github.com/ciic/internhub/internal/app/repositories"
	"github.com/ciic/internhub/internal/pkg/apperrors"
	"github.com/ciic/internhub/internal/pkg/metrics"
)

// Catalog sort keys
const (
	SortNewest      = "newest"
	SortHighStipend = "stipend"
)

// CatalogFilter narrows the student-facing internship catalog
type CatalogFilter struct {
	Domain string
	Search string
	Sort   string
}

// FilterCatalog reduces an internship list to the entries matching the
// filter, preserving the input's relative order. Domain is an exact key
// match bypassed by the ALL sentinel; search is a case-insensitive
// substring match against the title or the company name.
func FilterCatalog(internships []*models.Internship, filter CatalogFilter) []*models.Internship {
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	filtered := make([]*models.Internship, 0, len(internships))
	for _, internship := range internships {
		if filter.Domain != "" && filter.Domain != models.DomainAll && internship.Domain != filter.Domain {
			continue
		}
		if search != "" && !matchesSearch(internship, search) {
			continue
		}
		filtered = append(filtered, internship)
	}

	return filtered
}

func matchesSearch(internship *models.Internship, search string) bool {
	if strings.Contains(strings.ToLower(internship.Title), search) {
		return true
	}
	if internship.Startup != nil &&
		strings.Contains(strings.ToLower(internship.Startup.CompanyName), search) {
		return true
	}
	return false
}

// SortCatalog orders a filtered catalog in place by the given sort key.
// Sorting is stable, so re-sorting an already sorted list is a no-op and
// ties keep their relative order. Unknown keys leave the order untouched.
func SortCatalog(internships []*models.Internship, sortKey string) {
	switch sortKey {
	case SortNewest:
		sort.SliceStable(internships, func(i, j int) bool {
			return internships[i].CreatedAt.After(internships[j].CreatedAt)
		})
	case SortHighStipend:
		sort.SliceStable(internships, func(i, j int) bool {
			return internships[i].Stipend > internships[j].Stipend
		})
	}
}

// InternshipService handles internship catalog and posting operations
type InternshipService struct {
	internshipRepo *repositories.InternshipRepository
	startupRepo    *repositories.StartupRepository
	domainRepo     *repositories.DomainRepository
	logger         zerolog.Logger
}

// NewInternshipService creates a new InternshipService
func NewInternshipService(
	internshipRepo *repositories.InternshipRepository,
	startupRepo *repositories.StartupRepository,
	domainRepo *repositories.DomainRepository,
	logger zerolog.Logger,
) *InternshipService {
	return &InternshipService{
		internshipRepo: internshipRepo,
		startupRepo:    startupRepo,
		domainRepo:     domainRepo,
		logger:         logger,
	}
}

// GetCatalog retrieves the active internship catalog, filtered and sorted.
// An empty result is not an error.
func (s *InternshipService) GetCatalog(ctx context.Context, filter CatalogFilter) ([]dto.InternshipResponse, error) {
	internships, err := s.internshipRepo.GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	filtered := FilterCatalog(internships, filter)
	SortCatalog(filtered, filter.Sort)

	responses := make([]dto.InternshipResponse, 0, len(filtered))
	for _, internship := range filtered {
		responses = append(responses, dto.FromInternship(internship))
	}

	return responses, nil
}

// GetByID retrieves a single internship with its startup label
func (s *InternshipService) GetByID(ctx context.Context, id int64) (*dto.InternshipResponse, error) {
	internship, err := s.internshipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.FromInternship(internship)
	return &resp, nil
}

// Create posts a new internship for the startup owning the calling user
func (s *InternshipService) Create(ctx context.Context, userID int64, req *dto.CreateInternshipRequest) (*dto.InternshipResponse, error) {
	startup, err := s.startupRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.validateDomain(ctx, req.Domain); err != nil {
		return nil, err
	}
	if req.ApplicationDeadline.Before(time.Now()) {
		return nil, apperrors.NewBadRequestError("application deadline must be in the future")
	}

	internship := &models.Internship{
		StartupID:           startup.ID,
		Title:               req.Title,
		Description:         req.Description,
		Domain:              req.Domain,
		Location:            req.Location,
		Duration:            req.Duration,
		Stipend:             req.Stipend,
		SkillsRequired:      req.SkillsRequired,
		Eligibility:         req.Eligibility,
		PositionsAvailable:  req.PositionsAvailable,
		ApplicationDeadline: req.ApplicationDeadline,
		IsActive:            true,
	}

	if err := s.internshipRepo.Create(ctx, internship); err != nil {
		return nil, err
	}
	internship.Startup = startup

	s.logger.Info().Int64("internshipID", internship.ID).Int64("startupID", startup.ID).
		Str("title", internship.Title).Msg("Internship posted")

	resp := dto.FromInternship(internship)
	return &resp, nil
}

// Update edits an internship owned by the calling startup user
func (s *InternshipService) Update(ctx context.Context, userID, internshipID int64, req *dto.UpdateInternshipRequest) (*dto.InternshipResponse, error) {
	internship, err := s.authorizeOwner(ctx, userID, internshipID)
	if err != nil {
		return nil, err
	}

	if err := s.validateDomain(ctx, req.Domain); err != nil {
		return nil, err
	}

	internship.Title = req.Title
	internship.Description = req.Description
	internship.Domain = req.Domain
	internship.Location = req.Location
	internship.Duration = req.Duration
	internship.Stipend = req.Stipend
	internship.SkillsRequired = req.SkillsRequired
	internship.Eligibility = req.Eligibility
	internship.PositionsAvailable = req.PositionsAvailable
	internship.ApplicationDeadline = req.ApplicationDeadline

	if err := s.internshipRepo.Update(ctx, internship); err != nil {
		return nil, err
	}

	resp := dto.FromInternship(internship)
	return &resp, nil
}

// SetActive toggles catalog visibility of an internship owned by the caller
func (s *InternshipService) SetActive(ctx context.Context, userID, internshipID int64, isActive bool) error {
	if _, err := s.authorizeOwner(ctx, userID, internshipID); err != nil {
		return err
	}

	if err := s.internshipRepo.SetActive(ctx, internshipID, isActive); err != nil {
		return err
	}

	if !isActive {
		metrics.InternshipsDeactivated(1)
	}

	return nil
}

// Delete removes an internship. Startups may delete their own postings;
// admins may delete any. Applications cascade with the posting.
func (s *InternshipService) Delete(ctx context.Context, userID int64, role models.RoleType, internshipID int64) error {
	if role != models.RoleAdmin {
		if _, err := s.authorizeOwner(ctx, userID, internshipID); err != nil {
			return err
		}
	}

	if err := s.internshipRepo.Delete(ctx, internshipID); err != nil {
		return err
	}

	s.logger.Info().Int64("internshipID", internshipID).Int64("userID", userID).
		Msg("Internship deleted")
	return nil
}

// GetMine retrieves all postings of the startup owning the calling user
func (s *InternshipService) GetMine(ctx context.Context, userID int64) ([]dto.InternshipResponse, error) {
	startup, err := s.startupRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	internships, err := s.internshipRepo.GetByStartupID(ctx, startup.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.InternshipResponse, 0, len(internships))
	for _, internship := range internships {
		internship.Startup = startup
		responses = append(responses, dto.FromInternship(internship))
	}

	return responses, nil
}

func (s *InternshipService) authorizeOwner(ctx context.Context, userID, internshipID int64) (*models.Internship, error) {
	startup, err := s.startupRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	internship, err := s.internshipRepo.GetByID(ctx, internshipID)
	if err != nil {
		return nil, err
	}
	if internship.StartupID != startup.ID {
		return nil, apperrors.NewForbiddenError("internship belongs to another startup")
	}

	return internship, nil
}

func (s *InternshipService) validateDomain(ctx context.Context, key string) error {
	exists, err := s.domainRepo.KeyExists(ctx, key)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrUnknownDomain
	}
	return nil
}
