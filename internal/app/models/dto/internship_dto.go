package dto

import (
	"time"

	"github.com/ciic/internhub/internal/app/models"
)

// CreateInternshipRequest represents internship posting creation data
type CreateInternshipRequest struct {
	Title               string    `json:"title" binding:"required"`
	Description         string    `json:"description" binding:"required"`
	Domain              string    `json:"domain" binding:"required"`
	Location            string    `json:"location" binding:"required"`
	Duration            string    `json:"duration" binding:"required"`
	Stipend             int64     `json:"stipend" binding:"gte=0"`
	SkillsRequired      []string  `json:"skillsRequired"`
	Eligibility         string    `json:"eligibility"`
	PositionsAvailable  int       `json:"positionsAvailable" binding:"required,gt=0"`
	ApplicationDeadline time.Time `json:"applicationDeadline" binding:"required"`
}

// UpdateInternshipRequest represents internship posting update data
type UpdateInternshipRequest struct {
	Title               string    `json:"title" binding:"required"`
	Description         string    `json:"description" binding:"required"`
	Domain              string    `json:"domain" binding:"required"`
	Location            string    `json:"location" binding:"required"`
	Duration            string    `json:"duration" binding:"required"`
	Stipend             int64     `json:"stipend" binding:"gte=0"`
	SkillsRequired      []string  `json:"skillsRequired"`
	Eligibility         string    `json:"eligibility"`
	PositionsAvailable  int       `json:"positionsAvailable" binding:"required,gt=0"`
	ApplicationDeadline time.Time `json:"applicationDeadline" binding:"required"`
}

// SetInternshipActiveRequest toggles catalog visibility of a posting
type SetInternshipActiveRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// InternshipResponse represents an internship posting with its startup label
type InternshipResponse struct {
	ID                  int64     `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	Domain              string    `json:"domain"`
	Location            string    `json:"location"`
	Duration            string    `json:"duration"`
	Stipend             int64     `json:"stipend"`
	SkillsRequired      []string  `json:"skillsRequired"`
	Eligibility         string    `json:"eligibility"`
	PositionsAvailable  int       `json:"positionsAvailable"`
	ApplicationDeadline time.Time `json:"applicationDeadline"`
	IsActive            bool      `json:"isActive"`
	ApplicationsCount   int       `json:"applicationsCount"`
	CompanyName         string    `json:"companyName"`
	StartupID           int64     `json:"startupId"`
	CreatedAt           time.Time `json:"createdAt"`
}

// FromInternship converts a model to its response shape. A missing startup
// relation yields the fallback company label instead of an empty string.
func FromInternship(internship *models.Internship) InternshipResponse {
	companyName := "N/A"
	if internship.Startup != nil && internship.Startup.CompanyName != "" {
		companyName = internship.Startup.CompanyName
	}

	return InternshipResponse{
		ID:                  internship.ID,
		Title:               internship.Title,
		Description:         internship.Description,
		Domain:              internship.Domain,
		Location:            internship.Location,
		Duration:            internship.Duration,
		Stipend:             internship.Stipend,
		SkillsRequired:      internship.SkillsRequired,
		Eligibility:         internship.Eligibility,
		PositionsAvailable:  internship.PositionsAvailable,
		ApplicationDeadline: internship.ApplicationDeadline,
		IsActive:            internship.IsActive,
		ApplicationsCount:   internship.ApplicationsCount,
		CompanyName:         companyName,
		StartupID:           internship.StartupID,
		CreatedAt:           internship.CreatedAt,
	}
}

// InternshipListResponse represents a filtered internship catalog page
type InternshipListResponse struct {
	Internships []InternshipResponse `json:"internships"`
	Pagination  PaginationInfo       `json:"pagination"`
}

// InternshipDomainResponse represents a domain key/label pair
type InternshipDomainResponse struct {
	Key   string `json:"key" example:"AI_ML"`
	Label string `json:"label" example:"AI/ML"`
}

// CreateDomainRequest represents domain creation data
type CreateDomainRequest struct {
	Key   string `json:"key" binding:"required"`
	Label string `json:"label" binding:"required"`
}
