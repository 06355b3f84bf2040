package dto

import "github.com/ciic/internhub/internal/app/models"

// EnrollStartupRequest represents admin-side startup enrollment data
type EnrollStartupRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	CompanyName string `json:"companyName" binding:"required"`
	FounderName string `json:"founderName" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
	YearFounded int    `json:"yearFounded"`
}

// UpdateStartupProfileRequest represents startup profile update data
type UpdateStartupProfileRequest struct {
	CompanyName string  `json:"companyName" binding:"required"`
	FounderName string  `json:"founderName" binding:"required"`
	Phone       string  `json:"phone" binding:"required"`
	Description string  `json:"description"`
	Website     *string `json:"website,omitempty" binding:"omitempty,url"`
	Location    string  `json:"location"`
	YearFounded int     `json:"yearFounded"`
	LogoURL     *string `json:"logoUrl,omitempty" binding:"omitempty,url"`
	LinkedInURL *string `json:"linkedInUrl,omitempty" binding:"omitempty,url"`
}

// StartupResponse represents the startup dossier view
type StartupResponse struct {
	ID          int64   `json:"id"`
	CompanyName string  `json:"companyName"`
	FounderName string  `json:"founderName"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Description string  `json:"description"`
	Website     *string `json:"website,omitempty"`
	Location    string  `json:"location"`
	YearFounded int     `json:"yearFounded"`
	LogoURL     *string `json:"logoUrl,omitempty"`
	LinkedInURL *string `json:"linkedInUrl,omitempty"`
}

// FromStartup converts a model to the dossier response shape
func FromStartup(startup *models.Startup) StartupResponse {
	return StartupResponse{
		ID:          startup.ID,
		CompanyName: startup.CompanyName,
		FounderName: startup.FounderName,
		Email:       startup.Email,
		Phone:       startup.Phone,
		Description: startup.Description,
		Website:     startup.Website,
		Location:    startup.Location,
		YearFounded: startup.YearFounded,
		LogoURL:     startup.LogoURL,
		LinkedInURL: startup.LinkedInURL,
	}
}

// StartupListResponse represents the startup directory
type StartupListResponse struct {
	Startups   []StartupResponse `json:"startups"`
	Pagination PaginationInfo    `json:"pagination"`
}
