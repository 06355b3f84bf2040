package models

import "time"

// Startup defines the startup model based on the 'startups' table
type Startup struct {
	ID          int64     `json:"id" db:"id" example:"1"`                          // Unique identifier for the startup record
	UserID      int64     `json:"userId" db:"user_id" example:"9"`                 // ID of the associated user account
	CompanyName string    `json:"companyName" db:"company_name" example:"Acme AI"` // Registered company name
	FounderName string    `json:"founderName" db:"founder_name" example:"Jane Roe"`
	Email       string    `json:"email" db:"email" example:"contact@acme.ai"`
	Phone       string    `json:"phone" db:"phone" example:"+91-9876543210"`
	Description string    `json:"description" db:"description"`
	Website     *string   `json:"website,omitempty" db:"website"`
	Location    string    `json:"location" db:"location" example:"Chennai"`
	YearFounded int       `json:"yearFounded" db:"year_founded" example:"2021"`
	LogoURL     *string   `json:"logoUrl,omitempty" db:"logo_url"`
	LinkedInURL *string   `json:"linkedInUrl,omitempty" db:"linkedin_url"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	User *User `json:"user,omitempty"` // Associated user information
}
