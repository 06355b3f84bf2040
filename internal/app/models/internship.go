package models

import "time"

// Internship defines the internship posting model based on the 'internships' table.
// A posting always belongs to exactly one startup.
type Internship struct {
	ID                  int64     `json:"id" db:"id" example:"1"`
	StartupID           int64     `json:"startupId" db:"startup_id" example:"3"`
	Title               string    `json:"title" db:"title" example:"Backend Intern"`
	Description         string    `json:"description" db:"description"`
	Domain              string    `json:"domain" db:"domain" example:"WEB"` // Key from the internship_domains table
	Location            string    `json:"location" db:"location" example:"Remote"`
	Duration            string    `json:"duration" db:"duration" example:"3 months"`
	Stipend             int64     `json:"stipend" db:"stipend" example:"15000"` // Monthly stipend, 0 = unpaid
	SkillsRequired      []string  `json:"skillsRequired" db:"skills_required"`
	Eligibility         string    `json:"eligibility" db:"eligibility"`
	PositionsAvailable  int       `json:"positionsAvailable" db:"positions_available" example:"2"`
	ApplicationDeadline time.Time `json:"applicationDeadline" db:"application_deadline"`
	IsActive            bool      `json:"isActive" db:"is_active" example:"true"` // Visibility flag for the student catalog
	ApplicationsCount   int       `json:"applicationsCount" db:"applications_count" example:"12"`
	CreatedAt           time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Startup *Startup `json:"startup,omitempty"` // Owning startup
}

// InternshipDomain is an admin-configured key/label pair used to classify internships
type InternshipDomain struct {
	ID    int64  `json:"id" db:"id" example:"1"`
	Key   string `json:"key" db:"key" example:"AI_ML"`
	Label string `json:"label" db:"label" example:"AI/ML"`
}

// DomainAll is the sentinel key that bypasses domain filtering in the catalog
const DomainAll = "ALL"
