package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID             int64    `json:"id" db:"id" example:"1"`                               // Unique identifier for the student record
	UserID         int64    `json:"userId" db:"user_id" example:"5"`                      // ID of the associated user account
	RegisterNumber string   `json:"registerNumber" db:"register_number" example:"211501"` // University register number
	Department     string   `json:"department" db:"department" example:"CSE"`             // Department code
	Course         string   `json:"course" db:"course" example:"B.Tech"`                  // Degree course
	Year           int      `json:"year" db:"year" example:"3"`                           // Current year of study
	CGPA           float64  `json:"cgpa" db:"cgpa" example:"8.4"`                         // Cumulative grade point average
	Skills         []string `json:"skills" db:"skills"`                                   // Self-reported skills
	Interests      []string `json:"interests" db:"interests"`                             // Areas of interest
	Achievements   []string `json:"achievements" db:"achievements"`                       // Achievements
	Projects       []string `json:"projects" db:"projects"`                               // Project summaries
	Certifications []string `json:"certifications" db:"certifications"`                   // Certifications
	ResumeURL      *string  `json:"resumeUrl,omitempty" db:"resume_url"`                  // Link to hosted resume (nullable)
	LinkedInURL    *string  `json:"linkedInUrl,omitempty" db:"linkedin_url"`              // LinkedIn profile (nullable)
	GithubURL      *string  `json:"githubUrl,omitempty" db:"github_url"`                  // GitHub profile (nullable)

	// Relations (populated when needed)
	User *User `json:"user,omitempty"` // Associated user information
}
