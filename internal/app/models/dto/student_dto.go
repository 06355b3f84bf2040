package dto

import "github.com/ciic/internhub/internal/app/models"

// UpdateStudentProfileRequest represents student profile update data
type UpdateStudentProfileRequest struct {
	Name           string   `json:"name" binding:"required"`
	Department     string   `json:"department" binding:"required"`
	Course         string   `json:"course" binding:"required"`
	Year           int      `json:"year" binding:"required,min=1,max=6"`
	CGPA           float64  `json:"cgpa" binding:"gte=0,lte=10"`
	Skills         []string `json:"skills"`
	Interests      []string `json:"interests"`
	Achievements   []string `json:"achievements"`
	Projects       []string `json:"projects"`
	Certifications []string `json:"certifications"`
	ResumeURL      *string  `json:"resumeUrl,omitempty" binding:"omitempty,url"`
	LinkedInURL    *string  `json:"linkedInUrl,omitempty" binding:"omitempty,url"`
	GithubURL      *string  `json:"githubUrl,omitempty" binding:"omitempty,url"`
}

// StudentResponse represents the student dossier view
type StudentResponse struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	RegisterNumber string   `json:"registerNumber"`
	Department     string   `json:"department"`
	Course         string   `json:"course"`
	Year           int      `json:"year"`
	CGPA           float64  `json:"cgpa"`
	Skills         []string `json:"skills"`
	Interests      []string `json:"interests"`
	Achievements   []string `json:"achievements"`
	Projects       []string `json:"projects"`
	Certifications []string `json:"certifications"`
	ResumeURL      *string  `json:"resumeUrl,omitempty"`
	LinkedInURL    *string  `json:"linkedInUrl,omitempty"`
	GithubURL      *string  `json:"githubUrl,omitempty"`
}

// FromStudent converts a model to the dossier response shape
func FromStudent(student *models.Student) StudentResponse {
	resp := StudentResponse{
		ID:             student.ID,
		RegisterNumber: student.RegisterNumber,
		Department:     student.Department,
		Course:         student.Course,
		Year:           student.Year,
		CGPA:           student.CGPA,
		Skills:         student.Skills,
		Interests:      student.Interests,
		Achievements:   student.Achievements,
		Projects:       student.Projects,
		Certifications: student.Certifications,
		ResumeURL:      student.ResumeURL,
		LinkedInURL:    student.LinkedInURL,
		GithubURL:      student.GithubURL,
	}
	if student.User != nil {
		resp.Name = student.User.Name
		resp.Email = student.User.Email
	}
	return resp
}

// StudentListResponse represents the admin student directory
type StudentListResponse struct {
	Students   []StudentResponse `json:"students"`
	Pagination PaginationInfo    `json:"pagination"`
}
