package dto

import (
	"time"

	"github.com/ciic/internhub/internal/app/models"
)

// ApplyInternshipRequest creates one application for the calling student
type ApplyInternshipRequest struct {
	InternshipID int64 `json:"internshipId" binding:"required,gt=0"`
}

// UpdateApplicationStatusRequest moves an application along its lifecycle
type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required"`
}

// IssueCertificateRequest attaches a certificate to a completed application
type IssueCertificateRequest struct {
	CertificateURL string `json:"certificateUrl" binding:"required,url"`
}

// ApplicationResponse represents an application with resolved labels.
// Fields resolved through a missing relation fall back to "N/A".
type ApplicationResponse struct {
	ID              int64                    `json:"id"`
	InternshipID    int64                    `json:"internshipId"`
	InternshipTitle string                   `json:"internshipTitle"`
	CompanyName     string                   `json:"companyName"`
	StudentID       int64                    `json:"studentId"`
	StudentName     string                   `json:"studentName"`
	RegisterNumber  string                   `json:"registerNumber"`
	Department      string                   `json:"department"`
	Status          models.ApplicationStatus `json:"status"`
	StatusCategory  models.StatusCategory    `json:"statusCategory"`
	CertificateURL  *string                  `json:"certificateUrl,omitempty"`
	AppliedAt       time.Time                `json:"appliedAt"`
}

const fallbackLabel = "N/A"

// FromApplication converts a model to its response shape, tolerating
// absent student or internship relations.
func FromApplication(app *models.Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:              app.ID,
		InternshipID:    app.InternshipID,
		InternshipTitle: fallbackLabel,
		CompanyName:     fallbackLabel,
		StudentID:       app.StudentID,
		StudentName:     fallbackLabel,
		RegisterNumber:  fallbackLabel,
		Department:      fallbackLabel,
		Status:          app.Status,
		StatusCategory:  models.CategoryOf(app.Status),
		CertificateURL:  app.CertificateURL,
		AppliedAt:       app.CreatedAt,
	}

	if app.Internship != nil {
		if app.Internship.Title != "" {
			resp.InternshipTitle = app.Internship.Title
		}
		if app.Internship.Startup != nil && app.Internship.Startup.CompanyName != "" {
			resp.CompanyName = app.Internship.Startup.CompanyName
		}
	}

	if app.Student != nil {
		if app.Student.User != nil && app.Student.User.Name != "" {
			resp.StudentName = app.Student.User.Name
		}
		if app.Student.RegisterNumber != "" {
			resp.RegisterNumber = app.Student.RegisterNumber
		}
		if app.Student.Department != "" {
			resp.Department = app.Student.Department
		}
	}

	return resp
}
