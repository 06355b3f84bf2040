package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ciic/internhub/internal/app/models"
	"github.com/ciic/internhub/internal/app/models/dto"
	"github.com/ciic/internhub/internal/app/repositories"
	"github.com/ciic/internhub/internal/pkg/metrics"
)

// reportDateFormat is the display format of the applied date column
const reportDateFormat = "02 Jan 2006"

// reportHeader is the fixed CSV header; its order matches dto.ReportRow
var reportHeader = []string{
	"Application ID", "Student Name", "Register Number", "Department",
	"Startup Name", "Internship Title", "Status", "Applied Date",
}

// ReportFilter narrows the applications report. Nil and zero fields mean
// "no constraint"; set fields are AND-combined.
type ReportFilter struct {
	From       *time.Time
	To         *time.Time
	StartupID  int64
	Department string
}

// matches reports whether an application passes every set predicate
func (f ReportFilter) matches(application *models.Application) bool {
	if f.From != nil && application.CreatedAt.Before(*f.From) {
		return false
	}
	if f.To != nil && application.CreatedAt.After(*f.To) {
		return false
	}
	if f.StartupID != 0 {
		if application.Internship == nil || application.Internship.StartupID != f.StartupID {
			return false
		}
	}
	if f.Department != "" {
		if application.Student == nil || application.Student.Department != f.Department {
			return false
		}
	}
	return true
}

// BuildReport reduces an application list to report rows. Fields that
// cannot be resolved through a missing relation render as "N/A", never
// blank. Input order is preserved.
func BuildReport(applications []*models.Application, filter ReportFilter) []dto.ReportRow {
	rows := make([]dto.ReportRow, 0, len(applications))
	for _, application := range applications {
		if !filter.matches(application) {
			continue
		}

		row := dto.ReportRow{
			ApplicationID:   application.ID,
			StudentName:     "N/A",
			RegisterNumber:  "N/A",
			Department:      "N/A",
			StartupName:     "N/A",
			InternshipTitle: "N/A",
			Status:          string(application.Status),
			AppliedDate:     application.CreatedAt.Format(reportDateFormat),
		}

		if student := application.Student; student != nil {
			if student.User != nil && student.User.Name != "" {
				row.StudentName = student.User.Name
			}
			if student.RegisterNumber != "" {
				row.RegisterNumber = student.RegisterNumber
			}
			if student.Department != "" {
				row.Department = student.Department
			}
		}
		if internship := application.Internship; internship != nil {
			if internship.Title != "" {
				row.InternshipTitle = internship.Title
			}
			if internship.Startup != nil && internship.Startup.CompanyName != "" {
				row.StartupName = internship.Startup.CompanyName
			}
		}

		rows = append(rows, row)
	}

	return rows
}

// EncodeReportCSV serializes report rows with a header line prepended.
// encoding/csv quotes and escapes embedded commas and quotes, so names
// containing commas survive the round trip.
func EncodeReportCSV(rows []dto.ReportRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(reportHeader); err != nil {
		return nil, fmt.Errorf("error writing CSV header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			fmt.Sprintf("%d", row.ApplicationID),
			row.StudentName,
			row.RegisterNumber,
			row.Department,
			row.StartupName,
			row.InternshipTitle,
			row.Status,
			row.AppliedDate,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("error writing CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("error flushing CSV: %w", err)
	}

	return buf.Bytes(), nil
}

// ReportFilename returns the download name for a report generated at t
func ReportFilename(t time.Time) string {
	return fmt.Sprintf("CIIC_Report_%d.csv", t.UnixMilli())
}

// ReportService builds the admin applications report
type ReportService struct {
	applicationRepo *repositories.ApplicationRepository
	logger          zerolog.Logger
}

// NewReportService creates a new ReportService
func NewReportService(applicationRepo *repositories.ApplicationRepository, logger zerolog.Logger) *ReportService {
	return &ReportService{
		applicationRepo: applicationRepo,
		logger:          logger,
	}
}

// GetReport retrieves the filtered applications report
func (s *ReportService) GetReport(ctx context.Context, filter ReportFilter) (*dto.ReportResponse, error) {
	applications, err := s.applicationRepo.GetAllFiltered(ctx, repositories.ApplicationFilter{})
	if err != nil {
		return nil, err
	}

	rows := BuildReport(applications, filter)
	return &dto.ReportResponse{Rows: rows, Total: len(rows)}, nil
}

// ExportCSV builds the filtered report as a downloadable CSV artifact
func (s *ReportService) ExportCSV(ctx context.Context, filter ReportFilter) (filename string, data []byte, err error) {
	report, err := s.GetReport(ctx, filter)
	if err != nil {
		return "", nil, err
	}

	data, err = EncodeReportCSV(report.Rows)
	if err != nil {
		return "", nil, err
	}

	metrics.ReportExported()
	s.logger.Info().Int("rows", report.Total).Msg("Report exported")

	return ReportFilename(time.Now()), data, nil
}
