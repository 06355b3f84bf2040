package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ciic/internhub/internal/app/models/dto"
	"github.com/ciic/internhub/internal/app/repositories"
)

// ComputeKPI derives a summary metric from creation timestamps. The list
// is partitioned at the start of the calendar month containing now:
// entries created earlier form the previous count, and the change label
// is the percentage difference with a leading sign. A previous count of
// zero yields the "+100%" sentinel when anything exists now, "0%" when
// nothing does.
func ComputeKPI(createdTimes []time.Time, now time.Time) dto.KPIMetric {
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	current := len(createdTimes)
	previous := 0
	for _, t := range createdTimes {
		if t.Before(startOfMonth) {
			previous++
		}
	}

	return dto.KPIMetric{
		Value:  current,
		Change: changeLabel(previous, current),
	}
}

func changeLabel(previous, current int) string {
	if previous == 0 {
		if current == 0 {
			return "0%"
		}
		return "+100%"
	}

	diff := (current - previous) * 100 / previous
	if diff >= 0 {
		return fmt.Sprintf("+%d%%", diff)
	}
	return fmt.Sprintf("%d%%", diff)
}

// DashboardService computes the admin dashboard KPI snapshot
type DashboardService struct {
	startupRepo     *repositories.StartupRepository
	internshipRepo  *repositories.InternshipRepository
	applicationRepo *repositories.ApplicationRepository
	studentRepo     *repositories.StudentRepository
	logger          zerolog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	startupRepo *repositories.StartupRepository,
	internshipRepo *repositories.InternshipRepository,
	applicationRepo *repositories.ApplicationRepository,
	studentRepo *repositories.StudentRepository,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		startupRepo:     startupRepo,
		internshipRepo:  internshipRepo,
		applicationRepo: applicationRepo,
		studentRepo:     studentRepo,
		logger:          logger,
	}
}

// GetKPIs computes the point-in-time dashboard snapshot. It is derived
// on every call and has no persistence.
func (s *DashboardService) GetKPIs(ctx context.Context) (*dto.DashboardKPIResponse, error) {
	now := time.Now()

	startupTimes, err := s.startupRepo.GetCreatedTimes(ctx)
	if err != nil {
		return nil, err
	}
	internshipTimes, err := s.internshipRepo.GetActiveCreatedTimes(ctx)
	if err != nil {
		return nil, err
	}
	applicationTimes, err := s.applicationRepo.GetCreatedTimes(ctx)
	if err != nil {
		return nil, err
	}
	studentTimes, err := s.studentRepo.GetCreatedTimes(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardKPIResponse{
		TotalStartups:     ComputeKPI(startupTimes, now),
		ActiveInternships: ComputeKPI(internshipTimes, now),
		TotalApplications: ComputeKPI(applicationTimes, now),
		TotalStudents:     ComputeKPI(studentTimes, now),
	}, nil
}
