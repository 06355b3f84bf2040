package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ciic/internhub/internal/app/models"
	"github.com/ciic/internhub/internal/app/models/dto"
	"github.com/ciic/internhub/internal/app/repositories"
	"github.com/ciic/internhub/internal/pkg/apperrors"
	"github.com/ciic/internhub/internal/pkg/email"
	"github.com/ciic/internhub/internal/pkg/metrics"
)

// ApplicationService handles the application lifecycle
type ApplicationService struct {
	applicationRepo *repositories.ApplicationRepository
	internshipRepo  *repositories.InternshipRepository
	studentRepo     *repositories.StudentRepository
	startupRepo     *repositories.StartupRepository
	userRepo        *repositories.UserRepository
	emailService    email.EmailService
	logger          zerolog.Logger
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(
	applicationRepo *repositories.ApplicationRepository,
	internshipRepo *repositories.InternshipRepository,
	studentRepo *repositories.StudentRepository,
	startupRepo *repositories.StartupRepository,
	userRepo *repositories.UserRepository,
	emailService email.EmailService,
	logger zerolog.Logger,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		internshipRepo:  internshipRepo,
		studentRepo:     studentRepo,
		startupRepo:     startupRepo,
		userRepo:        userRepo,
		emailService:    emailService,
		logger:          logger,
	}
}

// Apply creates exactly one application for the calling student
func (s *ApplicationService) Apply(ctx context.Context, userID int64, req *dto.ApplyInternshipRequest) (*dto.ApplicationResponse, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	internship, err := s.internshipRepo.GetByID(ctx, req.InternshipID)
	if err != nil {
		return nil, err
	}
	if !internship.IsActive {
		return nil, apperrors.ErrInternshipInactive
	}
	if internship.ApplicationDeadline.Before(time.Now()) {
		return nil, apperrors.ErrDeadlinePassed
	}

	exists, err := s.applicationRepo.ExistsByStudentAndInternship(ctx, student.ID, internship.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrAlreadyApplied
	}

	application := &models.Application{
		StudentID:    student.ID,
		InternshipID: internship.ID,
		Status:       models.StatusApplied,
	}
	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, err
	}

	// Advisory counter; drift is tolerated
	if err := s.internshipRepo.IncrementApplicationsCount(ctx, internship.ID); err != nil {
		s.logger.Warn().Err(err).Int64("internshipID", internship.ID).
			Msg("Failed to bump applications counter")
	}

	metrics.ApplicationSubmitted()
	s.logger.Info().Int64("applicationID", application.ID).Int64("studentID", student.ID).
		Int64("internshipID", internship.ID).Msg("Application submitted")

	application.Student = student
	application.Internship = internship

	resp := dto.FromApplication(application)
	return &resp, nil
}

// GetMine retrieves the calling student's applications, newest first
func (s *ApplicationService) GetMine(ctx context.Context, userID int64) ([]dto.ApplicationResponse, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	applications, err := s.applicationRepo.GetByStudentID(ctx, student.ID)
	if err != nil {
		return nil, err
	}

	return toApplicationResponses(applications), nil
}

// Withdraw deletes the calling student's own application. Completed
// applications cannot be withdrawn; a certificate may reference them.
func (s *ApplicationService) Withdraw(ctx context.Context, userID, applicationID int64) error {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	application, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return err
	}
	if application.StudentID != student.ID {
		return apperrors.NewForbiddenError("application belongs to another student")
	}
	if application.Status == models.StatusCompleted {
		return apperrors.ErrWithdrawCompleted
	}

	if err := s.applicationRepo.Delete(ctx, applicationID); err != nil {
		return err
	}

	if err := s.internshipRepo.DecrementApplicationsCount(ctx, application.InternshipID); err != nil {
		s.logger.Warn().Err(err).Int64("internshipID", application.InternshipID).
			Msg("Failed to lower applications counter")
	}

	metrics.ApplicationWithdrawn()
	s.logger.Info().Int64("applicationID", applicationID).Int64("studentID", student.ID).
		Msg("Application withdrawn")
	return nil
}

// GetAll retrieves all applications matching the admin filter
func (s *ApplicationService) GetAll(ctx context.Context, filter repositories.ApplicationFilter) ([]dto.ApplicationResponse, error) {
	if filter.Status != "" {
		canonical, known := models.NormalizeStatus(filter.Status)
		if !known {
			return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown status %q", filter.Status))
		}
		filter.Status = canonical
	}

	applications, err := s.applicationRepo.GetAllFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}

	return toApplicationResponses(applications), nil
}

// GetForInternship retrieves all applications for a posting owned by the
// calling startup user
func (s *ApplicationService) GetForInternship(ctx context.Context, userID, internshipID int64) ([]dto.ApplicationResponse, error) {
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

	applications, err := s.applicationRepo.GetByInternshipID(ctx, internshipID)
	if err != nil {
		return nil, err
	}

	return toApplicationResponses(applications), nil
}

func (s *ApplicationService) authorizePostingOwner(ctx context.Context, userID, internshipID int64) error {
	startup, err := s.startupRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	internship, err := s.internshipRepo.GetByID(ctx, internshipID)
	if err != nil {
		return err
	}
	if internship.StartupID != startup.ID {
		return apperrors.NewForbiddenError("application belongs to another startup's posting")
	}
	return nil
}

// UpdateStatus moves an application along its lifecycle. Startups may only
// move applications on their own postings; admins may move any. Legacy alias
// spellings are normalized before the transition check, and the student
// is notified by email on success.
func (s *ApplicationService) UpdateStatus(ctx context.Context, userID int64, role models.RoleType, applicationID int64, status models.ApplicationStatus) (*dto.ApplicationResponse, error) {
	canonical, known := models.NormalizeStatus(status)
	if !known {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown status %q", status))
	}

	application, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	if role != models.RoleAdmin {
		if err := s.authorizePostingOwner(ctx, userID, application.InternshipID); err != nil {
			return nil, err
		}
	}

	if !models.CanTransition(application.Status, canonical) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidTransition,
			fmt.Sprintf("cannot move application from %s to %s", application.Status, canonical))
	}

	if err := s.applicationRepo.UpdateStatus(ctx, applicationID, canonical); err != nil {
		return nil, err
	}
	application.Status = canonical

	s.logger.Info().Int64("applicationID", applicationID).Str("status", string(canonical)).
		Msg("Application status updated")

	s.notifyStatusChange(ctx, application)

	resp := dto.FromApplication(application)
	return &resp, nil
}

// IssueCertificate attaches a certificate URL to a completed application
// and notifies the student
func (s *ApplicationService) IssueCertificate(ctx context.Context, applicationID int64, certificateURL string) error {
	application, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return err
	}
	if application.Status != models.StatusCompleted {
		return apperrors.ErrCertificateNotReady
	}

	if err := s.applicationRepo.SetCertificate(ctx, applicationID, certificateURL); err != nil {
		return err
	}

	s.logger.Info().Int64("applicationID", applicationID).Msg("Certificate issued")

	student, internship, user, err := s.loadNotificationTargets(ctx, application)
	if err != nil {
		s.logger.Warn().Err(err).Int64("applicationID", applicationID).
			Msg("Skipping certificate email")
		return nil
	}
	if err := s.emailService.SendCertificateEmail(user.Email, user.Name, internship.Title, certificateURL); err != nil {
		s.logger.Warn().Err(err).Int64("studentID", student.ID).Msg("Certificate email failed")
	}

	return nil
}

// notifyStatusChange emails the student about a status transition.
// Notification failures never fail the transition itself.
func (s *ApplicationService) notifyStatusChange(ctx context.Context, application *models.Application) {
	student, _, user, err := s.loadNotificationTargets(ctx, application)
	if err != nil {
		s.logger.Warn().Err(err).Int64("applicationID", application.ID).
			Msg("Skipping status update email")
		return
	}

	title := "your internship"
	if application.Internship != nil {
		title = application.Internship.Title
	}
	if err := s.emailService.SendStatusUpdateEmail(user.Email, user.Name, title, string(application.Status)); err != nil {
		s.logger.Warn().Err(err).Int64("studentID", student.ID).Msg("Status update email failed")
	}
}

func (s *ApplicationService) loadNotificationTargets(ctx context.Context, application *models.Application) (*models.Student, *models.Internship, *models.User, error) {
	student, err := s.studentRepo.GetByID(ctx, application.StudentID)
	if err != nil {
		return nil, nil, nil, err
	}
	if student.User == nil {
		return nil, nil, nil, apperrors.ErrUserNotFound
	}

	internship := application.Internship
	if internship == nil {
		internship, err = s.internshipRepo.GetByID(ctx, application.InternshipID)
		if err != nil {
			return nil, nil, nil, err
		}
		application.Internship = internship
	}

	return student, internship, student.User, nil
}

func toApplicationResponses(applications []*models.Application) []dto.ApplicationResponse {
	responses := make([]dto.ApplicationResponse, 0, len(applications))
	for _, application := range applications {
		responses = append(responses, dto.FromApplication(application))
	}
	return responses
}
