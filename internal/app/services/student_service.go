package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ciic/internhub/internal/app/models/dto"
	"github.com/ciic/internhub/internal/app/repositories"
	"github.com/ciic/internhub/internal/pkg/helpers"
)

// StudentService handles student profile and directory operations
type StudentService struct {
	studentRepo *repositories.StudentRepository
	userRepo    *repositories.UserRepository
	logger      zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(
	studentRepo *repositories.StudentRepository,
	userRepo *repositories.UserRepository,
	logger zerolog.Logger,
) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// GetProfile retrieves the calling student's own profile
func (s *StudentService) GetProfile(ctx context.Context, userID int64) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// The dossier needs the user row for name and email
	student, err = s.studentRepo.GetByID(ctx, student.ID)
	if err != nil {
		return nil, err
	}

	resp := dto.FromStudent(student)
	return &resp, nil
}

// GetByID retrieves a student dossier
func (s *StudentService) GetByID(ctx context.Context, id int64) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.FromStudent(student)
	return &resp, nil
}

// GetAll retrieves a page of the student directory
func (s *StudentService) GetAll(ctx context.Context, page, pageSize int) (*dto.StudentListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	students, total, err := s.studentRepo.GetAll(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, dto.FromStudent(student))
	}

	return &dto.StudentListResponse{
		Students:   responses,
		Pagination: helpers.NewPaginationInfo(total, page, pageSize),
	}, nil
}

// UpdateProfile updates the calling student's own profile
func (s *StudentService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateStudentProfileRequest) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	student.Department = req.Department
	student.Course = req.Course
	student.Year = req.Year
	student.CGPA = req.CGPA
	student.Skills = req.Skills
	student.Interests = req.Interests
	student.Achievements = req.Achievements
	student.Projects = req.Projects
	student.Certifications = req.Certifications
	student.ResumeURL = req.ResumeURL
	student.LinkedInURL = req.LinkedInURL
	student.GithubURL = req.GithubURL

	if err := s.studentRepo.UpdateProfile(ctx, student); err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateName(ctx, userID, req.Name); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", student.ID).Msg("Student profile updated")

	return s.GetByID(ctx, student.ID)
}
