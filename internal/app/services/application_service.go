package services

import (
	"context"
	"strings"

	"github.com/yigit/careerguide/internal/app/models"
	"github.com/yigit/careerguide/internal/app/models/dto"
	"github.com/yigit/careerguide/internal/app/repositories"
	"github.com/yigit/careerguide/internal/pkg/apperrors"
	"github.com/yigit/careerguide/internal/pkg/logger"
	"github.com/yigit/careerguide/internal/pkg/validation"
)

// MsgApplicationFieldsRequired is returned when an application misses a scalar field
const MsgApplicationFieldsRequired = "All fields are required."

// ApplicationService handles application intake
type ApplicationService interface {
	SubmitApplication(ctx context.Context, req *dto.SubmitApplicationRequest) (int64, error)
	GetAllApplications(ctx context.Context) ([]*models.Application, error)
}

type applicationServiceImpl struct {
	applicationRepo repositories.IApplicationRepository
}

// NewApplicationService creates a new application service
func NewApplicationService(applicationRepo repositories.IApplicationRepository) ApplicationService {
	return &applicationServiceImpl{applicationRepo: applicationRepo}
}

// SubmitApplication stores an application. Grades are optional, padded to
// eight pairs and anything beyond the eighth pair is dropped.
func (s *applicationServiceImpl) SubmitApplication(ctx context.Context, req *dto.SubmitApplicationRequest) (int64, error) {
	app := &models.Application{
		StudentName:  strings.TrimSpace(req.StudentName),
		PhoneNumber:  strings.TrimSpace(req.PhoneNumber),
		StudentID:    strings.TrimSpace(req.StudentID),
		University:   strings.TrimSpace(req.University),
		CourseID:     req.CourseID,
		Faculty:      strings.TrimSpace(req.Faculty),
		MajorSubject: strings.TrimSpace(req.MajorSubject),
		Grades:       models.NormalizeGrades(req.Grades),
	}
	if validation.AnyBlank(app.StudentName, app.PhoneNumber, app.StudentID,
		app.University, app.Faculty, app.MajorSubject) {
		return 0, apperrors.NewValidationError(MsgApplicationFieldsRequired)
	}

	if len(req.Grades) > models.MaxSubjectGrades {
		logger.Debug().Int("received", len(req.Grades)).Str("studentID", app.StudentID).Msg("Dropping grades past the eighth pair")
	}

	id, err := s.applicationRepo.CreateApplication(ctx, app)
	if err != nil {
		return 0, err
	}

	logger.Info().Int64("applicationID", id).Str("studentID", app.StudentID).Int64("courseID", app.CourseID).Msg("Application submitted")
	return id, nil
}

func (s *applicationServiceImpl) GetAllApplications(ctx context.Context) ([]*models.Application, error) {
	return s.applicationRepo.GetAllApplications(ctx)
}
