package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/careerguide/internal/app/models"
	"github.com/yigit/careerguide/internal/app/repositories"
	"github.com/yigit/careerguide/internal/db"
	"github.com/yigit/careerguide/internal/pkg/apperrors"
	"github.com/yigit/careerguide/internal/pkg/logger"
)

// MsgApplicationIDsRequired is returned for an empty publish request
const MsgApplicationIDsRequired = "application_ids must be a non-empty array"

// PublishResult counts the outcome of a publish run
type PublishResult struct {
	Published int
	Skipped   int
}

// AdmissionService publishes admissions from applications
type AdmissionService interface {
	PublishAdmissions(ctx context.Context, applicationIDs []int64) (*PublishResult, error)
	GetAllAdmissions(ctx context.Context) ([]*models.Admission, error)
}

type admissionServiceImpl struct {
	transactor      db.Transactor
	applicationRepo repositories.IApplicationRepository
	admissionRepo   repositories.IAdmissionRepository
}

// NewAdmissionService creates a new admission service
func NewAdmissionService(
	transactor db.Transactor,
	applicationRepo repositories.IApplicationRepository,
	admissionRepo repositories.IAdmissionRepository,
) AdmissionService {
	return &admissionServiceImpl{
		transactor:      transactor,
		applicationRepo: applicationRepo,
		admissionRepo:   admissionRepo,
	}
}

// PublishAdmissions admits every listed application in one transaction.
// Unknown ids and students already admitted to the course are skipped; any
// database error rolls the whole run back.
func (s *admissionServiceImpl) PublishAdmissions(ctx context.Context, applicationIDs []int64) (*PublishResult, error) {
	if len(applicationIDs) == 0 {
		return nil, apperrors.NewValidationError(MsgApplicationIDsRequired)
	}

	var result PublishResult
	err := s.transactor.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		result = PublishResult{}
		apps := s.applicationRepo.WithTx(tx)
		admissions := s.admissionRepo.WithTx(tx)

		for _, id := range applicationIDs {
			app, err := apps.GetApplicationByID(ctx, id)
			if errors.Is(err, apperrors.ErrApplicationNotFound) {
				logger.Debug().Int64("applicationID", id).Msg("Skipping unknown application")
				result.Skipped++
				continue
			}
			if err != nil {
				return err
			}

			inserted, err := admissions.CreateAdmission(ctx, models.AdmissionFromApplication(app))
			if err != nil {
				return err
			}
			if inserted {
				result.Published++
			} else {
				result.Skipped++
			}
		}
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Int("requested", len(applicationIDs)).Msg("Publishing admissions failed, rolled back")
		return nil, err
	}

	logger.Info().Int("published", result.Published).Int("skipped", result.Skipped).Msg("Admissions published")
	return &result, nil
}

func (s *admissionServiceImpl) GetAllAdmissions(ctx context.Context) ([]*models.Admission, error) {
	return s.admissionRepo.GetAllAdmissions(ctx)
}
