package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yigit/careerguide/internal/app/models"
	"github.com/yigit/careerguide/internal/app/models/dto"
	"github.com/yigit/careerguide/internal/app/repositories"
	"github.com/yigit/careerguide/internal/pkg/apperrors"
	"github.com/yigit/careerguide/internal/pkg/cache"
	"github.com/yigit/careerguide/internal/pkg/filestorage"
	"github.com/yigit/careerguide/internal/pkg/logger"
	"github.com/yigit/careerguide/internal/pkg/validation"
)

// InstitutionService manages institutions and their university projection
type InstitutionService interface {
	GetAllInstitutions(ctx context.Context) ([]*models.Institution, error)
	GetUniversities(ctx context.Context) ([]*models.University, error)
	CreateInstitution(ctx context.Context, req *dto.CreateInstitutionRequest) (*models.Institution, error)
	DeleteInstitution(ctx context.Context, id int64) error
}

type institutionServiceImpl struct {
	institutionRepo repositories.IInstitutionRepository
	fileStorage     filestorage.FileStorage
	cache           catalogCache
	maxUploadBytes  int64
}

// NewInstitutionService creates a new institution service
func NewInstitutionService(
	institutionRepo repositories.IInstitutionRepository,
	fileStorage filestorage.FileStorage,
	store cache.Store,
	cacheTTL time.Duration,
	maxUploadBytes int64,
) InstitutionService {
	return &institutionServiceImpl{
		institutionRepo: institutionRepo,
		fileStorage:     fileStorage,
		cache:           newCatalogCache(store, cacheTTL),
		maxUploadBytes:  maxUploadBytes,
	}
}

func (s *institutionServiceImpl) GetAllInstitutions(ctx context.Context) ([]*models.Institution, error) {
	var institutions []*models.Institution
	generation, hit := s.cache.load(ctx, cacheKeyInstitutions, &institutions)
	if hit {
		return institutions, nil
	}

	institutions, err := s.institutionRepo.GetAllInstitutions(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.save(ctx, cacheKeyInstitutions, generation, institutions)
	return institutions, nil
}

func (s *institutionServiceImpl) GetUniversities(ctx context.Context) ([]*models.University, error) {
	var universities []*models.University
	generation, hit := s.cache.load(ctx, cacheKeyUniversities, &universities)
	if hit {
		return universities, nil
	}

	universities, err := s.institutionRepo.GetUniversities(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.save(ctx, cacheKeyUniversities, generation, universities)
	return universities, nil
}

// parseCount parses a non-negative integer form value
func parseCount(field, raw string) (int, error) {
	n, ok := validation.ParseCount(raw)
	if !ok {
		return 0, apperrors.NewValidationError(fmt.Sprintf("%s must be a non-negative integer", field))
	}
	return n, nil
}

// CreateInstitution validates the form, stores the logo and inserts the row
func (s *institutionServiceImpl) CreateInstitution(ctx context.Context, req *dto.CreateInstitutionRequest) (*models.Institution, error) {
	name := strings.TrimSpace(req.Name)
	if validation.AnyBlank(name, req.NumberOfStudents, req.NumberOfDepartments, req.NumberOfCourses) || req.Logo == nil {
		return nil, apperrors.NewValidationError(MsgAllFieldsRequired)
	}

	inst := &models.Institution{Name: name}
	var err error
	if inst.NumberOfStudents, err = parseCount("number_of_students", req.NumberOfStudents); err != nil {
		return nil, err
	}
	if inst.NumberOfDepartments, err = parseCount("number_of_departments", req.NumberOfDepartments); err != nil {
		return nil, err
	}
	if inst.NumberOfCourses, err = parseCount("number_of_courses", req.NumberOfCourses); err != nil {
		return nil, err
	}

	if _, err := filestorage.ValidateImage(req.Logo, s.maxUploadBytes); err != nil {
		return nil, err
	}

	inst.Logo, err = s.fileStorage.SaveFile(ctx, req.Logo, filestorage.InstitutionLogoDir)
	if err != nil {
		return nil, fmt.Errorf("failed to store institution logo: %w", err)
	}

	created, err := s.institutionRepo.CreateInstitution(ctx, inst)
	if err != nil {
		if delErr := s.fileStorage.DeleteFile(ctx, inst.Logo); delErr != nil {
			logger.Warn().Err(delErr).Str("path", inst.Logo).Msg("Failed to remove orphaned logo")
		}
		return nil, err
	}

	s.cache.invalidate(ctx, cacheKeyInstitutions, cacheKeyUniversities)
	logger.Info().Int64("institutionID", created.ID).Str("name", created.Name).Msg("Institution created")
	return created, nil
}

// DeleteInstitution removes the institution, its faculties and courses, then
// its logo. A logo that cannot be removed is only logged.
func (s *institutionServiceImpl) DeleteInstitution(ctx context.Context, id int64) error {
	deleted, err := s.institutionRepo.DeleteInstitution(ctx, id)
	if err != nil {
		return err
	}

	s.cache.invalidate(ctx, cacheKeyInstitutions, cacheKeyUniversities, cacheKeyFaculties, cacheKeyCourses)

	if deleted.Logo != "" {
		if err := s.fileStorage.DeleteFile(ctx, deleted.Logo); err != nil {
			logger.Warn().Err(err).Int64("institutionID", id).Str("path", deleted.Logo).Msg("Failed to delete institution logo")
		}
	}

	logger.Info().Int64("institutionID", id).Msg("Institution deleted")
	return nil
}
