package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/yigit/careerguide/internal/app/models"
	"github.com/yigit/careerguide/internal/app/models/dto"
	"github.com/yigit/careerguide/internal/app/repositories"
	"github.com/yigit/careerguide/internal/pkg/apperrors"
	"github.com/yigit/careerguide/internal/pkg/cache"
)

// FacultyService defines the interface for faculty-related operations
type FacultyService interface {
	CreateFaculty(ctx context.Context, req *dto.CreateFacultyRequest) (*models.Faculty, error)
	GetAllFaculties(ctx context.Context) ([]*models.Faculty, error)
}

type facultyServiceImpl struct {
	facultyRepo repositories.IFacultyRepository
	cache       catalogCache
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(facultyRepo repositories.IFacultyRepository, store cache.Store, cacheTTL time.Duration) FacultyService {
	return &facultyServiceImpl{
		facultyRepo: facultyRepo,
		cache:       newCatalogCache(store, cacheTTL),
	}
}

func (s *facultyServiceImpl) CreateFaculty(ctx context.Context, req *dto.CreateFacultyRequest) (*models.Faculty, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError(MsgAllFieldsRequired)
	}

	created, err := s.facultyRepo.CreateFaculty(ctx, &models.Faculty{Name: name, InstitutionID: req.InstitutionID})
	if err != nil {
		if errors.Is(err, apperrors.ErrInstitutionNotFound) {
			return nil, apperrors.NewValidationError("Institution does not exist")
		}
		return nil, err
	}

	s.cache.invalidate(ctx, cacheKeyFaculties)
	return created, nil
}

func (s *facultyServiceImpl) GetAllFaculties(ctx context.Context) ([]*models.Faculty, error) {
	var faculties []*models.Faculty
	generation, hit := s.cache.load(ctx, cacheKeyFaculties, &faculties)
	if hit {
		return faculties, nil
	}

	faculties, err := s.facultyRepo.GetAllFaculties(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.save(ctx, cacheKeyFaculties, generation, faculties)
	return faculties, nil
}
