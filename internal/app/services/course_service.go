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

// CourseService manages courses
type CourseService interface {
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	GetCourseListings(ctx context.Context) ([]*models.CourseListing, error)
}

type courseServiceImpl struct {
	courseRepo repositories.ICourseRepository
	cache      catalogCache
}

// NewCourseService creates a new course service
func NewCourseService(courseRepo repositories.ICourseRepository, store cache.Store, cacheTTL time.Duration) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
		cache:      newCatalogCache(store, cacheTTL),
	}
}

func (s *courseServiceImpl) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError(MsgAllFieldsRequired)
	}

	created, err := s.courseRepo.CreateCourse(ctx, &models.Course{
		Name:          name,
		FacultyID:     req.Faculty,
		InstitutionID: req.Institution,
	})
	switch {
	case errors.Is(err, apperrors.ErrFacultyNotFound):
		return nil, apperrors.NewValidationError("Faculty does not exist")
	case errors.Is(err, apperrors.ErrInstitutionNotFound):
		return nil, apperrors.NewValidationError("Institution does not exist")
	case err != nil:
		return nil, err
	}

	s.cache.invalidate(ctx, cacheKeyCourses)
	return created, nil
}

// GetCourseListings returns courses joined with their institution name
func (s *courseServiceImpl) GetCourseListings(ctx context.Context) ([]*models.CourseListing, error) {
	var courses []*models.CourseListing
	generation, hit := s.cache.load(ctx, cacheKeyCourses, &courses)
	if hit {
		return courses, nil
	}

	courses, err := s.courseRepo.GetCourseListings(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.save(ctx, cacheKeyCourses, generation, courses)
	return courses, nil
}
