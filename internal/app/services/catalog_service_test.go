package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yigit/careerguide/internal/app/models"
	"github.com/yigit/careerguide/internal/app/models/dto"
	"github.com/yigit/careerguide/internal/pkg/apperrors"
)

func TestFacultyService_CreateFaculty(t *testing.T) {
	ctx := context.Background()

	t.Run("created", func(t *testing.T) {
		repo := &mockFacultyRepo{}
		store := newMemoryStore()
		store.data[entryKey(cacheKeyFaculties, "0")] = []byte("[]")
		svc := NewFacultyService(repo, store, time.Minute)

		created := &models.Faculty{ID: 3, Name: "FOST", InstitutionID: 1}
		repo.On("CreateFaculty", ctx, &models.Faculty{Name: "FOST", InstitutionID: 1}).Return(created, nil)
		repo.On("GetAllFaculties", ctx).Return([]*models.Faculty{created}, nil).Once()

		f, err := svc.CreateFaculty(ctx, &dto.CreateFacultyRequest{Name: " FOST ", InstitutionID: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(3), f.ID)

		faculties, err := svc.GetAllFaculties(ctx)
		require.NoError(t, err)
		assert.Equal(t, []*models.Faculty{created}, faculties)
		repo.AssertNumberOfCalls(t, "GetAllFaculties", 1)
	})

	t.Run("blank name", func(t *testing.T) {
		repo := &mockFacultyRepo{}
		svc := NewFacultyService(repo, nil, 0)

		_, err := svc.CreateFaculty(ctx, &dto.CreateFacultyRequest{Name: " ", InstitutionID: 1})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		repo.AssertNotCalled(t, "CreateFaculty", mock.Anything, mock.Anything)
	})

	t.Run("unknown institution is a validation error", func(t *testing.T) {
		repo := &mockFacultyRepo{}
		repo.On("CreateFaculty", ctx, &models.Faculty{Name: "FOST", InstitutionID: 42}).
			Return(nil, apperrors.ErrInstitutionNotFound)
		svc := NewFacultyService(repo, nil, 0)

		_, err := svc.CreateFaculty(ctx, &dto.CreateFacultyRequest{Name: "FOST", InstitutionID: 42})

		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}

func TestCourseService(t *testing.T) {
	ctx := context.Background()

	t.Run("maps faculty and institution fields", func(t *testing.T) {
		repo := &mockCourseRepo{}
		repo.On("CreateCourse", ctx, &models.Course{Name: "CS101", FacultyID: 1, InstitutionID: 2}).
			Return(&models.Course{ID: 8, Name: "CS101", FacultyID: 1, InstitutionID: 2}, nil)
		svc := NewCourseService(repo, nil, 0)

		c, err := svc.CreateCourse(ctx, &dto.CreateCourseRequest{Name: "CS101", Faculty: 1, Institution: 2})

		require.NoError(t, err)
		assert.Equal(t, int64(8), c.ID)
	})

	t.Run("unknown faculty", func(t *testing.T) {
		repo := &mockCourseRepo{}
		repo.On("CreateCourse", ctx, &models.Course{Name: "CS101", FacultyID: 9, InstitutionID: 2}).
			Return(nil, apperrors.ErrFacultyNotFound)
		svc := NewCourseService(repo, nil, 0)

		_, err := svc.CreateCourse(ctx, &dto.CreateCourseRequest{Name: "CS101", Faculty: 9, Institution: 2})

		require.ErrorIs(t, err, apperrors.ErrValidationFailed)
		msg, _ := apperrors.UserMessage(err)
		assert.Equal(t, "Faculty does not exist", msg)
	})

	t.Run("listing is cached", func(t *testing.T) {
		repo := &mockCourseRepo{}
		store := newMemoryStore()
		listing := []*models.CourseListing{{
			Course:       models.Course{ID: 1, Name: "CS101", FacultyID: 1, InstitutionID: 2},
			University:   "NUL",
			Requirements: models.CourseRequirementsPlaceholder,
		}}
		repo.On("GetCourseListings", ctx).Return(listing, nil).Once()
		svc := NewCourseService(repo, store, time.Minute)

		_, err := svc.GetCourseListings(ctx)
		require.NoError(t, err)
		cached, err := svc.GetCourseListings(ctx)
		require.NoError(t, err)

		assert.Equal(t, listing, cached)
		repo.AssertNumberOfCalls(t, "GetCourseListings", 1)
	})

	t.Run("write during a cache fill is not hidden", func(t *testing.T) {
		repo := &mockCourseRepo{}
		store := newMemoryStore()
		svc := NewCourseService(repo, store, time.Minute)

		stale := []*models.CourseListing{{Course: models.Course{ID: 1, Name: "CS101"}}}
		fresh := []*models.CourseListing{stale[0], {Course: models.Course{ID: 2, Name: "CS102"}}}

		repo.On("CreateCourse", ctx, mock.Anything).Return(&models.Course{ID: 2, Name: "CS102"}, nil)
		// The first read fetches its rows, then a course is created before it fills the cache.
		repo.On("GetCourseListings", ctx).Return(stale, nil).Once().Run(func(mock.Arguments) {
			_, err := svc.CreateCourse(ctx, &dto.CreateCourseRequest{Name: "CS102", Faculty: 1, Institution: 1})
			require.NoError(t, err)
		})
		repo.On("GetCourseListings", ctx).Return(fresh, nil).Once()

		first, err := svc.GetCourseListings(ctx)
		require.NoError(t, err)
		assert.Equal(t, stale, first)

		second, err := svc.GetCourseListings(ctx)
		require.NoError(t, err)
		assert.Equal(t, fresh, second)
		repo.AssertNumberOfCalls(t, "GetCourseListings", 2)
	})
}

func TestCatalogCache_LateFillIsNotServed(t *testing.T) {
	ctx := context.Background()
	c := newCatalogCache(newMemoryStore(), time.Minute)

	var got []string
	generation, hit := c.load(ctx, cacheKeyCourses, &got)
	require.False(t, hit)

	c.invalidate(ctx, cacheKeyCourses)
	c.save(ctx, cacheKeyCourses, generation, []string{"stale"})

	_, hit = c.load(ctx, cacheKeyCourses, &got)
	assert.False(t, hit)

	generation, _ = c.load(ctx, cacheKeyCourses, &got)
	c.save(ctx, cacheKeyCourses, generation, []string{"fresh"})
	_, hit = c.load(ctx, cacheKeyCourses, &got)
	assert.True(t, hit)
	assert.Equal(t, []string{"fresh"}, got)
}

func TestCatalogCache_NilStore(t *testing.T) {
	ctx := context.Background()
	c := newCatalogCache(nil, time.Minute)

	var got []string
	generation, hit := c.load(ctx, cacheKeyCourses, &got)
	assert.False(t, hit)
	c.save(ctx, cacheKeyCourses, generation, []string{"x"})
	c.invalidate(ctx, cacheKeyCourses)
}
