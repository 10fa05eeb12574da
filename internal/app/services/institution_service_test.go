package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yigit/careerguide/internal/app/models"
	"github.com/yigit/careerguide/internal/app/models/dto"
	"github.com/yigit/careerguide/internal/pkg/apperrors"
	"github.com/yigit/careerguide/internal/pkg/filestorage"
)

func TestInstitutionService_CreateInstitution(t *testing.T) {
	ctx := context.Background()

	validRequest := func(t *testing.T) *dto.CreateInstitutionRequest {
		return &dto.CreateInstitutionRequest{
			Name:                "NUL",
			NumberOfStudents:    "12000",
			NumberOfDepartments: "40",
			NumberOfCourses:     "0",
			Logo:                newFileHeader(t, "logo", "nul.png", "image/png", pngBytes),
		}
	}

	t.Run("creates and invalidates catalog cache", func(t *testing.T) {
		repo := &mockInstitutionRepo{}
		storage := &mockStorage{}
		store := newMemoryStore()
		store.data[entryKey(cacheKeyInstitutions, "0")] = []byte("[]")
		store.data[entryKey(cacheKeyUniversities, "0")] = []byte("[]")
		svc := NewInstitutionService(repo, storage, store, time.Minute, 0)

		storage.On("SaveFile", ctx, mock.Anything, filestorage.InstitutionLogoDir).Return("uploads/logos/1_nul.png", nil)
		repo.On("CreateInstitution", ctx, &models.Institution{
			Name: "NUL", NumberOfStudents: 12000, NumberOfDepartments: 40, NumberOfCourses: 0,
			Logo: "uploads/logos/1_nul.png",
		}).Return(&models.Institution{ID: 5, Name: "NUL", Logo: "uploads/logos/1_nul.png"}, nil)

		inst, err := svc.CreateInstitution(ctx, validRequest(t))

		require.NoError(t, err)
		assert.Equal(t, int64(5), inst.ID)
		var cached []*models.Institution
		_, hit := svc.(*institutionServiceImpl).cache.load(ctx, cacheKeyInstitutions, &cached)
		assert.False(t, hit)
		_, hit = svc.(*institutionServiceImpl).cache.load(ctx, cacheKeyUniversities, &cached)
		assert.False(t, hit)
	})

	t.Run("negative count", func(t *testing.T) {
		storage := &mockStorage{}
		svc := NewInstitutionService(&mockInstitutionRepo{}, storage, nil, 0, 0)
		req := validRequest(t)
		req.NumberOfCourses = "-1"

		_, err := svc.CreateInstitution(ctx, req)

		require.ErrorIs(t, err, apperrors.ErrValidationFailed)
		msg, _ := apperrors.UserMessage(err)
		assert.Equal(t, "number_of_courses must be a non-negative integer", msg)
		storage.AssertNotCalled(t, "SaveFile", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("count beyond column range", func(t *testing.T) {
		repo := &mockInstitutionRepo{}
		storage := &mockStorage{}
		svc := NewInstitutionService(repo, storage, nil, 0, 0)
		req := validRequest(t)
		req.NumberOfStudents = "3000000000"

		_, err := svc.CreateInstitution(ctx, req)

		require.ErrorIs(t, err, apperrors.ErrValidationFailed)
		msg, _ := apperrors.UserMessage(err)
		assert.Equal(t, "number_of_students must be a non-negative integer", msg)
		storage.AssertNotCalled(t, "SaveFile", mock.Anything, mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "CreateInstitution", mock.Anything, mock.Anything)
	})

	t.Run("non numeric count", func(t *testing.T) {
		svc := NewInstitutionService(&mockInstitutionRepo{}, &mockStorage{}, nil, 0, 0)
		req := validRequest(t)
		req.NumberOfStudents = "many"

		_, err := svc.CreateInstitution(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("missing logo", func(t *testing.T) {
		svc := NewInstitutionService(&mockInstitutionRepo{}, &mockStorage{}, nil, 0, 0)
		req := validRequest(t)
		req.Logo = nil

		_, err := svc.CreateInstitution(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("insert failure removes logo", func(t *testing.T) {
		repo := &mockInstitutionRepo{}
		storage := &mockStorage{}
		svc := NewInstitutionService(repo, storage, nil, 0, 0)

		storage.On("SaveFile", ctx, mock.Anything, mock.Anything).Return("uploads/logos/1_nul.png", nil)
		storage.On("DeleteFile", ctx, "uploads/logos/1_nul.png").Return(nil)
		repo.On("CreateInstitution", ctx, mock.Anything).Return(nil, errors.New("insert failed"))

		_, err := svc.CreateInstitution(ctx, validRequest(t))

		assert.Error(t, err)
		storage.AssertExpectations(t)
	})
}

func TestInstitutionService_DeleteInstitution(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes logo and clears every catalog key", func(t *testing.T) {
		repo := &mockInstitutionRepo{}
		storage := &mockStorage{}
		store := newMemoryStore()
		svc := NewInstitutionService(repo, storage, store, time.Minute, 0)

		repo.On("DeleteInstitution", ctx, int64(2)).Return(&models.Institution{ID: 2, Logo: "uploads/logos/1_x.png"}, nil)
		storage.On("DeleteFile", ctx, "uploads/logos/1_x.png").Return(nil)

		require.NoError(t, svc.DeleteInstitution(ctx, 2))
		storage.AssertExpectations(t)
		for _, key := range []string{cacheKeyInstitutions, cacheKeyUniversities, cacheKeyFaculties, cacheKeyCourses} {
			assert.Contains(t, store.data, generationKey(key), key)
		}
	})

	t.Run("logo removal failure is not fatal", func(t *testing.T) {
		repo := &mockInstitutionRepo{}
		storage := &mockStorage{}
		svc := NewInstitutionService(repo, storage, nil, 0, 0)

		repo.On("DeleteInstitution", ctx, int64(2)).Return(&models.Institution{ID: 2, Logo: "uploads/logos/1_x.png"}, nil)
		storage.On("DeleteFile", ctx, mock.Anything).Return(errors.New("disk gone"))

		assert.NoError(t, svc.DeleteInstitution(ctx, 2))
	})

	t.Run("not found", func(t *testing.T) {
		repo := &mockInstitutionRepo{}
		storage := &mockStorage{}
		svc := NewInstitutionService(repo, storage, nil, 0, 0)
		repo.On("DeleteInstitution", ctx, int64(9)).Return(nil, apperrors.ErrInstitutionNotFound)

		err := svc.DeleteInstitution(ctx, 9)

		assert.ErrorIs(t, err, apperrors.ErrInstitutionNotFound)
		storage.AssertNotCalled(t, "DeleteFile", mock.Anything, mock.Anything)
	})
}

func TestInstitutionService_ReadThroughCache(t *testing.T) {
	ctx := context.Background()
	repo := &mockInstitutionRepo{}
	store := newMemoryStore()
	svc := NewInstitutionService(repo, &mockStorage{}, store, time.Minute, 0)

	repo.On("GetUniversities", ctx).Return([]*models.University{{ID: 1, Name: "NUL", Logo: "l.png"}}, nil).Once()

	first, err := svc.GetUniversities(ctx)
	require.NoError(t, err)
	second, err := svc.GetUniversities(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	repo.AssertNumberOfCalls(t, "GetUniversities", 1)
}

func TestInstitutionService_GetAllInstitutionsWithoutCache(t *testing.T) {
	ctx := context.Background()
	repo := &mockInstitutionRepo{}
	svc := NewInstitutionService(repo, &mockStorage{}, nil, 0, 0)

	repo.On("GetAllInstitutions", ctx).Return([]*models.Institution{{ID: 1}}, nil).Twice()

	_, err := svc.GetAllInstitutions(ctx)
	require.NoError(t, err)
	_, err = svc.GetAllInstitutions(ctx)
	require.NoError(t, err)

	repo.AssertNumberOfCalls(t, "GetAllInstitutions", 2)
}
