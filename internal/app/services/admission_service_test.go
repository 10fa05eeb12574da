package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yigit/careerguide/internal/app/models"
	"github.com/yigit/careerguide/internal/pkg/apperrors"
)

func TestAdmissionService_PublishAdmissions(t *testing.T) {
	ctx := context.Background()

	t.Run("admits found applications and skips the rest", func(t *testing.T) {
		apps := &mockApplicationRepo{}
		adms := &mockAdmissionRepo{}
		tx := &fakeTransactor{}
		svc := NewAdmissionService(tx, apps, adms)

		apps.On("GetApplicationByID", mock.Anything, int64(1)).Return(&models.Application{ID: 1, StudentID: "S-1", CourseID: 3}, nil)
		apps.On("GetApplicationByID", mock.Anything, int64(2)).Return(nil, apperrors.ErrApplicationNotFound)
		apps.On("GetApplicationByID", mock.Anything, int64(3)).Return(&models.Application{ID: 3, StudentID: "S-2", CourseID: 3}, nil)
		adms.On("CreateAdmission", mock.Anything, &models.Admission{StudentID: "S-1", CourseID: 3, Status: "admitted"}).Return(true, nil)
		adms.On("CreateAdmission", mock.Anything, &models.Admission{StudentID: "S-2", CourseID: 3, Status: "admitted"}).Return(false, nil)

		res, err := svc.PublishAdmissions(ctx, []int64{1, 2, 3})

		require.NoError(t, err)
		assert.Equal(t, &PublishResult{Published: 1, Skipped: 2}, res)
		assert.Equal(t, 1, tx.calls)
		assert.False(t, tx.rolledBack)
	})

	t.Run("database error aborts the transaction", func(t *testing.T) {
		apps := &mockApplicationRepo{}
		adms := &mockAdmissionRepo{}
		tx := &fakeTransactor{}
		svc := NewAdmissionService(tx, apps, adms)

		apps.On("GetApplicationByID", mock.Anything, int64(1)).Return(&models.Application{ID: 1, StudentID: "S-1", CourseID: 3}, nil)
		apps.On("GetApplicationByID", mock.Anything, int64(2)).Return(&models.Application{ID: 2, StudentID: "S-2", CourseID: 4}, nil)
		adms.On("CreateAdmission", mock.Anything, mock.MatchedBy(func(a *models.Admission) bool { return a.StudentID == "S-1" })).Return(true, nil)
		adms.On("CreateAdmission", mock.Anything, mock.MatchedBy(func(a *models.Admission) bool { return a.StudentID == "S-2" })).Return(false, errors.New("deadlock"))

		res, err := svc.PublishAdmissions(ctx, []int64{1, 2})

		assert.Nil(t, res)
		assert.EqualError(t, err, "deadlock")
		assert.True(t, tx.rolledBack)
	})

	t.Run("empty list", func(t *testing.T) {
		tx := &fakeTransactor{}
		svc := NewAdmissionService(tx, &mockApplicationRepo{}, &mockAdmissionRepo{})

		_, err := svc.PublishAdmissions(ctx, nil)

		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.Zero(t, tx.calls)
	})
}
