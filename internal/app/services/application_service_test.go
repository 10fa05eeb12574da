package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yigit/careerguide/internal/app/models"
	"github.com/yigit/careerguide/internal/app/models/dto"
	"github.com/yigit/careerguide/internal/pkg/apperrors"
)

func newApplicationRequest() *dto.SubmitApplicationRequest {
	return &dto.SubmitApplicationRequest{
		StudentName:  "Lerato",
		PhoneNumber:  "555",
		StudentID:    "S-1",
		University:   "NUL",
		CourseID:     3,
		Faculty:      "Science",
		MajorSubject: "CS",
	}
}

func TestApplicationService_SubmitApplication(t *testing.T) {
	ctx := context.Background()

	t.Run("pads grades to eight pairs", func(t *testing.T) {
		repo := &mockApplicationRepo{}
		svc := NewApplicationService(repo)
		req := newApplicationRequest()
		req.Grades = []models.SubjectGrade{{Subject: "Maths", Grade: "A"}, {Subject: "English", Grade: "B"}}

		repo.On("CreateApplication", ctx, mock.MatchedBy(func(a *models.Application) bool {
			return a.Grades[0] == models.SubjectGrade{Subject: "Maths", Grade: "A"} &&
				a.Grades[1] == models.SubjectGrade{Subject: "English", Grade: "B"} &&
				a.Grades[7] == models.SubjectGrade{}
		})).Return(int64(11), nil)

		id, err := svc.SubmitApplication(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, int64(11), id)
		repo.AssertExpectations(t)
	})

	t.Run("drops grades past the eighth", func(t *testing.T) {
		repo := &mockApplicationRepo{}
		svc := NewApplicationService(repo)
		req := newApplicationRequest()
		for i := 0; i < 10; i++ {
			req.Grades = append(req.Grades, models.SubjectGrade{Subject: string(rune('A' + i)), Grade: "C"})
		}

		repo.On("CreateApplication", ctx, mock.MatchedBy(func(a *models.Application) bool {
			return a.Grades[7].Subject == "H"
		})).Return(int64(12), nil)

		_, err := svc.SubmitApplication(ctx, req)
		require.NoError(t, err)
	})

	t.Run("empty grades are allowed", func(t *testing.T) {
		repo := &mockApplicationRepo{}
		repo.On("CreateApplication", ctx, mock.Anything).Return(int64(13), nil)

		_, err := NewApplicationService(repo).SubmitApplication(ctx, newApplicationRequest())
		require.NoError(t, err)
	})

	t.Run("blank field inserts nothing", func(t *testing.T) {
		repo := &mockApplicationRepo{}
		req := newApplicationRequest()
		req.MajorSubject = "   "

		_, err := NewApplicationService(repo).SubmitApplication(ctx, req)

		require.ErrorIs(t, err, apperrors.ErrValidationFailed)
		msg, _ := apperrors.UserMessage(err)
		assert.Equal(t, "All fields are required.", msg)
		repo.AssertNotCalled(t, "CreateApplication", mock.Anything, mock.Anything)
	})
}
