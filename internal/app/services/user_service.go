package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/careerguide/internal/app/models"
	"github.com/yigit/careerguide/internal/app/models/dto"
	"github.com/yigit/careerguide/internal/app/repositories"
	"github.com/yigit/careerguide/internal/pkg/apperrors"
	"github.com/yigit/careerguide/internal/pkg/filestorage"
	"github.com/yigit/careerguide/internal/pkg/logger"
	"github.com/yigit/careerguide/internal/pkg/validation"
)

// MsgProfileFieldsRequired is returned when a profile update misses a field
const MsgProfileFieldsRequired = "Name, email and phone are required"

// UserService handles user listing and profile updates
type UserService interface {
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	UpdateProfile(ctx context.Context, id int64, req *dto.UpdateProfileRequest) error
}

type userServiceImpl struct {
	userRepo       repositories.IUserRepository
	fileStorage    filestorage.FileStorage
	maxUploadBytes int64
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.IUserRepository, fileStorage filestorage.FileStorage, maxUploadBytes int64) UserService {
	return &userServiceImpl{
		userRepo:       userRepo,
		fileStorage:    fileStorage,
		maxUploadBytes: maxUploadBytes,
	}
}

// GetAllUsers returns every user. Password hashes never leave the model.
func (s *userServiceImpl) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.GetAllUsers(ctx)
}

// UpdateProfile rewrites name, email and phone, and replaces the picture when
// one is uploaded. A picture saved for a request that updates nothing is removed.
func (s *userServiceImpl) UpdateProfile(ctx context.Context, id int64, req *dto.UpdateProfileRequest) error {
	update := &models.ProfileUpdate{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.TrimSpace(req.Email),
		Phone: strings.TrimSpace(req.Phone),
	}
	if validation.AnyBlank(update.Name, update.Email, update.Phone) {
		return apperrors.NewValidationError(MsgProfileFieldsRequired)
	}

	var newPicture string
	if req.ProfilePicture != nil {
		if _, err := filestorage.ValidateImage(req.ProfilePicture, s.maxUploadBytes); err != nil {
			return err
		}
		stored, err := s.fileStorage.SaveFile(ctx, req.ProfilePicture, filestorage.ProfilePictureDir)
		if err != nil {
			return fmt.Errorf("failed to store profile picture: %w", err)
		}
		newPicture = stored
		update.ProfilePicture = &newPicture
	}

	found, err := s.userRepo.UpdateProfile(ctx, id, update)
	if err == nil && !found {
		err = apperrors.ErrUserNotFound
	}
	if err != nil {
		if newPicture != "" {
			if delErr := s.fileStorage.DeleteFile(ctx, newPicture); delErr != nil {
				logger.Warn().Err(delErr).Str("path", newPicture).Msg("Failed to remove orphaned upload")
			}
		}
		return err
	}

	logger.Info().Int64("userID", id).Bool("pictureReplaced", newPicture != "").Msg("Profile updated")
	return nil
}
