package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yigit/careerguide/internal/app/models"
	"github.com/yigit/careerguide/internal/app/models/dto"
	"github.com/yigit/careerguide/internal/app/repositories"
	"github.com/yigit/careerguide/internal/pkg/apperrors"
	"github.com/yigit/careerguide/internal/pkg/auth"
	"github.com/yigit/careerguide/internal/pkg/filestorage"
	"github.com/yigit/careerguide/internal/pkg/logger"
	"github.com/yigit/careerguide/internal/pkg/validation"
)

// Client-facing messages for registration and login
const (
	MsgAllFieldsRequired      = "All fields are required"
	MsgEmailPasswordRequired  = "Email and password are required"
	MsgInvalidEmailOrPassword = "Invalid email or password"
)

// AuthService handles registration and login
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (int64, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginUser, error)
}

type authServiceImpl struct {
	userRepo       repositories.IUserRepository
	fileStorage    filestorage.FileStorage
	maxUploadBytes int64
}

// NewAuthService creates a new authentication service
func NewAuthService(userRepo repositories.IUserRepository, fileStorage filestorage.FileStorage, maxUploadBytes int64) AuthService {
	return &authServiceImpl{
		userRepo:       userRepo,
		fileStorage:    fileStorage,
		maxUploadBytes: maxUploadBytes,
	}
}

// Register validates the form, stores the profile picture and creates the user.
// The picture is removed again if the user row cannot be written.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (int64, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	userType := strings.TrimSpace(req.UserType)
	if validation.AnyBlank(name, email, req.Password, userType) {
		return 0, apperrors.NewValidationError(MsgAllFieldsRequired)
	}

	if _, err := filestorage.ValidateImage(req.ProfilePicture, s.maxUploadBytes); err != nil {
		return 0, err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	picturePath, err := s.fileStorage.SaveFile(ctx, req.ProfilePicture, filestorage.ProfilePictureDir)
	if err != nil {
		return 0, fmt.Errorf("failed to store profile picture: %w", err)
	}

	id, err := s.userRepo.CreateUser(ctx, &models.User{
		Name:           name,
		Email:          email,
		Password:       hashed,
		UserType:       userType,
		ProfilePicture: picturePath,
	})
	if err != nil {
		s.discardUpload(ctx, picturePath)
		return 0, err
	}

	logger.Info().Int64("userID", id).Str("userType", userType).Msg("User registered")
	return id, nil
}

// Login checks the credentials and returns the public profile fields
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginUser, error) {
	email := strings.TrimSpace(req.Email)
	if validation.AnyBlank(email, req.Password) {
		return nil, apperrors.NewValidationError(MsgEmailPasswordRequired)
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, MsgInvalidEmailOrPassword)
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, MsgInvalidEmailOrPassword)
	}

	return &dto.LoginUser{
		ID:             user.ID,
		UserType:       user.UserType,
		Name:           user.Name,
		Email:          user.Email,
		ProfilePicture: user.ProfilePicture,
	}, nil
}

func (s *authServiceImpl) discardUpload(ctx context.Context, storedPath string) {
	if err := s.fileStorage.DeleteFile(ctx, storedPath); err != nil {
		logger.Warn().Err(err).Str("path", storedPath).Msg("Failed to remove orphaned upload")
	}
}
