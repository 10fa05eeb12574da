package dto

import "mime/multipart"

// UpdateProfileRequest is the multipart profile update form
type UpdateProfileRequest struct {
	Name           string                `form:"name" binding:"required"`
	Email          string                `form:"email" binding:"required"`
	Phone          string                `form:"phone" binding:"required"`
	ProfilePicture *multipart.FileHeader `form:"profilePicture" swaggerignore:"true"`
}
