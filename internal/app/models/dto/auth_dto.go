package dto

import "mime/multipart"

// RegisterRequest is the multipart registration form
type RegisterRequest struct {
	Name           string                `form:"name" binding:"required"`
	Email          string                `form:"email" binding:"required"`
	Password       string                `form:"password" binding:"required"`
	UserType       string                `form:"user_type" binding:"required"`
	ProfilePicture *multipart.FileHeader `form:"profilePicture" binding:"required" swaggerignore:"true"`
}

// RegisterResponse is returned after a user is created
type RegisterResponse struct {
	Message string `json:"message" example:"User registered successfully"`
	UserID  int64  `json:"user_id" example:"1"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"thabo@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// LoginUser is the profile subset returned on login
type LoginUser struct {
	ID             int64  `json:"id" example:"1"`
	UserType       string `json:"user_type" example:"student"`
	Name           string `json:"name" example:"Thabo Mokoena"`
	Email          string `json:"email" example:"thabo@example.com"`
	ProfilePicture string `json:"profile_picture" example:"uploads/profile_pictures/1700000000000_me.png"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	Message string    `json:"message" example:"Login successful"`
	User    LoginUser `json:"user"`
}
