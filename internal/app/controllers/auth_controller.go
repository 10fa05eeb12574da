package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/careerguide/internal/app/models/dto"
	"github.com/yigit/careerguide/internal/app/services"
	"github.com/yigit/careerguide/internal/middleware"
)

// AuthController handles registration and login
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register handles user registration
// @Summary Register a user
// @Description Creates a user from a multipart form with a profile picture (jpeg, jpg, png or gif)
// @Tags auth
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Full name"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param user_type formData string true "User type"
// @Param profilePicture formData file true "Profile picture"
// @Success 201 {object} dto.RegisterResponse "User registered"
// @Failure 400 {object} dto.ErrorResponse "Missing fields or invalid file type"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(ctx, err, services.MsgAllFieldsRequired)
		return
	}

	id, err := c.authService.Register(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error registering user")
		return
	}

	ctx.JSON(http.StatusCreated, dto.RegisterResponse{
		Message: "User registered successfully",
		UserID:  id,
	})
}

// Login handles user login
// @Summary Log in
// @Description Checks email and password and returns the stored profile. No token is issued.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Missing fields"
// @Failure 401 {object} dto.ErrorResponse "Invalid email or password"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err, services.MsgEmailPasswordRequired)
		return
	}

	user, err := c.authService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error logging in")
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		User:    *user,
	})
}
