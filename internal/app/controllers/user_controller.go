package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/careerguide/internal/app/models/dto"
	"github.com/yigit/careerguide/internal/app/services"
	"github.com/yigit/careerguide/internal/middleware"
)

// UserController handles user listing and profile updates
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetAllUsers lists users
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Failure 500 {object} dto.ErrorResponse "Error fetching users"
// @Router /users [get]
func (c *UserController) GetAllUsers(ctx *gin.Context) {
	users, err := c.userService.GetAllUsers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error fetching users")
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// UpdateProfile updates a user's profile
// @Summary Update profile
// @Description Updates name, email and phone. A new profile picture is optional.
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "User ID"
// @Param name formData string true "Full name"
// @Param email formData string true "Email"
// @Param phone formData string true "Phone"
// @Param profilePicture formData file false "New profile picture"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid id, missing fields or invalid file type"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Failure 500 {object} dto.ErrorResponse "Error updating profile"
// @Router /updateProfile/{id} [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid user ID")
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(ctx, err, services.MsgProfileFieldsRequired)
		return
	}

	if err := c.userService.UpdateProfile(ctx, id, &req); err != nil {
		middleware.HandleAPIError(ctx, err, "Error updating profile")
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Profile updated successfully"})
}
