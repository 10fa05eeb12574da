package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/careerguide/internal/app/models/dto"
	"github.com/yigit/careerguide/internal/app/services"
	"github.com/yigit/careerguide/internal/middleware"
)

// FacultyController handles faculty-related operations
type FacultyController struct {
	facultyService services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService services.FacultyService) *FacultyController {
	return &FacultyController{facultyService: facultyService}
}

// CreateFaculty handles faculty creation
// @Summary Create a new faculty
// @Tags faculties
// @Accept json
// @Produce json
// @Param request body dto.CreateFacultyRequest true "Faculty information"
// @Success 201 {object} models.Faculty
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Error adding faculty"
// @Router /faculties [post]
func (c *FacultyController) CreateFaculty(ctx *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err, services.MsgAllFieldsRequired)
		return
	}

	faculty, err := c.facultyService.CreateFaculty(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error adding faculty")
		return
	}
	ctx.JSON(http.StatusCreated, faculty)
}

// GetAllFaculties retrieves all faculties
// @Summary Get all faculties
// @Tags faculties
// @Produce json
// @Success 200 {array} models.Faculty
// @Failure 500 {object} dto.ErrorResponse "Error fetching faculties"
// @Router /faculties [get]
func (c *FacultyController) GetAllFaculties(ctx *gin.Context) {
	faculties, err := c.facultyService.GetAllFaculties(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error fetching faculties")
		return
	}
	ctx.JSON(http.StatusOK, faculties)
}
