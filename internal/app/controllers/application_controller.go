package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/careerguide/internal/app/models/dto"
	"github.com/yigit/careerguide/internal/app/services"
	"github.com/yigit/careerguide/internal/middleware"
)

// ApplicationController handles application intake
type ApplicationController struct {
	applicationService services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService services.ApplicationService) *ApplicationController {
	return &ApplicationController{applicationService: applicationService}
}

// SubmitApplication stores a student application
// @Summary Apply for a course
// @Description Grades are optional; up to eight subject/grade pairs are kept.
// @Tags applications
// @Accept json
// @Produce json
// @Param request body dto.SubmitApplicationRequest true "Application"
// @Success 201 {object} dto.SubmitApplicationResponse
// @Failure 400 {object} dto.ErrorResponse "All fields are required."
// @Failure 500 {object} dto.ErrorResponse "Error submitting application"
// @Router /apply [post]
func (c *ApplicationController) SubmitApplication(ctx *gin.Context) {
	var req dto.SubmitApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err, services.MsgApplicationFieldsRequired)
		return
	}

	id, err := c.applicationService.SubmitApplication(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error submitting application")
		return
	}

	ctx.JSON(http.StatusCreated, dto.SubmitApplicationResponse{
		Message:       "Application submitted successfully",
		ApplicationID: id,
	})
}

// GetAllApplications lists applications
// @Summary List applications
// @Tags applications
// @Produce json
// @Success 200 {array} models.Application
// @Failure 500 {object} dto.ErrorResponse "Error fetching applications"
// @Router /applications [get]
func (c *ApplicationController) GetAllApplications(ctx *gin.Context) {
	apps, err := c.applicationService.GetAllApplications(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error fetching applications")
		return
	}
	ctx.JSON(http.StatusOK, apps)
}
