package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/careerguide/internal/app/models/dto"
	"github.com/yigit/careerguide/internal/app/services"
	"github.com/yigit/careerguide/internal/middleware"
)

// AdmissionController handles admission publishing
type AdmissionController struct {
	admissionService services.AdmissionService
}

// NewAdmissionController creates a new AdmissionController
func NewAdmissionController(admissionService services.AdmissionService) *AdmissionController {
	return &AdmissionController{admissionService: admissionService}
}

// PublishAdmissions admits the listed applications in one transaction
// @Summary Publish admissions
// @Description Unknown application ids and existing admissions are skipped.
// @Tags admissions
// @Accept json
// @Produce json
// @Param request body dto.PublishAdmissionsRequest true "Application ids"
// @Success 200 {object} dto.PublishAdmissionsResponse
// @Failure 400 {object} dto.ErrorResponse "application_ids must be a non-empty array"
// @Failure 500 {object} dto.ErrorResponse "Error publishing admissions"
// @Router /publish-admissions [post]
func (c *AdmissionController) PublishAdmissions(ctx *gin.Context) {
	var req dto.PublishAdmissionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err, services.MsgApplicationIDsRequired)
		return
	}

	result, err := c.admissionService.PublishAdmissions(ctx, req.ApplicationIDs)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error publishing admissions")
		return
	}

	ctx.JSON(http.StatusOK, dto.PublishAdmissionsResponse{
		Message:   "Admissions published successfully",
		Published: result.Published,
		Skipped:   result.Skipped,
	})
}

// GetAllAdmissions lists admissions
// @Summary List admissions
// @Tags admissions
// @Produce json
// @Success 200 {array} models.Admission
// @Failure 500 {object} dto.ErrorResponse "Error fetching admissions"
// @Router /admissions [get]
func (c *AdmissionController) GetAllAdmissions(ctx *gin.Context) {
	admissions, err := c.admissionService.GetAllAdmissions(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error fetching admissions")
		return
	}
	ctx.JSON(http.StatusOK, admissions)
}
