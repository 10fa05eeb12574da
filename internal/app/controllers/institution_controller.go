package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/careerguide/internal/app/models/dto"
	"github.com/yigit/careerguide/internal/app/services"
	"github.com/yigit/careerguide/internal/middleware"
)

// InstitutionController handles institution endpoints
type InstitutionController struct {
	institutionService services.InstitutionService
}

// NewInstitutionController creates a new InstitutionController
func NewInstitutionController(institutionService services.InstitutionService) *InstitutionController {
	return &InstitutionController{institutionService: institutionService}
}

// GetAllInstitutions lists institutions
// @Summary List institutions
// @Tags institutions
// @Produce json
// @Success 200 {array} models.Institution
// @Failure 500 {object} dto.ErrorResponse "Error fetching institutions"
// @Router /institutions [get]
func (c *InstitutionController) GetAllInstitutions(ctx *gin.Context) {
	institutions, err := c.institutionService.GetAllInstitutions(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error fetching institutions")
		return
	}
	ctx.JSON(http.StatusOK, institutions)
}

// GetUniversities lists the id, name and logo of every institution
// @Summary List universities
// @Tags institutions
// @Produce json
// @Success 200 {array} models.University
// @Failure 500 {object} dto.ErrorResponse "Error fetching universities"
// @Router /university [get]
func (c *InstitutionController) GetUniversities(ctx *gin.Context) {
	universities, err := c.institutionService.GetUniversities(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error fetching universities")
		return
	}
	ctx.JSON(http.StatusOK, universities)
}

// CreateInstitution adds an institution
// @Summary Create an institution
// @Tags institutions
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Name"
// @Param number_of_students formData int true "Number of students"
// @Param number_of_departments formData int true "Number of departments"
// @Param number_of_courses formData int true "Number of courses"
// @Param logo formData file true "Logo image"
// @Success 201 {object} models.Institution
// @Failure 400 {object} dto.ErrorResponse "Missing fields, bad numbers or invalid file type"
// @Failure 500 {object} dto.ErrorResponse "Error adding institution"
// @Router /institutions [post]
func (c *InstitutionController) CreateInstitution(ctx *gin.Context) {
	var req dto.CreateInstitutionRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(ctx, err, services.MsgAllFieldsRequired)
		return
	}

	inst, err := c.institutionService.CreateInstitution(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error adding institution")
		return
	}
	ctx.JSON(http.StatusCreated, inst)
}

// DeleteInstitution removes an institution with its faculties and courses
// @Summary Delete an institution
// @Tags institutions
// @Produce json
// @Param id path int true "Institution ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid institution ID"
// @Failure 404 {object} dto.ErrorResponse "Institution not found"
// @Failure 500 {object} dto.ErrorResponse "Error deleting institution"
// @Router /institutions/{id} [delete]
func (c *InstitutionController) DeleteInstitution(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid institution ID")
	if !ok {
		return
	}

	if err := c.institutionService.DeleteInstitution(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err, "Error deleting institution")
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Institution deleted successfully"})
}
