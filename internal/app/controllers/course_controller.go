package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/careerguide/internal/app/models/dto"
	"github.com/yigit/careerguide/internal/app/services"
	"github.com/yigit/careerguide/internal/middleware"
)

// CourseController handles course endpoints
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// CreateCourse adds a course
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course with faculty and institution ids"
// @Success 201 {object} models.Course
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Error adding course"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err, services.MsgAllFieldsRequired)
		return
	}

	course, err := c.courseService.CreateCourse(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error adding course")
		return
	}
	ctx.JSON(http.StatusCreated, course)
}

// GetCourses lists courses with their institution name
// @Summary List courses
// @Tags courses
// @Produce json
// @Success 200 {array} models.CourseListing
// @Failure 500 {object} dto.ErrorResponse "Error fetching courses"
// @Router /courses [get]
func (c *CourseController) GetCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetCourseListings(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Error fetching courses")
		return
	}
	ctx.JSON(http.StatusOK, courses)
}
