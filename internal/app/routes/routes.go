package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/careerguide/internal/app/controllers"
)

// Controllers groups the handlers the router mounts
type Controllers struct {
	Auth        *controllers.AuthController
	User        *controllers.UserController
	Institution *controllers.InstitutionController
	Faculty     *controllers.FacultyController
	Course      *controllers.CourseController
	Application *controllers.ApplicationController
	Admission   *controllers.AdmissionController
	Health      *controllers.HealthController
}

// SetupRouter mounts the API at the root and again under /api/v1
func SetupRouter(router *gin.Engine, c *Controllers) {
	registerRoutes(&router.RouterGroup, c)
	registerRoutes(router.Group("/api/v1"), c)

	router.GET("/health", c.Health.Health)
	router.GET("/ping", c.Health.Ping)
}

func registerRoutes(rg *gin.RouterGroup, c *Controllers) {
	// Auth
	rg.POST("/register", c.Auth.Register)
	rg.POST("/login", c.Auth.Login)

	// Users
	rg.GET("/users", c.User.GetAllUsers)
	rg.PUT("/updateProfile/:id", c.User.UpdateProfile)

	// Catalog
	rg.GET("/institutions", c.Institution.GetAllInstitutions)
	rg.POST("/institutions", c.Institution.CreateInstitution)
	rg.DELETE("/institutions/:id", c.Institution.DeleteInstitution)
	rg.GET("/university", c.Institution.GetUniversities)

	rg.GET("/faculties", c.Faculty.GetAllFaculties)
	rg.POST("/faculties", c.Faculty.CreateFaculty)

	rg.GET("/courses", c.Course.GetCourses)
	rg.POST("/courses", c.Course.CreateCourse)

	// Applications and admissions
	rg.POST("/apply", c.Application.SubmitApplication)
	rg.GET("/applications", c.Application.GetAllApplications)
	rg.POST("/publish-admissions", c.Admission.PublishAdmissions)
	rg.GET("/admissions", c.Admission.GetAllAdmissions)
}
