package dto

import "mime/multipart"

// CreateInstitutionRequest is the multipart institution form. Numeric fields
// arrive as text and are parsed by the service.
type CreateInstitutionRequest struct {
	Name                string                `form:"name" binding:"required"`
	NumberOfStudents    string                `form:"number_of_students" binding:"required"`
	NumberOfDepartments string                `form:"number_of_departments" binding:"required"`
	NumberOfCourses     string                `form:"number_of_courses" binding:"required"`
	Logo                *multipart.FileHeader `form:"logo" binding:"required" swaggerignore:"true"`
}

// CreateFacultyRequest represents a new faculty
type CreateFacultyRequest struct {
	Name          string `json:"name" binding:"required" example:"Faculty of Science and Technology"`
	InstitutionID int64  `json:"institution_id" binding:"required,gt=0" example:"1"`
}

// CreateCourseRequest represents a new course. Field names follow the public API.
type CreateCourseRequest struct {
	Name        string `json:"name" binding:"required" example:"CS101"`
	Faculty     int64  `json:"faculty" binding:"required,gt=0" example:"1"`
	Institution int64  `json:"institution" binding:"required,gt=0" example:"2"`
}
