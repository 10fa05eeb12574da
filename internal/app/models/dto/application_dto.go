package dto

import "github.com/yigit/careerguide/internal/app/models"

// SubmitApplicationRequest represents a student application
type SubmitApplicationRequest struct {
	StudentName  string                `json:"student_name" binding:"required" example:"Lerato Nthane"`
	PhoneNumber  string                `json:"phone_number" binding:"required" example:"+26658123456"`
	StudentID    string                `json:"student_id" binding:"required" example:"S-2024-001"`
	University   string                `json:"university" binding:"required" example:"National University of Lesotho"`
	CourseID     int64                 `json:"course_id" binding:"required,gt=0" example:"3"`
	Faculty      string                `json:"faculty" binding:"required" example:"Science"`
	MajorSubject string                `json:"major_subject" binding:"required" example:"Computer Science"`
	Grades       []models.SubjectGrade `json:"grades"`
}

// SubmitApplicationResponse is returned after an application is stored
type SubmitApplicationResponse struct {
	Message       string `json:"message" example:"Application submitted successfully"`
	ApplicationID int64  `json:"application_id" example:"12"`
}

// PublishAdmissionsRequest lists the applications to admit
type PublishAdmissionsRequest struct {
	ApplicationIDs []int64 `json:"application_ids" binding:"required,min=1"`
}

// PublishAdmissionsResponse summarises a publish run
type PublishAdmissionsResponse struct {
	Message   string `json:"message" example:"Admissions published successfully"`
	Published int    `json:"published" example:"2"`
	Skipped   int    `json:"skipped" example:"1"`
}
