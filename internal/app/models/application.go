package models

import "time"

// MaxSubjectGrades is the number of subject/grade column pairs on an application
const MaxSubjectGrades = 8

// SubjectGrade is one positional subject/grade pair
type SubjectGrade struct {
	Subject string `json:"subject" example:"Mathematics"`
	Grade   string `json:"grade" example:"A"`
}

// Application is a student's request for placement into a course
type Application struct {
	ID           int64                          `json:"id" db:"id"`
	StudentName  string                         `json:"student_name" db:"student_name"`
	PhoneNumber  string                         `json:"phone_number" db:"phone_number"`
	StudentID    string                         `json:"student_id" db:"student_id"`
	University   string                         `json:"university" db:"university"`
	CourseID     int64                          `json:"course_id" db:"course_id"`
	Faculty      string                         `json:"faculty" db:"faculty"`
	MajorSubject string                         `json:"major_subject" db:"major_subject"`
	Grades       [MaxSubjectGrades]SubjectGrade `json:"grades"`
	CreatedAt    time.Time                      `json:"created_at" db:"created_at"`
}

// NormalizeGrades pads grades with empty pairs up to MaxSubjectGrades and
// drops anything past it, so position N always maps to subjectN/gradeN.
func NormalizeGrades(grades []SubjectGrade) [MaxSubjectGrades]SubjectGrade {
	var out [MaxSubjectGrades]SubjectGrade
	copy(out[:], grades)
	return out
}
