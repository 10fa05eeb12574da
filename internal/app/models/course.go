package models

// CourseRequirementsPlaceholder is reported for every course until
// per-course entry requirements are modelled.
const CourseRequirementsPlaceholder = "Requirements not specified"

// Course is offered by a faculty of an institution
type Course struct {
	ID            int64  `json:"id" db:"id" example:"1"`
	Name          string `json:"name" db:"name" example:"CS101"`
	FacultyID     int64  `json:"faculty_id" db:"faculty_id" example:"1"`
	InstitutionID int64  `json:"institution_id" db:"institution_id" example:"2"`
}

// CourseListing is a course joined with its institution's name
type CourseListing struct {
	Course
	University   string `json:"university" db:"university" example:"National University of Lesotho"`
	Requirements string `json:"requirements" example:"Requirements not specified"`
}
