package models

import "time"

// Institution is a university or college with aggregate statistics and a logo
type Institution struct {
	ID                  int64     `json:"id" db:"id" example:"1"`
	Name                string    `json:"name" db:"name" example:"National University of Lesotho"`
	NumberOfStudents    int       `json:"number_of_students" db:"number_of_students" example:"12000"`
	NumberOfDepartments int       `json:"number_of_departments" db:"number_of_departments" example:"40"`
	NumberOfCourses     int       `json:"number_of_courses" db:"number_of_courses" example:"120"`
	Logo                string    `json:"logo" db:"logo" example:"uploads/logos/1700000000000_nul.png"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
}

// University is the public projection of an Institution
type University struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Logo string `json:"logo" db:"logo"`
}
