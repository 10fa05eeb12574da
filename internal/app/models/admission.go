package models

import "time"

// AdmissionStatusAdmitted is the status written by admission publishing
const AdmissionStatusAdmitted = "admitted"

// Admission links an accepted application to enrollment status
type Admission struct {
	ID            int64     `json:"id" db:"id"`
	StudentID     string    `json:"student_id" db:"student_id"`
	CourseID      int64     `json:"course_id" db:"course_id"`
	InstitutionID *int64    `json:"institution_id" db:"institution_id"`
	FacultyID     *int64    `json:"faculty_id" db:"faculty_id"`
	Status        string    `json:"status" db:"status"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// AdmissionFromApplication builds the admission record published for app.
// Institution and faculty stay unset; applications only name them as text.
func AdmissionFromApplication(app *Application) *Admission {
	return &Admission{
		StudentID: app.StudentID,
		CourseID:  app.CourseID,
		Status:    AdmissionStatusAdmitted,
	}
}
