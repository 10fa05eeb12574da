package models

// Faculty belongs to an institution
type Faculty struct {
	ID            int64  `json:"id" db:"id" example:"1"`
	Name          string `json:"name" db:"name" example:"Faculty of Science and Technology"`
	InstitutionID int64  `json:"institution_id" db:"institution_id" example:"1"`
}
