package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID             int64     `json:"id" db:"id" example:"1"`
	Name           string    `json:"name" db:"name" example:"Thabo Mokoena"`
	Email          string    `json:"email" db:"email" example:"thabo@example.com"`
	Password       string    `json:"-" db:"password"` // bcrypt hash, never serialized
	UserType       string    `json:"user_type" db:"user_type" example:"student"`
	ProfilePicture string    `json:"profile_picture" db:"profile_picture" example:"uploads/profile_pictures/1700000000000_me.png"`
	Phone          *string   `json:"phone" db:"phone" example:"+26650123456"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// ProfileUpdate carries the mutable user fields. A nil ProfilePicture keeps the stored one.
type ProfileUpdate struct {
	Name           string
	Email          string
	Phone          string
	ProfilePicture *string
}
