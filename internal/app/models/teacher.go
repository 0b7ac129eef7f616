package models

import "github.com/google/uuid"

// Teacher defines the teacher model based on the 'teachers' table
type Teacher struct {
	ID     uuid.UUID `json:"id" db:"id"`
	UserID uuid.UUID `json:"userId" db:"user_id"`
	Title  string    `json:"title" db:"title"`

	// Relations (populated when needed)
	User *User `json:"user,omitempty"`
}
