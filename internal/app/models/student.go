package models

import "github.com/google/uuid"

// Student defines the student model based on the 'students' table
type Student struct {
	ID     uuid.UUID `json:"id" db:"id"`
	UserID uuid.UUID `json:"userId" db:"user_id"`
}
