package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups courses
type Category struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
}

// Course belongs to exactly one category and is taught by exactly one teacher.
type Course struct {
	ID          uuid.UUID `json:"id" db:"id"`
	CategoryID  uuid.UUID `json:"categoryId" db:"category_id"`
	TeacherID   uuid.UUID `json:"teacherId" db:"teacher_id"`
	Code        string    `json:"code" db:"code"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Category *Category `json:"category,omitempty"`
	Teacher  *Teacher  `json:"teacher,omitempty"`
}
