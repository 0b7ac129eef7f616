package models

import (
	"time"

	"github.com/google/uuid"
)

// StudentCourse is one enrollment: student StudentID takes course CourseID
// since EnrollDate. The pair (StudentID, CourseID) is unique.
type StudentCourse struct {
	StudentID  uuid.UUID `json:"studentId" db:"student_id"`
	CourseID   uuid.UUID `json:"courseId" db:"course_id"`
	EnrollDate time.Time `json:"enrollDate" db:"enroll_date"`

	// Relations (populated when needed)
	Course  *Course  `json:"course,omitempty"`
	Teacher *Teacher `json:"teacher,omitempty"`
}
