package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// StudentCoursesRequest is the body of the student course listing. StudentID
// is optional; without it the student is taken from the credential.
type StudentCoursesRequest struct {
	StudentID *uuid.UUID `json:"studentId" example:"5c1d3c0e-8a4a-4e56-9f0a-0d4e0d1a2b3c"`
}

// UnmarshalJSON accepts the bare id form (`"<uuid>"` or `null`) as well as
// the object form `{"studentId": "<uuid>"}`.
func (r *StudentCoursesRequest) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		r.StudentID = nil
		return nil
	case len(data) > 0 && data[0] == '"':
		var id uuid.UUID
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		r.StudentID = &id
		return nil
	}

	type object StudentCoursesRequest
	var o object
	if err := json.Unmarshal(data, &o); err != nil {
		return err
	}
	*r = StudentCoursesRequest(o)
	return nil
}

// StudentCourseDTO is one enrollment as seen by the student
type StudentCourseDTO struct {
	CourseID          uuid.UUID `json:"courseId"`
	CourseCode        string    `json:"courseCode" example:"GO101"`
	CourseName        string    `json:"courseName" example:"Go Fundamentals"`
	CourseDescription string    `json:"courseDescription"`
	CategoryID        uuid.UUID `json:"categoryId"`
	TeacherID         uuid.UUID `json:"teacherId"`
	TeacherTitle      string    `json:"teacherTitle" example:"Lecturer"`
	TeacherName       string    `json:"teacherName,omitempty" example:"Ada Lovelace"`
	EnrollDate        time.Time `json:"enrollDate"`
}

// TeacherCourseDTO is a course as seen by the teacher who gives it
type TeacherCourseDTO struct {
	CourseID    uuid.UUID `json:"courseId"`
	Code        string    `json:"code" example:"GO101"`
	Name        string    `json:"name" example:"Go Fundamentals"`
	Description string    `json:"description"`
	CategoryID  uuid.UUID `json:"categoryId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CourseDTO is the public course detail including its category
type CourseDTO struct {
	CourseID            uuid.UUID `json:"courseId"`
	Code                string    `json:"code" example:"GO101"`
	Name                string    `json:"name" example:"Go Fundamentals"`
	Description         string    `json:"description"`
	TeacherID           uuid.UUID `json:"teacherId"`
	CategoryID          uuid.UUID `json:"categoryId"`
	CategoryName        string    `json:"categoryName" example:"Programming"`
	CategoryDescription string    `json:"categoryDescription"`
}

// CategoryDTO is a catalog category
type CategoryDTO struct {
	CategoryID  uuid.UUID `json:"categoryId"`
	Name        string    `json:"name" example:"Programming"`
	Description string    `json:"description"`
}

// EnrollmentResponse is returned after a successful enroll
type EnrollmentResponse struct {
	StudentID  uuid.UUID `json:"studentId"`
	CourseID   uuid.UUID `json:"courseId"`
	EnrollDate time.Time `json:"enrollDate"`
}
