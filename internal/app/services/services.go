package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/yigit/coursehub/internal/app/models"
)

// Services defined in this package:
// - CourseService: enrollments, teacher courses and the course catalog
// - AuthService: issues access tokens for existing accounts
//
// The store interfaces below are what the services need from storage. The
// repositories package satisfies them; tests use in-memory fakes.

// IdentityResolver turns an Authorization credential into an account id
type IdentityResolver interface {
	ResolveAccountID(credential string) (uuid.UUID, error)
}

// IdentityStore follows the account -> user -> teacher | student chain
type IdentityStore interface {
	GetAccountByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*models.Account, error)
	GetUserByAccountID(ctx context.Context, accountID uuid.UUID) (*models.User, error)
	GetTeacherByUserID(ctx context.Context, userID uuid.UUID) (*models.Teacher, error)
	GetStudentByUserID(ctx context.Context, userID uuid.UUID) (*models.Student, error)
}

// CourseStore reads courses
type CourseStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	GetByTeacherID(ctx context.Context, teacherID uuid.UUID) ([]*models.Course, error)
	GetAllWithCategory(ctx context.Context) ([]*models.Course, error)
}

// CategoryStore reads categories
type CategoryStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	GetAll(ctx context.Context) ([]*models.Category, error)
}

// EnrollmentStore manages student_courses rows
type EnrollmentStore interface {
	GetByStudentID(ctx context.Context, studentID uuid.UUID) ([]*models.StudentCourse, error)
	Exists(ctx context.Context, studentID, courseID uuid.UUID) (bool, error)
	Create(ctx context.Context, sc *models.StudentCourse) error
	Delete(ctx context.Context, studentID, courseID uuid.UUID) error
}
