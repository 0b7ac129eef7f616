package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/metrics"
)

// Client-facing messages
const (
	MsgAccountNotRecognized = "Account not recognized"
	MsgUserNotFound         = "User associated with this account is not found"
	MsgTeacherNotFound      = "Teacher associated with this account is not found"
	MsgNoTeacherCourses     = "No courses found for this teacher"
	MsgAlreadyEnrolled      = "Student already enrolled this course!"
	MsgNotEnrolled          = "Student was not enroll this course!"
	MsgCourseNotFound       = "Course with this id is not exist"
)

// CourseService defines course and enrollment operations
type CourseService interface {
	ListStudentCourses(ctx context.Context, studentID *uuid.UUID, credential string) ([]dto.StudentCourseDTO, error)
	ListTeacherCourses(ctx context.Context, credential string) ([]dto.TeacherCourseDTO, error)
	Enroll(ctx context.Context, credential string, courseID uuid.UUID) (*dto.EnrollmentResponse, error)
	Unenroll(ctx context.Context, credential string, courseID uuid.UUID) error
	GetCourse(ctx context.Context, courseID uuid.UUID) (*dto.CourseDTO, error)
	ListCourses(ctx context.Context) ([]dto.CourseDTO, error)
	ListCategories(ctx context.Context) ([]dto.CategoryDTO, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	identity    IdentityResolver
	users       IdentityStore
	courses     CourseStore
	categories  CategoryStore
	enrollments EnrollmentStore
	logger      zerolog.Logger
	now         func() time.Time
}

// NewCourseService creates a new course service instance
func NewCourseService(
	identity IdentityResolver,
	users IdentityStore,
	courses CourseStore,
	categories CategoryStore,
	enrollments EnrollmentStore,
	logger zerolog.Logger,
) CourseService {
	return &courseServiceImpl{
		identity:    identity,
		users:       users,
		courses:     courses,
		categories:  categories,
		enrollments: enrollments,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// resolveUser walks credential -> account -> user. A missing account is
// reported with accountMsg, a missing user with MsgUserNotFound.
func (s *courseServiceImpl) resolveUser(ctx context.Context, credential, accountMsg string) (*models.User, error) {
	accountID, err := s.identity.ResolveAccountID(credential)
	if err != nil {
		return nil, err
	}

	account, err := s.users.GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.NewResourceNotFoundError(accountMsg)
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	user, err := s.users.GetUserByAccountID(ctx, account.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.NewResourceNotFoundError(MsgUserNotFound)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	return user, nil
}

// resolveStudent derives the calling student from the credential
func (s *courseServiceImpl) resolveStudent(ctx context.Context, credential string) (*models.Student, error) {
	user, err := s.resolveUser(ctx, credential, MsgUserNotFound)
	if err != nil {
		return nil, err
	}

	student, err := s.users.GetStudentByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.NewResourceNotFoundError(MsgUserNotFound)
		}
		return nil, fmt.Errorf("failed to load student: %w", err)
	}

	return student, nil
}

// ListStudentCourses lists a student's enrollments. An explicit studentID
// wins; otherwise the student is derived from the credential. With neither
// the result is empty.
func (s *courseServiceImpl) ListStudentCourses(ctx context.Context, studentID *uuid.UUID, credential string) ([]dto.StudentCourseDTO, error) {
	var id uuid.UUID
	switch {
	case studentID != nil:
		id = *studentID
	case strings.TrimSpace(credential) != "":
		student, err := s.resolveStudent(ctx, credential)
		if err != nil {
			return nil, err
		}
		id = student.ID
	default:
		return []dto.StudentCourseDTO{}, nil
	}

	enrollments, err := s.enrollments.GetByStudentID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list student courses: %w", err)
	}

	result := make([]dto.StudentCourseDTO, 0, len(enrollments))
	for _, sc := range enrollments {
		if sc.Course == nil || sc.Teacher == nil {
			continue
		}
		result = append(result, dto.NewStudentCourseDTO(sc.Course, sc.Teacher, sc))
	}

	return result, nil
}

// ListTeacherCourses lists the courses given by the calling teacher. A
// teacher without courses is reported as not found.
func (s *courseServiceImpl) ListTeacherCourses(ctx context.Context, credential string) ([]dto.TeacherCourseDTO, error) {
	user, err := s.resolveUser(ctx, credential, MsgAccountNotRecognized)
	if err != nil {
		return nil, err
	}

	teacher, err := s.users.GetTeacherByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.NewResourceNotFoundError(MsgTeacherNotFound)
		}
		return nil, fmt.Errorf("failed to load teacher: %w", err)
	}

	courses, err := s.courses.GetByTeacherID(ctx, teacher.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teacher courses: %w", err)
	}
	if len(courses) == 0 {
		return nil, apperrors.NewResourceNotFoundError(MsgNoTeacherCourses)
	}

	result := make([]dto.TeacherCourseDTO, 0, len(courses))
	for _, course := range courses {
		result = append(result, dto.NewTeacherCourseDTO(course))
	}

	return result, nil
}

// Enroll enrolls the calling student in a course
func (s *courseServiceImpl) Enroll(ctx context.Context, credential string, courseID uuid.UUID) (*dto.EnrollmentResponse, error) {
	student, err := s.resolveStudent(ctx, credential)
	if err != nil {
		s.recordIdentityFailure(metrics.OpEnroll, err)
		return nil, err
	}

	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			metrics.RecordEnrollment(metrics.OpEnroll, metrics.ResultNotFound)
			return nil, apperrors.NewResourceNotFoundError(MsgCourseNotFound)
		}
		return nil, s.enrollFailed(metrics.OpEnroll, fmt.Errorf("failed to load course: %w", err))
	}

	exists, err := s.enrollments.Exists(ctx, student.ID, courseID)
	if err != nil {
		return nil, s.enrollFailed(metrics.OpEnroll, fmt.Errorf("failed to check enrollment: %w", err))
	}
	if exists {
		metrics.RecordEnrollment(metrics.OpEnroll, metrics.ResultConflict)
		return nil, apperrors.NewConflictError(MsgAlreadyEnrolled)
	}

	sc := &models.StudentCourse{
		StudentID:  student.ID,
		CourseID:   courseID,
		EnrollDate: s.now(),
	}
	if err := s.enrollments.Create(ctx, sc); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrConflict):
			metrics.RecordEnrollment(metrics.OpEnroll, metrics.ResultConflict)
			return nil, apperrors.NewConflictError(MsgAlreadyEnrolled)
		case errors.Is(err, apperrors.ErrCourseNotFound):
			metrics.RecordEnrollment(metrics.OpEnroll, metrics.ResultNotFound)
			return nil, apperrors.NewResourceNotFoundError(MsgCourseNotFound)
		}
		return nil, s.enrollFailed(metrics.OpEnroll, fmt.Errorf("failed to create enrollment: %w", err))
	}

	s.logger.Info().
		Str("studentID", student.ID.String()).
		Str("courseID", courseID.String()).
		Msg("Student enrolled")
	metrics.RecordEnrollment(metrics.OpEnroll, metrics.ResultSuccess)

	resp := dto.NewEnrollmentResponse(sc)
	return &resp, nil
}

// Unenroll removes the calling student's enrollment in a course
func (s *courseServiceImpl) Unenroll(ctx context.Context, credential string, courseID uuid.UUID) error {
	student, err := s.resolveStudent(ctx, credential)
	if err != nil {
		s.recordIdentityFailure(metrics.OpUnenroll, err)
		return err
	}

	if err := s.enrollments.Delete(ctx, student.ID, courseID); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			metrics.RecordEnrollment(metrics.OpUnenroll, metrics.ResultNotFound)
			return apperrors.NewResourceNotFoundError(MsgNotEnrolled)
		}
		return s.enrollFailed(metrics.OpUnenroll, fmt.Errorf("failed to delete enrollment: %w", err))
	}

	s.logger.Info().
		Str("studentID", student.ID.String()).
		Str("courseID", courseID.String()).
		Msg("Student unenrolled")
	metrics.RecordEnrollment(metrics.OpUnenroll, metrics.ResultSuccess)

	return nil
}

func (s *courseServiceImpl) recordIdentityFailure(op string, err error) {
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		metrics.RecordEnrollment(op, metrics.ResultNotFound)
		return
	}
	metrics.RecordEnrollment(op, metrics.ResultError)
}

func (s *courseServiceImpl) enrollFailed(op string, err error) error {
	metrics.RecordEnrollment(op, metrics.ResultError)
	return err
}

// GetCourse returns a course with its category
func (s *courseServiceImpl) GetCourse(ctx context.Context, courseID uuid.UUID) (*dto.CourseDTO, error) {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.NewResourceNotFoundError(MsgCourseNotFound)
		}
		return nil, fmt.Errorf("failed to load course: %w", err)
	}

	category, err := s.categories.GetByID(ctx, course.CategoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			s.logger.Warn().
				Str("courseID", course.ID.String()).
				Str("categoryID", course.CategoryID.String()).
				Msg("Course references a missing category")
			return nil, apperrors.NewResourceNotFoundError(MsgCourseNotFound)
		}
		return nil, fmt.Errorf("failed to load category: %w", err)
	}

	result := dto.NewCourseDTO(course, category)
	return &result, nil
}

// ListCourses returns the catalog ordered by course name
func (s *courseServiceImpl) ListCourses(ctx context.Context) ([]dto.CourseDTO, error) {
	courses, err := s.courses.GetAllWithCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	result := make([]dto.CourseDTO, 0, len(courses))
	for _, course := range courses {
		if course.Category == nil {
			continue
		}
		result = append(result, dto.NewCourseDTO(course, course.Category))
	}

	return result, nil
}

// ListCategories returns all categories ordered by name
func (s *courseServiceImpl) ListCategories(ctx context.Context) ([]dto.CategoryDTO, error) {
	categories, err := s.categories.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	result := make([]dto.CategoryDTO, 0, len(categories))
	for _, category := range categories {
		result = append(result, dto.NewCategoryDTO(category))
	}

	return result, nil
}
