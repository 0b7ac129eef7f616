package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/db"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/dberrors"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

const studentCoursesPKey = "student_courses_pkey"

// StudentCourseRepository handles enrollments. The pair
// (student_id, course_id) is the primary key of student_courses.
type StudentCourseRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewStudentCourseRepository creates a new StudentCourseRepository
func NewStudentCourseRepository(conn db.DBTX) *StudentCourseRepository {
	return &StudentCourseRepository{
		db: conn,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts an enrollment. A primary key violation means the student
// is already enrolled and is reported as apperrors.ErrAlreadyEnrolled.
func (r *StudentCourseRepository) Create(ctx context.Context, sc *models.StudentCourse) error {
	if sc.EnrollDate.IsZero() {
		sc.EnrollDate = time.Now().UTC()
	}

	sql, args, err := r.sb.Insert("student_courses").
		Columns("student_id", "course_id", "enroll_date").
		Values(sc.StudentID, sc.CourseID, sc.EnrollDate).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create enrollment SQL")
		return fmt.Errorf("failed to build create enrollment query: %w", err)
	}

	if _, err = r.db.Exec(ctx, sql, args...); err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, studentCoursesPKey):
			return apperrors.ErrAlreadyEnrolled
		case dberrors.IsForeignKeyViolation(err, "student_courses_course_id_fkey"):
			return apperrors.ErrCourseNotFound
		case dberrors.IsForeignKeyViolation(err, "student_courses_student_id_fkey"):
			return apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).
			Str("studentID", sc.StudentID.String()).
			Str("courseID", sc.CourseID.String()).
			Msg("Error executing create enrollment query")
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}

// Exists reports whether the student is enrolled in the course
func (r *StudentCourseRepository) Exists(ctx context.Context, studentID, courseID uuid.UUID) (bool, error) {
	sql, args, err := r.sb.Select("1").
		Prefix("SELECT EXISTS (").
		From("student_courses").
		Where(squirrel.Eq{"student_id": studentID, "course_id": courseID}).
		Suffix(")").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building enrollment exists SQL")
		return false, fmt.Errorf("failed to build enrollment exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		logger.Error().Err(err).Msg("Error checking enrollment existence")
		return false, fmt.Errorf("error checking enrollment: %w", err)
	}

	return exists, nil
}

// Delete removes the enrollment in a single statement. No matching row
// yields apperrors.ErrEnrollmentNotFound.
func (r *StudentCourseRepository) Delete(ctx context.Context, studentID, courseID uuid.UUID) error {
	sql, args, err := r.sb.Delete("student_courses").
		Where(squirrel.Eq{"student_id": studentID, "course_id": courseID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete enrollment SQL")
		return fmt.Errorf("failed to build delete enrollment query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).
			Str("studentID", studentID.String()).
			Str("courseID", courseID.String()).
			Msg("Error executing delete enrollment query")
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

// GetByStudentID returns the student's enrollments with course and teacher
// populated, ordered by enroll date. Enrollments whose course has no
// resolvable category or teacher are left out by the inner joins.
func (r *StudentCourseRepository) GetByStudentID(ctx context.Context, studentID uuid.UUID) ([]*models.StudentCourse, error) {
	sql, args, err := r.sb.Select(
		"sc.student_id", "sc.course_id", "sc.enroll_date",
		"c.id", "c.category_id", "c.teacher_id", "c.code", "c.name", "c.description", "c.created_at",
		"t.id", "t.user_id", "t.title",
		"COALESCE(u.first_name, '')", "COALESCE(u.last_name, '')",
	).
		From("student_courses sc").
		Join("courses c ON c.id = sc.course_id").
		Join("categories cat ON cat.id = c.category_id").
		Join("teachers t ON t.id = c.teacher_id").
		LeftJoin("users u ON u.id = t.user_id").
		Where(squirrel.Eq{"sc.student_id": studentID}).
		OrderBy("sc.enroll_date ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building student courses SQL")
		return nil, fmt.Errorf("failed to build student courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentID", studentID.String()).Msg("Error executing student courses query")
		return nil, fmt.Errorf("error listing student courses: %w", err)
	}
	defer rows.Close()

	var enrollments []*models.StudentCourse
	for rows.Next() {
		course := &models.Course{}
		teacher := &models.Teacher{User: &models.User{}}
		sc := &models.StudentCourse{Course: course, Teacher: teacher}

		if err := rows.Scan(
			&sc.StudentID, &sc.CourseID, &sc.EnrollDate,
			&course.ID, &course.CategoryID, &course.TeacherID, &course.Code, &course.Name, &course.Description, &course.CreatedAt,
			&teacher.ID, &teacher.UserID, &teacher.Title,
			&teacher.User.FirstName, &teacher.User.LastName,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning student course row")
			return nil, fmt.Errorf("error scanning student course: %w", err)
		}
		teacher.User.ID = teacher.UserID
		enrollments = append(enrollments, sc)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student course rows")
		return nil, fmt.Errorf("error iterating student courses: %w", err)
	}

	return enrollments, nil
}
