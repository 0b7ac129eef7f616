package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/db"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/dberrors"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

var courseColumns = []string{"c.id", "c.category_id", "c.teacher_id", "c.code", "c.name", "c.description", "c.created_at"}

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(conn db.DBTX) *CourseRepository {
	return &CourseRepository{
		db: conn,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create creates a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	if course.ID == uuid.Nil {
		course.ID = uuid.New()
	}
	if course.CreatedAt.IsZero() {
		course.CreatedAt = time.Now().UTC()
	}

	sql, args, err := r.sb.Insert("courses").
		Columns("id", "category_id", "teacher_id", "code", "name", "description", "created_at").
		Values(course.ID, course.CategoryID, course.TeacherID, course.Code, course.Name, course.Description, course.CreatedAt).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	if _, err = r.db.Exec(ctx, sql, args...); err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, "courses_code_key"):
			return apperrors.NewConflictError("course with this code already exists")
		case dberrors.IsForeignKeyViolation(err, "courses_category_id_fkey"):
			return apperrors.ErrCategoryNotFound
		case dberrors.IsForeignKeyViolation(err, "courses_teacher_id_fkey"):
			return apperrors.ErrTeacherNotFound
		}
		logger.Error().Err(err).Str("code", course.Code).Msg("Error executing create course query")
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns...).
		From("courses c").
		Where(squirrel.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get course SQL")
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course := &models.Course{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&course.ID, &course.CategoryID, &course.TeacherID,
		&course.Code, &course.Name, &course.Description, &course.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Str("courseID", id.String()).Msg("Error scanning course row")
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// GetByTeacherID retrieves the courses given by a teacher, ordered by name
func (r *CourseRepository) GetByTeacherID(ctx context.Context, teacherID uuid.UUID) ([]*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns...).
		From("courses c").
		Where(squirrel.Eq{"c.teacher_id": teacherID}).
		OrderBy("c.name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get courses by teacher SQL")
		return nil, fmt.Errorf("failed to build teacher courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("teacherID", teacherID.String()).Msg("Error executing teacher courses query")
		return nil, fmt.Errorf("error listing teacher courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course := &models.Course{}
		if err := rows.Scan(
			&course.ID, &course.CategoryID, &course.TeacherID,
			&course.Code, &course.Name, &course.Description, &course.CreatedAt,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning course row")
			return nil, fmt.Errorf("error scanning course: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating course rows")
		return nil, fmt.Errorf("error iterating courses: %w", err)
	}

	return courses, nil
}

// GetAllWithCategory retrieves every course joined with its category,
// ordered by course name. Courses without a category are not returned.
func (r *CourseRepository) GetAllWithCategory(ctx context.Context) ([]*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns...).
		Columns("cat.id", "cat.name", "cat.description").
		From("courses c").
		Join("categories cat ON cat.id = c.category_id").
		OrderBy("c.name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list courses SQL")
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list courses query")
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course := &models.Course{Category: &models.Category{}}
		if err := rows.Scan(
			&course.ID, &course.CategoryID, &course.TeacherID,
			&course.Code, &course.Name, &course.Description, &course.CreatedAt,
			&course.Category.ID, &course.Category.Name, &course.Category.Description,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning course with category row")
			return nil, fmt.Errorf("error scanning course: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating course rows")
		return nil, fmt.Errorf("error iterating courses: %w", err)
	}

	return courses, nil
}
