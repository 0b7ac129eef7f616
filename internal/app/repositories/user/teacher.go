package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/db"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/dberrors"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

// TeacherRepository handles teacher database operations
type TeacherRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewTeacherRepository creates a new TeacherRepository
func NewTeacherRepository(conn db.DBTX) *TeacherRepository {
	return &TeacherRepository{
		db: conn,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateTeacher creates a new teacher
func (r *TeacherRepository) CreateTeacher(ctx context.Context, teacher *models.Teacher) error {
	if teacher.ID == uuid.Nil {
		teacher.ID = uuid.New()
	}

	sql, args, err := r.sb.Insert("teachers").
		Columns("id", "user_id", "title").
		Values(teacher.ID, teacher.UserID, teacher.Title).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create teacher SQL")
		return fmt.Errorf("failed to build create teacher query: %w", err)
	}

	if _, err = r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "teachers_user_id_key") {
			logger.Warn().Str("userID", teacher.UserID.String()).Msg("Attempted to create duplicate teacher entry")
			return apperrors.NewConflictError("teacher entry for this user already exists")
		}
		logger.Error().Err(err).Str("userID", teacher.UserID.String()).Msg("Error executing create teacher query")
		return fmt.Errorf("error creating teacher: %w", err)
	}

	return nil
}

// GetTeacherByUserID retrieves a teacher by user ID
func (r *TeacherRepository) GetTeacherByUserID(ctx context.Context, userID uuid.UUID) (*models.Teacher, error) {
	sql, args, err := r.sb.Select("id", "user_id", "title").
		From("teachers").
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get teacher by user ID SQL")
		return nil, fmt.Errorf("failed to build get teacher query: %w", err)
	}

	var teacher models.Teacher
	err = r.db.QueryRow(ctx, sql, args...).Scan(&teacher.ID, &teacher.UserID, &teacher.Title)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.Warn().Str("userID", userID.String()).Msg("Teacher not found by user ID")
			return nil, apperrors.ErrTeacherNotFound
		}
		logger.Error().Err(err).Str("userID", userID.String()).Msg("Error scanning teacher row")
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}

	return &teacher, nil
}
