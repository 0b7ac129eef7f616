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

// ProfileRepository handles the users table (one row per account)
type ProfileRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(conn db.DBTX) *ProfileRepository {
	return &ProfileRepository{
		db: conn,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateUser inserts a user profile for an existing account
func (r *ProfileRepository) CreateUser(ctx context.Context, u *models.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	sql, args, err := r.sb.Insert("users").
		Columns("id", "account_id", "first_name", "last_name").
		Values(u.ID, u.AccountID, u.FirstName, u.LastName).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create user SQL")
		return fmt.Errorf("failed to build create user query: %w", err)
	}

	if _, err = r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_account_id_key") {
			return apperrors.NewConflictError("a user already exists for this account")
		}
		logger.Error().Err(err).Str("accountID", u.AccountID.String()).Msg("Error executing create user query")
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetUserByAccountID retrieves the user owning an account
func (r *ProfileRepository) GetUserByAccountID(ctx context.Context, accountID uuid.UUID) (*models.User, error) {
	sql, args, err := r.sb.Select("id", "account_id", "first_name", "last_name").
		From("users").
		Where(squirrel.Eq{"account_id": accountID}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get user by account SQL")
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	u := &models.User{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&u.ID, &u.AccountID, &u.FirstName, &u.LastName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.Warn().Str("accountID", accountID.String()).Msg("User not found by account ID")
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("accountID", accountID.String()).Msg("Error scanning user row")
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return u, nil
}
