package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	appModels "github.com/yigit/coursehub/internal/app/models"
	appRepos "github.com/yigit/coursehub/internal/app/repositories"
	"github.com/yigit/coursehub/internal/db"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/auth"
)

// Demo credentials created by CreateDefaultData
const (
	StudentEmail    = "student@coursehub.dev"
	StudentPassword = "Student123!"
	TeacherEmail    = "teacher@coursehub.dev"
	TeacherPassword = "Teacher123!"
)

// CreateDefaultData creates a demo student, a teacher, one category and one
// course taught by that teacher. Everything is written in one transaction
// and skipped when the student account already exists.
func CreateDefaultData(ctx context.Context, conn db.Beginner, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (accounts, category, course)...")

	err := db.WithTransaction(ctx, conn, func(ctx context.Context, tx pgx.Tx) error {
		repos := appRepos.NewRepositories(tx)
		users := repos.UserRepository

		_, err := users.GetAccountByEmail(ctx, StudentEmail)
		switch {
		case err == nil:
			lgr.Info().Str("email", StudentEmail).Msg("Default data already present, skipping")
			return nil
		case !errors.Is(err, apperrors.ErrAccountNotFound):
			return fmt.Errorf("checking default student account: %w", err)
		}

		studentUser, err := createUser(ctx, users, StudentEmail, StudentPassword, "Sam", "Student")
		if err != nil {
			return err
		}
		if err := users.CreateStudent(ctx, &appModels.Student{UserID: studentUser.ID}); err != nil {
			return fmt.Errorf("creating default student: %w", err)
		}

		teacherUser, err := createUser(ctx, users, TeacherEmail, TeacherPassword, "Ada", "Lovelace")
		if err != nil {
			return err
		}
		teacher := &appModels.Teacher{UserID: teacherUser.ID, Title: "Lecturer"}
		if err := users.CreateTeacher(ctx, teacher); err != nil {
			return fmt.Errorf("creating default teacher: %w", err)
		}

		category := &appModels.Category{Name: "Programming", Description: "Software development courses"}
		if err := repos.CategoryRepository.Create(ctx, category); err != nil {
			return fmt.Errorf("creating default category: %w", err)
		}

		course := &appModels.Course{
			CategoryID:  category.ID,
			TeacherID:   teacher.ID,
			Code:        "GO101",
			Name:        "Go Fundamentals",
			Description: "Types, interfaces, error handling and concurrency in Go",
		}
		if err := repos.CourseRepository.Create(ctx, course); err != nil {
			return fmt.Errorf("creating default course: %w", err)
		}

		lgr.Info().
			Str("studentEmail", StudentEmail).
			Str("teacherEmail", TeacherEmail).
			Str("courseID", course.ID.String()).
			Msg("Default data created")
		return nil
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default data")
		return err
	}

	return nil
}

func createUser(ctx context.Context, users *appRepos.UserRepository, email, password, firstName, lastName string) (*appModels.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password for %s: %w", email, err)
	}

	account := &appModels.Account{Email: email, PasswordHash: hash}
	if err := users.CreateAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("creating account %s: %w", email, err)
	}

	u := &appModels.User{AccountID: account.ID, FirstName: firstName, LastName: lastName}
	if err := users.CreateUser(ctx, u); err != nil {
		return nil, fmt.Errorf("creating user for %s: %w", email, err)
	}

	return u, nil
}
