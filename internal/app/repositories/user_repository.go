package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/repositories/user"
	"github.com/yigit/coursehub/internal/db"
)

// UserRepository combines the identity chain repositories:
// account -> user -> teacher | student.
type UserRepository struct {
	account *user.AccountRepository
	profile *user.ProfileRepository
	teacher *user.TeacherRepository
	student *user.StudentRepository
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(conn db.DBTX) *UserRepository {
	return &UserRepository{
		account: user.NewAccountRepository(conn),
		profile: user.NewProfileRepository(conn),
		teacher: user.NewTeacherRepository(conn),
		student: user.NewStudentRepository(conn),
	}
}

// CreateAccount creates a new account
func (r *UserRepository) CreateAccount(ctx context.Context, account *models.Account) error {
	return r.account.CreateAccount(ctx, account)
}

// GetAccountByID retrieves an account by ID
func (r *UserRepository) GetAccountByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	return r.account.GetAccountByID(ctx, id)
}

// GetAccountByEmail retrieves an account by email
func (r *UserRepository) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	return r.account.GetAccountByEmail(ctx, email)
}

// CreateUser creates a new user profile
func (r *UserRepository) CreateUser(ctx context.Context, u *models.User) error {
	return r.profile.CreateUser(ctx, u)
}

// GetUserByAccountID retrieves the user of an account
func (r *UserRepository) GetUserByAccountID(ctx context.Context, accountID uuid.UUID) (*models.User, error) {
	return r.profile.GetUserByAccountID(ctx, accountID)
}

// CreateTeacher creates a new teacher
func (r *UserRepository) CreateTeacher(ctx context.Context, teacher *models.Teacher) error {
	return r.teacher.CreateTeacher(ctx, teacher)
}

// GetTeacherByUserID retrieves a teacher by user ID
func (r *UserRepository) GetTeacherByUserID(ctx context.Context, userID uuid.UUID) (*models.Teacher, error) {
	return r.teacher.GetTeacherByUserID(ctx, userID)
}

// CreateStudent creates a new student
func (r *UserRepository) CreateStudent(ctx context.Context, student *models.Student) error {
	return r.student.CreateStudent(ctx, student)
}

// GetStudentByUserID retrieves a student by user ID
func (r *UserRepository) GetStudentByUserID(ctx context.Context, userID uuid.UUID) (*models.Student, error) {
	return r.student.GetStudentByUserID(ctx, userID)
}
