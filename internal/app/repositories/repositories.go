package repositories

import "github.com/yigit/coursehub/internal/db"

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository          *UserRepository
	CategoryRepository      *CategoryRepository
	CourseRepository        *CourseRepository
	StudentCourseRepository *StudentCourseRepository
}

// NewRepositories initializes all repositories over the given connection.
// Pass the pool for normal use or a pgx.Tx to run them in a transaction.
func NewRepositories(conn db.DBTX) *Repositories {
	return &Repositories{
		UserRepository:          NewUserRepository(conn),
		CategoryRepository:      NewCategoryRepository(conn),
		CourseRepository:        NewCourseRepository(conn),
		StudentCourseRepository: NewStudentCourseRepository(conn),
	}
}
