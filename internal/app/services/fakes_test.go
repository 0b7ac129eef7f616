package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

type enrollmentKey struct {
	studentID uuid.UUID
	courseID  uuid.UUID
}

// world is an in-memory stand-in for the database shared by the fake stores.
type world struct {
	mu          sync.Mutex
	accounts    map[uuid.UUID]*models.Account
	users       map[uuid.UUID]*models.User
	teachers    map[uuid.UUID]*models.Teacher
	students    map[uuid.UUID]*models.Student
	categories  map[uuid.UUID]*models.Category
	courses     map[uuid.UUID]*models.Course
	enrollments map[enrollmentKey]*models.StudentCourse
	credentials map[string]uuid.UUID
	failWith    error
}

func newWorld() *world {
	return &world{
		accounts:    map[uuid.UUID]*models.Account{},
		users:       map[uuid.UUID]*models.User{},
		teachers:    map[uuid.UUID]*models.Teacher{},
		students:    map[uuid.UUID]*models.Student{},
		categories:  map[uuid.UUID]*models.Category{},
		courses:     map[uuid.UUID]*models.Course{},
		enrollments: map[enrollmentKey]*models.StudentCourse{},
		credentials: map[string]uuid.UUID{},
	}
}

// scenario is the canonical graph: student account A1/U1/ST1, teacher T1,
// category CAT1 and course C1.
type scenario struct {
	w            *world
	studentCred  string
	teacherCred  string
	A1, U1, ST1  uuid.UUID
	T1, CAT1, C1 uuid.UUID
}

func newScenario() *scenario {
	w := newWorld()
	s := &scenario{
		w:           w,
		studentCred: "Bearer student.token.sig",
		teacherCred: "Bearer teacher.token.sig",
		A1:          uuid.New(),
		U1:          uuid.New(),
		ST1:         uuid.New(),
		T1:          uuid.New(),
		CAT1:        uuid.New(),
		C1:          uuid.New(),
	}

	teacherAccount, teacherUser := uuid.New(), uuid.New()

	w.accounts[s.A1] = &models.Account{ID: s.A1, Email: "student@coursehub.dev"}
	w.accounts[teacherAccount] = &models.Account{ID: teacherAccount, Email: "teacher@coursehub.dev"}
	w.users[s.U1] = &models.User{ID: s.U1, AccountID: s.A1, FirstName: "Sam", LastName: "Student"}
	w.users[teacherUser] = &models.User{ID: teacherUser, AccountID: teacherAccount, FirstName: "Ada", LastName: "Lovelace"}
	w.students[s.ST1] = &models.Student{ID: s.ST1, UserID: s.U1}
	w.teachers[s.T1] = &models.Teacher{ID: s.T1, UserID: teacherUser, Title: "Lecturer"}
	w.categories[s.CAT1] = &models.Category{ID: s.CAT1, Name: "Programming", Description: "Software courses"}
	w.courses[s.C1] = &models.Course{
		ID: s.C1, CategoryID: s.CAT1, TeacherID: s.T1,
		Code: "GO101", Name: "Go Fundamentals", Description: "Types, interfaces and concurrency",
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	w.credentials[s.studentCred] = s.A1
	w.credentials[s.teacherCred] = teacherAccount

	return s
}

type fakeResolver struct{ w *world }

func (f fakeResolver) ResolveAccountID(credential string) (uuid.UUID, error) {
	f.w.mu.Lock()
	defer f.w.mu.Unlock()
	id, ok := f.w.credentials[credential]
	if !ok {
		return uuid.Nil, apperrors.ErrTokenInvalid
	}
	return id, nil
}

type fakeUsers struct{ w *world }

func (f fakeUsers) GetAccountByID(_ context.Context, id uuid.UUID) (*models.Account, error) {
	f.w.mu.Lock()
	defer f.w.mu.Unlock()
	if f.w.failWith != nil {
		return nil, f.w.failWith
	}
	if a, ok := f.w.accounts[id]; ok {
		return a, nil
	}
	return nil, apperrors.ErrAccountNotFound
}

func (f fakeUsers) GetAccountByEmail(_ context.Context, email string) (*models.Account, error) {
	f.w.mu.Lock()
	defer f.w.mu.Unlock()
	for _, a := range f.w.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, apperrors.ErrAccountNotFound
}

func (f fakeUsers) GetUserByAccountID(_ context.Context, accountID uuid.UUID) (*models.User, error) {
	f.w.mu.Lock()
	defer f.w.mu.Unlock()
	for _, u := range f.w.users {
		if u.AccountID == accountID {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f fakeUsers) GetTeacherByUserID(_ context.Context, userID uuid.UUID) (*models.Teacher, error) {
	f.w.mu.Lock()
	defer f.w.mu.Unlock()
	for _, t := range f.w.teachers {
		if t.UserID == userID {
			return t, nil
		}
	}
	return nil, apperrors.ErrTeacherNotFound
}

func (f fakeUsers) GetStudentByUserID(_ context.Context, userID uuid.UUID) (*models.Student, error) {
	f.w.mu.Lock()
	defer f.w.mu.Unlock()
	for _, s := range f.w.students {
		if s.UserID == userID {
			return s, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

type fakeCourses struct{ w *world }

func (f fakeCourses) GetByID(_ context.Context, id uuid.UUID) (*models.Course, error) {
	f.w.mu.Lock()
	defer f.w.mu.Unlock()
	if f.w.failWith != nil {
		return nil, f.w.failWith
	}
	if c, ok := f.w.courses[id]; ok {
		return c, nil
	}
	return nil, apperrors.ErrCourseNotFound
}

func (f fakeCourses) GetByTeacherID(_ context.Context, teacherID uuid.UUID) ([]*models.Course, error) {
	f.w.mu.Lock()
	defer f.w.mu.Unlock()
	var out []*models.Course
	for _, c := range f.w.courses {
		if c.TeacherID == teacherID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f fakeCourses) GetAllWithCategory(_ context.Context) ([]*models.Course, error) {
	f.w.mu.Lock()
	defer f.w.mu.Unlock()
	var out []*models.Course
	for _, c := range f.w.courses {
		cat, ok := f.w.categories[c.CategoryID]
		if !ok {
			continue
		}
		joined := *c
		joined.Category = cat
		out = append(out, &joined)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type fakeCategories struct{ w *world }

func (f fakeCategories) GetByID(_ context.Context, id uuid.UUID) (*models.Category, error) {
	f.w.mu.Lock()
	defer f.w.mu.Unlock()
	if c, ok := f.w.categories[id]; ok {
		return c, nil
	}
	return nil, apperrors.ErrCategoryNotFound
}

func (f fakeCategories) GetAll(_ context.Context) ([]*models.Category, error) {
	f.w.mu.Lock()
	defer f.w.mu.Unlock()
	if f.w.failWith != nil {
		return nil, f.w.failWith
	}
	var out []*models.Category
	for _, c := range f.w.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type fakeEnrollments struct{ w *world }

// GetByStudentID mirrors the inner joins of the SQL query: enrollments whose
// course, category or teacher is missing are dropped.
func (f fakeEnrollments) GetByStudentID(_ context.Context, studentID uuid.UUID) ([]*models.StudentCourse, error) {
	f.w.mu.Lock()
	defer f.w.mu.Unlock()
	if f.w.failWith != nil {
		return nil, f.w.failWith
	}
	var out []*models.StudentCourse
	for key, sc := range f.w.enrollments {
		if key.studentID != studentID {
			continue
		}
		course, ok := f.w.courses[sc.CourseID]
		if !ok {
			continue
		}
		if _, ok := f.w.categories[course.CategoryID]; !ok {
			continue
		}
		teacher, ok := f.w.teachers[course.TeacherID]
		if !ok {
			continue
		}
		joinedTeacher := *teacher
		for _, u := range f.w.users {
			if u.ID == teacher.UserID {
				joinedTeacher.User = u
			}
		}
		out = append(out, &models.StudentCourse{
			StudentID:  sc.StudentID,
			CourseID:   sc.CourseID,
			EnrollDate: sc.EnrollDate,
			Course:     course,
			Teacher:    &joinedTeacher,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EnrollDate.Before(out[j].EnrollDate) })
	return out, nil
}

func (f fakeEnrollments) Exists(_ context.Context, studentID, courseID uuid.UUID) (bool, error) {
	f.w.mu.Lock()
	defer f.w.mu.Unlock()
	_, ok := f.w.enrollments[enrollmentKey{studentID, courseID}]
	return ok, nil
}

func (f fakeEnrollments) Create(_ context.Context, sc *models.StudentCourse) error {
	f.w.mu.Lock()
	defer f.w.mu.Unlock()
	key := enrollmentKey{sc.StudentID, sc.CourseID}
	if _, ok := f.w.enrollments[key]; ok {
		return apperrors.ErrAlreadyEnrolled
	}
	stored := *sc
	f.w.enrollments[key] = &stored
	return nil
}

func (f fakeEnrollments) Delete(_ context.Context, studentID, courseID uuid.UUID) error {
	f.w.mu.Lock()
	defer f.w.mu.Unlock()
	key := enrollmentKey{studentID, courseID}
	if _, ok := f.w.enrollments[key]; !ok {
		return apperrors.ErrEnrollmentNotFound
	}
	delete(f.w.enrollments, key)
	return nil
}

// racingEnrollments reports "not enrolled" from Exists even when the row is
// there, the way a concurrent enroll would observe it.
type racingEnrollments struct{ fakeEnrollments }

func (racingEnrollments) Exists(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return false, nil
}

// unjoinedEnrollments returns the joined rows plus rows whose course or
// teacher was never loaded.
type unjoinedEnrollments struct {
	fakeEnrollments
	extra []*models.StudentCourse
}

func (f unjoinedEnrollments) GetByStudentID(ctx context.Context, studentID uuid.UUID) ([]*models.StudentCourse, error) {
	out, err := f.fakeEnrollments.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return append(f.extra, out...), nil
}

var errStorageDown = errors.New("storage unavailable")
