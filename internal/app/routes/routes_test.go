package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursehub/internal/app/controllers"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubCourseService records the arguments it was called with and answers
// with whatever the test configured.
type stubCourseService struct {
	gotStudentID  *uuid.UUID
	gotCredential string
	gotCourseID   uuid.UUID
	err           error

	studentCourses []dto.StudentCourseDTO
	teacherCourses []dto.TeacherCourseDTO
	enrollment     *dto.EnrollmentResponse
	course         *dto.CourseDTO
}

var _ services.CourseService = (*stubCourseService)(nil)

func (s *stubCourseService) ListStudentCourses(_ context.Context, studentID *uuid.UUID, credential string) ([]dto.StudentCourseDTO, error) {
	s.gotStudentID, s.gotCredential = studentID, credential
	return s.studentCourses, s.err
}

func (s *stubCourseService) ListTeacherCourses(_ context.Context, credential string) ([]dto.TeacherCourseDTO, error) {
	s.gotCredential = credential
	return s.teacherCourses, s.err
}

func (s *stubCourseService) Enroll(_ context.Context, credential string, courseID uuid.UUID) (*dto.EnrollmentResponse, error) {
	s.gotCredential, s.gotCourseID = credential, courseID
	return s.enrollment, s.err
}

func (s *stubCourseService) Unenroll(_ context.Context, credential string, courseID uuid.UUID) error {
	s.gotCredential, s.gotCourseID = credential, courseID
	return s.err
}

func (s *stubCourseService) GetCourse(_ context.Context, courseID uuid.UUID) (*dto.CourseDTO, error) {
	s.gotCourseID = courseID
	return s.course, s.err
}

func (s *stubCourseService) ListCourses(context.Context) ([]dto.CourseDTO, error) {
	if s.course == nil {
		return []dto.CourseDTO{}, s.err
	}
	return []dto.CourseDTO{*s.course}, s.err
}

func (s *stubCourseService) ListCategories(context.Context) ([]dto.CategoryDTO, error) {
	return []dto.CategoryDTO{{CategoryID: uuid.New(), Name: "Programming"}}, s.err
}

type stubAuthenticator struct {
	err error
}

func (s stubAuthenticator) Login(_ context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.TokenResponse{AccessToken: "a.b.c", TokenType: "Bearer", ExpiresIn: 3600}, nil
}

func newTestRouter(svc *stubCourseService, authn stubAuthenticator) *gin.Engine {
	router := gin.New()
	SetupRouter(router,
		controllers.NewCourseController(svc, zerolog.Nop()),
		controllers.NewAuthController(authn, zerolog.Nop()),
	)
	return router
}

type envelope struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    json.RawMessage  `json:"data"`
	Error   *dto.ErrorDetail `json:"error"`
}

func do(t *testing.T, router *gin.Engine, method, path, body string, headers map[string]string) (int, envelope) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func TestStudentCourses_BodyAndCredential(t *testing.T) {
	studentID := uuid.New()
	svc := &stubCourseService{studentCourses: []dto.StudentCourseDTO{{CourseID: uuid.New(), CourseCode: "GO101"}}}
	router := newTestRouter(svc, stubAuthenticator{})

	status, env := do(t, router, http.MethodPost, "/api/v1/courses/student-courses",
		`{"studentId":"`+studentID.String()+`"}`, map[string]string{"Authorization": "Bearer x.y.z"})

	assert.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)
	require.NotNil(t, svc.gotStudentID)
	assert.Equal(t, studentID, *svc.gotStudentID)
	assert.Equal(t, "Bearer x.y.z", svc.gotCredential)

	var got []dto.StudentCourseDTO
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "GO101", got[0].CourseCode)
}

func TestStudentCourses_BareIDBody(t *testing.T) {
	studentID := uuid.New()
	svc := &stubCourseService{studentCourses: []dto.StudentCourseDTO{}}
	router := newTestRouter(svc, stubAuthenticator{})

	status, env := do(t, router, http.MethodPost, "/api/v1/courses/student-courses", `"`+studentID.String()+`"`, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)
	require.NotNil(t, svc.gotStudentID)
	assert.Equal(t, studentID, *svc.gotStudentID)
}

func TestStudentCourses_NullBodyUsesCredential(t *testing.T) {
	svc := &stubCourseService{studentCourses: []dto.StudentCourseDTO{}}
	router := newTestRouter(svc, stubAuthenticator{})

	status, _ := do(t, router, http.MethodPost, "/api/v1/courses/student-courses", `null`, map[string]string{"Authorization": "Bearer x.y.z"})
	assert.Equal(t, http.StatusOK, status)
	assert.Nil(t, svc.gotStudentID)
	assert.Equal(t, "Bearer x.y.z", svc.gotCredential)
}

func TestStudentCourses_EmptyBodyIsAllowed(t *testing.T) {
	svc := &stubCourseService{studentCourses: []dto.StudentCourseDTO{}}
	router := newTestRouter(svc, stubAuthenticator{})

	status, env := do(t, router, http.MethodPost, "/api/v1/courses/student-courses", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Nil(t, svc.gotStudentID)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestStudentCourses_MalformedBody(t *testing.T) {
	svc := &stubCourseService{}
	router := newTestRouter(svc, stubAuthenticator{})

	for _, body := range []string{`{"studentId":"nope"}`, `"nope"`, `42`} {
		status, env := do(t, router, http.MethodPost, "/api/v1/courses/student-courses", body, nil)
		assert.Equal(t, http.StatusBadRequest, status)
		require.NotNil(t, env.Error)
		assert.Equal(t, dto.ErrorCodeValidationFailed, env.Error.Code)
		assert.Equal(t, dto.MalformedBodyDetail, env.Error.Details)
	}
	assert.Nil(t, svc.gotStudentID)
}

func TestTeacherCourses_NotFoundAndInvalidCredential(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"account not recognized", apperrors.NewResourceNotFoundError(services.MsgAccountNotRecognized), http.StatusNotFound, services.MsgAccountNotRecognized},
		{"no courses", apperrors.NewResourceNotFoundError(services.MsgNoTeacherCourses), http.StatusNotFound, services.MsgNoTeacherCourses},
		{"malformed credential", apperrors.ErrTokenInvalid, http.StatusInternalServerError, "Credential could not be resolved"},
		{"storage failure", errors.New("db down"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&stubCourseService{err: tt.err}, stubAuthenticator{})
			status, env := do(t, router, http.MethodPost, "/api/v1/courses/teacher-courses", "", map[string]string{"Authorization": "garbage"})
			assert.Equal(t, tt.wantStatus, status)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantMsg, env.Error.Message)
		})
	}
}

func TestEnrollment_Routes(t *testing.T) {
	courseID := uuid.New()
	enrolled := time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)
	svc := &stubCourseService{enrollment: &dto.EnrollmentResponse{StudentID: uuid.New(), CourseID: courseID, EnrollDate: enrolled}}
	router := newTestRouter(svc, stubAuthenticator{})
	auth := map[string]string{"Authorization": "Bearer s.t.u"}

	status, env := do(t, router, http.MethodPost, "/api/v1/courses/"+courseID.String()+"/enrollment", "", auth)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, courseID, svc.gotCourseID)
	assert.Equal(t, "Bearer s.t.u", svc.gotCredential)

	var resp dto.EnrollmentResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.True(t, enrolled.Equal(resp.EnrollDate))

	svc.err = apperrors.NewConflictError(services.MsgAlreadyEnrolled)
	status, env = do(t, router, http.MethodPost, "/api/v1/courses/"+courseID.String()+"/enrollment", "", auth)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, services.MsgAlreadyEnrolled, env.Error.Message)

	svc.err = apperrors.NewResourceNotFoundError(services.MsgNotEnrolled)
	status, env = do(t, router, http.MethodDelete, "/api/v1/courses/"+courseID.String()+"/enrollment", "", auth)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, services.MsgNotEnrolled, env.Error.Message)

	svc.err = nil
	status, env = do(t, router, http.MethodDelete, "/api/v1/courses/"+courseID.String()+"/enrollment", "", auth)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)
}

func TestEnrollment_InvalidCourseID(t *testing.T) {
	svc := &stubCourseService{}
	router := newTestRouter(svc, stubAuthenticator{})

	status, env := do(t, router, http.MethodPost, "/api/v1/courses/42/enrollment", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, dto.ErrorCodeValidationFailed, env.Error.Code)
	assert.Equal(t, uuid.Nil, svc.gotCourseID)
}

func TestGetCourse_BothRoutes(t *testing.T) {
	courseID := uuid.New()
	svc := &stubCourseService{course: &dto.CourseDTO{CourseID: courseID, Name: "Go Fundamentals", CategoryName: "Programming"}}
	router := newTestRouter(svc, stubAuthenticator{})

	for _, path := range []string{"/api/v1/courses/", "/api/v1/resources/courses/"} {
		status, env := do(t, router, http.MethodGet, path+courseID.String(), "", nil)
		assert.Equal(t, http.StatusOK, status, path)

		var got dto.CourseDTO
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "Programming", got.CategoryName)
	}

	svc.err = apperrors.NewResourceNotFoundError(services.MsgCourseNotFound)
	status, env := do(t, router, http.MethodGet, "/api/v1/resources/courses/"+uuid.NewString(), "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, services.MsgCourseNotFound, env.Error.Message)
}

func TestCatalogRoutes(t *testing.T) {
	router := newTestRouter(&stubCourseService{}, stubAuthenticator{})

	status, env := do(t, router, http.MethodGet, "/api/v1/courses", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(env.Data))

	status, env = do(t, router, http.MethodGet, "/api/v1/categories", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), "Programming")
}

func TestLogin(t *testing.T) {
	router := newTestRouter(&stubCourseService{}, stubAuthenticator{})

	status, env := do(t, router, http.MethodPost, "/api/v1/auth/login",
		`{"email":"student@coursehub.dev","password":"Student123!"}`, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), "a.b.c")

	status, env = do(t, router, http.MethodPost, "/api/v1/auth/login", `{"email":"not-an-email","password":"x"}`, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, dto.ErrorCodeValidationFailed, env.Error.Code)

	router = newTestRouter(&stubCourseService{}, stubAuthenticator{err: apperrors.ErrInvalidCredentials})
	status, env = do(t, router, http.MethodPost, "/api/v1/auth/login",
		`{"email":"student@coursehub.dev","password":"Wrong1234"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, dto.ErrorCodeInvalidCredentials, env.Error.Code)
}

func TestHealthAndNoRoute(t *testing.T) {
	router := newTestRouter(&stubCourseService{}, stubAuthenticator{})

	status, env := do(t, router, http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)

	status, env = do(t, router, http.MethodGet, "/api/v1/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, env.Success)
}
