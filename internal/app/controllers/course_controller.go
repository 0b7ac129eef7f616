// Package controllers handles HTTP request handling
package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/middleware"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// CourseController handles course and enrollment endpoints
type CourseController struct {
	courseService services.CourseService
	logger        zerolog.Logger
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService, logger zerolog.Logger) *CourseController {
	return &CourseController{
		courseService: courseService,
		logger:        logger,
	}
}

// courseID reads the id validated by middleware.ValidateUUIDParam
func courseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.UUIDParam(ctx, "id")
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("id must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}

// ListStudentCourses lists a student's enrollments
// @Summary List a student's courses
// @Description Lists the courses a student is enrolled in. The body is either the bare student id string or an object with studentId. When no id is sent the student is taken from the Authorization credential. With neither the list is empty.
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.StudentCoursesRequest false "Optional student id"
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentCourseDTO} "Courses retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "User associated with this account is not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/student-courses [post]
func (c *CourseController) ListStudentCourses(ctx *gin.Context) {
	var req dto.StudentCoursesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		middleware.HandleBindingError(ctx, err)
		return
	}

	c.logger.Debug().Bool("explicitStudentId", req.StudentID != nil).Msg("Student courses requested")

	courses, err := c.courseService.ListStudentCourses(ctx, req.StudentID, middleware.Credential(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses, "Courses retrieved successfully"))
}

// ListTeacherCourses lists the courses given by the calling teacher
// @Summary List the calling teacher's courses
// @Description Resolves the teacher from the Authorization credential and lists the courses they give. A teacher without courses yields 404.
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.TeacherCourseDTO} "Courses retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Account not recognized or no courses"
// @Failure 500 {object} dto.ErrorResponse "Internal server error or unresolvable credential"
// @Router /courses/teacher-courses [post]
func (c *CourseController) ListTeacherCourses(ctx *gin.Context) {
	courses, err := c.courseService.ListTeacherCourses(ctx, middleware.Credential(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses, "Courses retrieved successfully"))
}

// Enroll enrolls the calling student in a course
// @Summary Enroll in a course
// @Tags enrollment
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentResponse} "Enrolled successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "User or course not found"
// @Failure 409 {object} dto.ErrorResponse "Student already enrolled this course!"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/enrollment [post]
func (c *CourseController) Enroll(ctx *gin.Context) {
	id, ok := courseID(ctx)
	if !ok {
		return
	}

	enrollment, err := c.courseService.Enroll(ctx, middleware.Credential(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollment, "Enrolled successfully"))
}

// Unenroll removes the calling student's enrollment
// @Summary Unenroll from a course
// @Tags enrollment
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID" Format(uuid)
// @Success 200 {object} dto.APIResponse "Unenrolled successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Student was not enroll this course!"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/enrollment [delete]
func (c *CourseController) Unenroll(ctx *gin.Context) {
	id, ok := courseID(ctx)
	if !ok {
		return
	}

	if err := c.courseService.Unenroll(ctx, middleware.Credential(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Unenrolled successfully"))
}

// GetCourse returns a course with its category
// @Summary Get course details
// @Description Served on both /courses/{id} and /resources/courses/{id}
// @Tags courses
// @Produce json
// @Param id path string true "Course ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=dto.CourseDTO} "Course retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course with this id is not exist"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := courseID(ctx)
	if !ok {
		return
	}

	course, err := c.courseService.GetCourse(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course, "Course retrieved successfully"))
}

// ListCourses returns the course catalog
// @Summary List all courses
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseDTO} "Courses retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.courseService.ListCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses, "Courses retrieved successfully"))
}

// ListCategories returns all categories
// @Summary List all categories
// @Tags categories
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CategoryDTO} "Categories retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /categories [get]
func (c *CourseController) ListCategories(ctx *gin.Context) {
	categories, err := c.courseService.ListCategories(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(categories, "Categories retrieved successfully"))
}
