package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/controllers"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	authController *controllers.AuthController,
) {
	// API version group
	v1 := router.Group("/api/v1")
	v1.Use(middleware.CredentialExtractor())

	// --- Public Auth routes ---
	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/login", authController.Login)
	}

	// --- Course routes ---
	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.POST("/student-courses", courseController.ListStudentCourses)
		courses.POST("/teacher-courses", courseController.ListTeacherCourses)
		courses.GET("/:id", middleware.ValidateUUIDParam("id"), courseController.GetCourse)
		courses.POST("/:id/enrollment", middleware.ValidateUUIDParam("id"), courseController.Enroll)
		courses.DELETE("/:id/enrollment", middleware.ValidateUUIDParam("id"), courseController.Unenroll)
	}

	// Same payload as GET /courses/:id, kept for existing clients
	v1.GET("/resources/courses/:id", middleware.ValidateUUIDParam("id"), courseController.GetCourse)

	v1.GET("/categories", courseController.ListCategories)

	// Health check
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.APIResponse{
			Success:   true,
			Message:   "Service is healthy",
			Timestamp: time.Now(),
		})
	})

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Route not found").WithSeverity(dto.ErrorSeverityWarning),
		))
	})
}
