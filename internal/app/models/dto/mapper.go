package dto

import "github.com/yigit/coursehub/internal/app/models"

// The functions below are the only place entity fields are copied into
// response shapes. Each takes exactly the tuple its DTO is built from.

// NewStudentCourseDTO projects (Course, Teacher, StudentCourse).
func NewStudentCourseDTO(course *models.Course, teacher *models.Teacher, sc *models.StudentCourse) StudentCourseDTO {
	out := StudentCourseDTO{
		CourseID:          course.ID,
		CourseCode:        course.Code,
		CourseName:        course.Name,
		CourseDescription: course.Description,
		CategoryID:        course.CategoryID,
		TeacherID:         teacher.ID,
		TeacherTitle:      teacher.Title,
		EnrollDate:        sc.EnrollDate,
	}
	if teacher.User != nil {
		out.TeacherName = teacher.User.FullName()
	}
	return out
}

// NewTeacherCourseDTO projects a Course for its teacher.
func NewTeacherCourseDTO(course *models.Course) TeacherCourseDTO {
	return TeacherCourseDTO{
		CourseID:    course.ID,
		Code:        course.Code,
		Name:        course.Name,
		Description: course.Description,
		CategoryID:  course.CategoryID,
		CreatedAt:   course.CreatedAt,
	}
}

// NewCourseDTO projects (Course, Category).
func NewCourseDTO(course *models.Course, category *models.Category) CourseDTO {
	return CourseDTO{
		CourseID:            course.ID,
		Code:                course.Code,
		Name:                course.Name,
		Description:         course.Description,
		TeacherID:           course.TeacherID,
		CategoryID:          category.ID,
		CategoryName:        category.Name,
		CategoryDescription: category.Description,
	}
}

// NewCategoryDTO projects a Category.
func NewCategoryDTO(category *models.Category) CategoryDTO {
	return CategoryDTO{
		CategoryID:  category.ID,
		Name:        category.Name,
		Description: category.Description,
	}
}

// NewEnrollmentResponse projects a freshly created StudentCourse.
func NewEnrollmentResponse(sc *models.StudentCourse) EnrollmentResponse {
	return EnrollmentResponse{
		StudentID:  sc.StudentID,
		CourseID:   sc.CourseID,
		EnrollDate: sc.EnrollDate,
	}
}
