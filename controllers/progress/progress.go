package progressController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

// ProgressWithNames adds joined display fields to a progress row
type ProgressWithNames struct {
	models.StudentProgress
	CourseTitle string `json:"course_title"`
	StudentName string `json:"student_name"`
}

func withNames(progress models.StudentProgress) ProgressWithNames {
	var course models.Course
	database.Database.Db.Where("id = ?", progress.CourseID).First(&course)
	var student models.User
	database.Database.Db.Where("id = ?", progress.StudentID).First(&student)
	return ProgressWithNames{
		StudentProgress: progress,
		CourseTitle:     course.Title,
		StudentName:     student.Name,
	}
}

// GetStudentProgress lists progress records for a student across courses
func GetStudentProgress(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("student_id")
	if err != nil || studentID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student id!", nil)
	}

	var progressList []models.StudentProgress
	if err := database.Database.Db.Where("student_id = ? AND is_deleted = ?", studentID, false).Find(&progressList).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	result := make([]ProgressWithNames, len(progressList))
	for i, progress := range progressList {
		result[i] = withNames(progress)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", result)
}

// GetCourseProgress lists progress records for every student of a course
func GetCourseProgress(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("course_id")
	if err != nil || courseID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	var progressList []models.StudentProgress
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Find(&progressList).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	result := make([]ProgressWithNames, len(progressList))
	for i, progress := range progressList {
		result[i] = withNames(progress)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", result)
}

// CompleteLesson marks the lesson material of a course as completed for the
// authenticated student. Quiz score, attempts and certificate fields are
// owned by the attempt ledger and cannot be written through this endpoint.
func CompleteLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := new(struct {
		CourseID uint `json:"course_id"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var enrollment models.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, reqData.CourseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You must be enrolled in this course!", nil)
	}

	var progress models.StudentProgress
	err := database.Database.Db.Where("student_id = ? AND course_id = ? AND is_deleted = ?", userID, reqData.CourseID, false).First(&progress).Error
	if err != nil {
		progress = models.StudentProgress{
			StudentID:       userID,
			CourseID:        reqData.CourseID,
			LessonCompleted: true,
		}
		if err := database.Database.Db.Create(&progress).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
		}
	} else {
		progress.LessonCompleted = true
		if err := database.Database.Db.Save(&progress).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson marked as completed!", withNames(progress))
}
