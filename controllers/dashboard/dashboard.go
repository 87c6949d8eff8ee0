package dashboardController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// TeacherDashboard aggregates stats across the authenticated teacher's courses
func TeacherDashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var courseIDs []uint
	db.Model(&models.Course{}).Where("teacher_id = ? AND is_deleted = ?", userID, false).Pluck("id", &courseIDs)

	var totalCourses int64
	db.Model(&models.Course{}).Where("teacher_id = ? AND is_deleted = ?", userID, false).Count(&totalCourses)

	var totalEnrollments int64
	var enrollmentsToday int64
	var enrollmentsThisWeek int64
	var certificatesEarned int64
	var certificatesIssued int64

	if len(courseIDs) > 0 {
		today := now.BeginningOfDay()
		weekStart := now.BeginningOfWeek()

		db.Model(&models.Enrollment{}).Where("course_id IN ? AND is_deleted = ?", courseIDs, false).Count(&totalEnrollments)
		db.Model(&models.Enrollment{}).Where("course_id IN ? AND is_deleted = ? AND created_at >= ?", courseIDs, false, today).Count(&enrollmentsToday)
		db.Model(&models.Enrollment{}).Where("course_id IN ? AND is_deleted = ? AND created_at >= ?", courseIDs, false, weekStart).Count(&enrollmentsThisWeek)
		db.Model(&models.StudentProgress{}).Where("course_id IN ? AND is_deleted = ? AND certificate_earned = ?", courseIDs, false, true).Count(&certificatesEarned)
		db.Model(&models.Certificate{}).Where("course_id IN ? AND is_deleted = ?", courseIDs, false).Count(&certificatesIssued)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"total_courses":         totalCourses,
		"total_enrollments":     totalEnrollments,
		"enrollments_today":     enrollmentsToday,
		"enrollments_this_week": enrollmentsThisWeek,
		"certificates_earned":   certificatesEarned,
		"certificates_issued":   certificatesIssued,
	})
}
