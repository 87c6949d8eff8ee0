package lessonRoutes

import (
	controllers "lms/controllers/lesson"
	"lms/middleware"
	"lms/models"
	validators "lms/validators/lesson"

	"github.com/gofiber/fiber/v2"
)

// SetupLessonRoutes sets up all lesson routes
func SetupLessonRoutes(app *fiber.App) {
	lessonGroup := app.Group("/lessons")

	lessonGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTeacher), validators.CreateLesson(), controllers.CreateLesson)
	lessonGroup.Get("/course/:course_id", middleware.JWTMiddleware, validators.CourseLessons(), controllers.GetCourseLessons)
}
