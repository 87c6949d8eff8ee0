package progressRoutes

import (
	controllers "lms/controllers/progress"
	"lms/middleware"
	validators "lms/validators/progress"

	"github.com/gofiber/fiber/v2"
)

// SetupProgressRoutes sets up all progress routes
func SetupProgressRoutes(app *fiber.App) {
	progressGroup := app.Group("/progress")

	progressGroup.Get("/student/:student_id", middleware.JWTMiddleware, controllers.GetStudentProgress)
	progressGroup.Get("/course/:course_id", middleware.JWTMiddleware, controllers.GetCourseProgress)
	progressGroup.Post("/lesson/complete", middleware.JWTMiddleware, validators.CompleteLesson(), controllers.CompleteLesson)
}
