package quizRoutes

import (
	controllers "lms/controllers/quiz"
	"lms/middleware"
	"lms/models"
	validators "lms/validators/quiz"

	"github.com/gofiber/fiber/v2"
)

// SetupQuizRoutes sets up all quiz routes
func SetupQuizRoutes(app *fiber.App) {
	quizGroup := app.Group("/quizzes")

	quizGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTeacher), validators.CreateQuiz(), controllers.CreateQuizQuestion)
	quizGroup.Get("/course/:course_id", middleware.JWTMiddleware, validators.CourseQuizzes(), controllers.GetCourseQuizzes)
	quizGroup.Post("/submit", middleware.JWTMiddleware, validators.SubmitQuiz(), controllers.SubmitQuiz)
}
