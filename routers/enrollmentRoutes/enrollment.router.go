package enrollmentRoutes

import (
	controllers "lms/controllers/enrollment"
	"lms/middleware"
	validators "lms/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

// SetupEnrollmentRoutes sets up all enrollment routes
func SetupEnrollmentRoutes(app *fiber.App) {
	enrollmentGroup := app.Group("/enrollments")

	enrollmentGroup.Post("/", middleware.JWTMiddleware, validators.Enroll(), controllers.Enroll)
	enrollmentGroup.Get("/student/:user_id", middleware.JWTMiddleware, controllers.GetStudentEnrollments)
	enrollmentGroup.Get("/course/:course_id", middleware.JWTMiddleware, controllers.GetCourseEnrollments)
}
