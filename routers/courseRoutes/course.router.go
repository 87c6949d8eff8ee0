package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	"lms/models"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses")

	// Course listing and details
	courseGroup.Get("/list", middleware.JWTMiddleware, controllers.GetAllCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, validators.GetCourseDetail(), controllers.GetCourseDetails)

	// Authoring (teachers only)
	courseGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTeacher), validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTeacher), validators.UpdateCourse(), controllers.UpdateCourse)
	courseGroup.Patch("/:id/toggle", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTeacher), validators.GetCourseDetail(), controllers.ToggleCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTeacher), validators.GetCourseDetail(), controllers.DeleteCourse)
}
