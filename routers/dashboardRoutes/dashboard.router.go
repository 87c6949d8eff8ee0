package dashboardRoutes

import (
	controllers "lms/controllers/dashboard"
	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

// SetupDashboardRoutes sets up dashboard routes
func SetupDashboardRoutes(app *fiber.App) {
	dashboardGroup := app.Group("/dashboard")

	dashboardGroup.Get("/teacher", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTeacher), controllers.TeacherDashboard)
}
