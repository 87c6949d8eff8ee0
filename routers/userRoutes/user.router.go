package userRoutes

import (
	controllers "lms/controllers/user"
	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up all user routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/users")

	userGroup.Get("/list", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTeacher), controllers.ListUsers)
	userGroup.Get("/:id", middleware.JWTMiddleware, controllers.GetUser)

	// Certificates of the authenticated user
	certGroup := app.Group("/user")
	certGroup.Get("/certificates", middleware.JWTMiddleware, controllers.GetUserCertificates)
}
