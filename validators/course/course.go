package courseValidator

import (
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateCourse validator middleware
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title" validate:"required,min=3,max=150"`
			Description string `json:"description" validate:"max=2000"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := middleware.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidationErrors(err))
		}

		return c.Next()
	}
}

// UpdateCourse validator middleware
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseCourseParam(c, "id"); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
		}

		reqData := new(struct {
			Title       string `json:"title" validate:"omitempty,min=3,max=150"`
			Description string `json:"description" validate:"max=2000"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := middleware.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidationErrors(err))
		}

		return c.Next()
	}
}

// GetCourseDetail validator middleware for routes with an :id param
func GetCourseDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseCourseParam(c, "id"); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
		}
		return c.Next()
	}
}

// parseCourseParam stores the course id path param in locals as int
func parseCourseParam(c *fiber.Ctx, param string) error {
	courseID, err := c.ParamsInt(param)
	if err != nil || courseID <= 0 {
		return fiber.ErrBadRequest
	}
	c.Locals("courseID", courseID)
	return nil
}
