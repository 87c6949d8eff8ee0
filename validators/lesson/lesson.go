package lessonValidator

import (
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateLesson validator middleware
func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title    string `json:"title" validate:"required,min=3,max=150"`
			Content  string `json:"content"`
			CourseID uint   `json:"course_id" validate:"required,gt=0"`
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

// CourseLessons validator middleware for routes with a :course_id param
func CourseLessons() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := c.ParamsInt("course_id")
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
		}
		c.Locals("courseID", courseID)
		return c.Next()
	}
}
