package quizValidator

import (
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateQuiz validator middleware
func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Question      string `json:"question" validate:"required,min=3"`
			OptionA       string `json:"option_a" validate:"required"`
			OptionB       string `json:"option_b" validate:"required"`
			OptionC       string `json:"option_c" validate:"required"`
			OptionD       string `json:"option_d" validate:"required"`
			CorrectAnswer string `json:"correct_answer" validate:"required,oneof=A B C D"`
			CourseID      uint   `json:"course_id" validate:"required,gt=0"`
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

// CourseQuizzes validator middleware for routes with a :course_id param
func CourseQuizzes() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := c.ParamsInt("course_id")
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
		}
		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// SubmitQuiz validator middleware
func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID uint              `json:"course_id" validate:"required,gt=0"`
			Answers  map[string]string `json:"answers" validate:"required,min=1"`
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
