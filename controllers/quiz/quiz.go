package quizController

import (
	"errors"
	"lms/database"
	"lms/engine"
	"lms/middleware"
	"lms/models"
	"lms/utils"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// quizEngine is wired once at startup via Setup. All submission handling
// goes through it; handlers never touch StudentProgress quiz fields.
var quizEngine *engine.Orchestrator

// Setup wires the quiz engine against the given database
func Setup(db *gorm.DB) {
	quizEngine = engine.NewOrchestrator(
		engine.NewGormAnswerKeyStore(db),
		engine.NewGormAttemptLedger(db),
	)
}

// QuizResponse is the student-facing question shape. The correct label is
// withheld from every read path.
type QuizResponse struct {
	ID       uint   `json:"id"`
	Question string `json:"question"`
	OptionA  string `json:"option_a"`
	OptionB  string `json:"option_b"`
	OptionC  string `json:"option_c"`
	OptionD  string `json:"option_d"`
	CourseID uint   `json:"course_id"`
}

func toQuizResponse(q models.Quiz) QuizResponse {
	return QuizResponse{
		ID:       q.ID,
		Question: q.Question,
		OptionA:  q.OptionA,
		OptionB:  q.OptionB,
		OptionC:  q.OptionC,
		OptionD:  q.OptionD,
		CourseID: q.CourseID,
	}
}

// CreateQuizQuestion appends a question to a course owned by the teacher
func CreateQuizQuestion(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := new(struct {
		Question      string `json:"question"`
		OptionA       string `json:"option_a"`
		OptionB       string `json:"option_b"`
		OptionC       string `json:"option_c"`
		OptionD       string `json:"option_d"`
		CorrectAnswer string `json:"correct_answer"`
		CourseID      uint   `json:"course_id"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.TeacherID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not authorized to add quizzes to this course!", nil)
	}

	question, err := quizEngine.Keys().AddQuestion(
		reqData.CourseID,
		reqData.Question,
		reqData.OptionA, reqData.OptionB, reqData.OptionC, reqData.OptionD,
		reqData.CorrectAnswer,
	)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidInput) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question data!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question created successfully!", toQuizResponse(*question))
}

// GetCourseQuizzes lists a course's questions for the owner or an enrolled student
func GetCourseQuizzes(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, ok := c.Locals("courseID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if user.Role == models.RoleTeacher {
		if course.TeacherID != userID {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not authorized to view this course!", nil)
		}
	} else {
		var enrollment models.Enrollment
		if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You must be enrolled in this course to take quizzes!", nil)
		}
	}

	questions, err := quizEngine.Keys().GetAnswerKey(uint(courseID))
	if err != nil {
		if errors.Is(err, engine.ErrCourseNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No quiz questions found for this course!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}

	result := make([]QuizResponse, len(questions))
	for i, q := range questions {
		result[i] = toQuizResponse(q)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Questions fetched successfully!", result)
}

// SubmitQuiz grades a student's submission and records the attempt
func SubmitQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := new(struct {
		CourseID uint              `json:"course_id"`
		Answers  map[string]string `json:"answers"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var enrollment models.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, reqData.CourseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You must be enrolled in this course to take quizzes!", nil)
	}

	answers := make(map[uint]string, len(reqData.Answers))
	for questionID, label := range reqData.Answers {
		id, err := strconv.ParseUint(questionID, 10, 64)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question id in answers!", nil)
		}
		answers[uint(id)] = label
	}

	result, err := quizEngine.SubmitQuiz(userID, reqData.CourseID, answers)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrCourseNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No quiz questions found for this course!", nil)
		case errors.Is(err, engine.ErrIncompleteSubmission):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please answer every question before submitting!", nil)
		case errors.Is(err, engine.ErrAttemptLimitExceeded):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Maximum quiz attempts (2) reached!", nil)
		case errors.Is(err, engine.ErrAlreadyCertified):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Certificate already earned for this course!", nil)
		default:
			log.Printf("Error submitting quiz: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz!", nil)
		}
	}

	if result.NewlyCertified {
		go func(studentID, courseID uint) {
			if err := utils.IssueCertificate(database.Database.Db, studentID, courseID); err != nil {
				log.Printf("Error issuing certificate for user %d course %d: %v", studentID, courseID, err)
			}
		}(userID, reqData.CourseID)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted!", result)
}
