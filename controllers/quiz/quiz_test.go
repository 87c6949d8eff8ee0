package quizController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	validators "lms/validators/quiz"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// apiResponse mirrors the JSON envelope every handler writes.
type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	database.RunMigrations(db)

	database.Database = database.DbInstance{Db: db}
	Setup(db)

	app := fiber.New()
	quizGroup := app.Group("/quizzes")
	quizGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTeacher), validators.CreateQuiz(), CreateQuizQuestion)
	quizGroup.Get("/course/:course_id", middleware.JWTMiddleware, validators.CourseQuizzes(), GetCourseQuizzes)
	quizGroup.Post("/submit", middleware.JWTMiddleware, validators.SubmitQuiz(), SubmitQuiz)

	return app, db
}

func createUser(t *testing.T, db *gorm.DB, name, email, role string) (models.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{Name: name, Email: email, Password: string(hashed), Role: role}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return user, token
}

func createCourse(t *testing.T, db *gorm.DB, teacherID uint, title string) models.Course {
	t.Helper()
	course := models.Course{Title: title, Description: "desc", TeacherID: teacherID, IsActive: true}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("create course: %v", err)
	}
	return course
}

func enroll(t *testing.T, db *gorm.DB, userID, courseID uint) {
	t.Helper()
	if err := db.Create(&models.Enrollment{UserID: userID, CourseID: courseID}).Error; err != nil {
		t.Fatalf("enroll: %v", err)
	}
}

// seedQuestions adds n questions answered by "A" and returns their ids.
func seedQuestions(t *testing.T, courseID uint, n int) []uint {
	t.Helper()
	ids := make([]uint, n)
	for i := 0; i < n; i++ {
		q, err := quizEngine.Keys().AddQuestion(courseID, fmt.Sprintf("question %d", i+1), "one", "two", "three", "four", "A")
		if err != nil {
			t.Fatalf("seed question: %v", err)
		}
		ids[i] = q.ID
	}
	return ids
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, apiResponse, string) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	var raw bytes.Buffer
	if _, err := raw.ReadFrom(resp.Body); err != nil {
		t.Fatalf("read body: %v", err)
	}
	var parsed apiResponse
	if err := json.Unmarshal(raw.Bytes(), &parsed); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, raw.String())
	}
	return resp, parsed, raw.String()
}

// answersFor maps every question id to the given label.
func answersFor(ids []uint, label string) map[string]string {
	answers := make(map[string]string, len(ids))
	for _, id := range ids {
		answers[fmt.Sprintf("%d", id)] = label
	}
	return answers
}

func TestCreateQuizQuestion(t *testing.T) {
	app, db := setupTestApp(t)
	teacher, teacherToken := createUser(t, db, "Teacher", "teacher@example.com", models.RoleTeacher)
	_, otherToken := createUser(t, db, "Other", "other@example.com", models.RoleTeacher)
	_, studentToken := createUser(t, db, "Student", "student@example.com", models.RoleStudent)
	course := createCourse(t, db, teacher.ID, "Go Basics")

	body := map[string]interface{}{
		"question":       "What keyword declares a function?",
		"option_a":       "func",
		"option_b":       "def",
		"option_c":       "fn",
		"option_d":       "function",
		"correct_answer": "A",
		"course_id":      course.ID,
	}

	resp, parsed, raw := doRequest(t, app, http.MethodPost, "/quizzes/", teacherToken, body)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, parsed.Message)
	}
	if strings.Contains(raw, "correct_answer") {
		t.Fatal("correct label leaked in create response")
	}

	resp, _, _ = doRequest(t, app, http.MethodPost, "/quizzes/", otherToken, body)
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("non-owner teacher: expected 403, got %d", resp.StatusCode)
	}

	resp, _, _ = doRequest(t, app, http.MethodPost, "/quizzes/", studentToken, body)
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("student role: expected 403, got %d", resp.StatusCode)
	}

	bad := map[string]interface{}{
		"question":       "Which label?",
		"option_a":       "one",
		"option_b":       "two",
		"option_c":       "three",
		"option_d":       "four",
		"correct_answer": "E",
		"course_id":      course.ID,
	}
	resp, _, _ = doRequest(t, app, http.MethodPost, "/quizzes/", teacherToken, bad)
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("label outside A-D: expected 422, got %d", resp.StatusCode)
	}
}

func TestGetCourseQuizzes(t *testing.T) {
	app, db := setupTestApp(t)
	teacher, _ := createUser(t, db, "Teacher", "teacher@example.com", models.RoleTeacher)
	student, studentToken := createUser(t, db, "Student", "student@example.com", models.RoleStudent)
	_, outsiderToken := createUser(t, db, "Outsider", "outsider@example.com", models.RoleStudent)
	course := createCourse(t, db, teacher.ID, "Go Basics")
	enroll(t, db, student.ID, course.ID)
	seedQuestions(t, course.ID, 3)

	path := fmt.Sprintf("/quizzes/course/%d", course.ID)

	resp, parsed, raw := doRequest(t, app, http.MethodGet, path, studentToken, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, parsed.Message)
	}
	var questions []QuizResponse
	if err := json.Unmarshal(parsed.Data, &questions); err != nil {
		t.Fatalf("decode questions: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}
	if strings.Contains(raw, "correct_answer") {
		t.Fatal("correct label leaked to student")
	}

	resp, _, _ = doRequest(t, app, http.MethodGet, path, outsiderToken, nil)
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("unenrolled student: expected 403, got %d", resp.StatusCode)
	}

	empty := createCourse(t, db, teacher.ID, "Empty Course")
	enroll(t, db, student.ID, empty.ID)
	resp, _, _ = doRequest(t, app, http.MethodGet, fmt.Sprintf("/quizzes/course/%d", empty.ID), studentToken, nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("course without questions: expected 404, got %d", resp.StatusCode)
	}

	resp, _, _ = doRequest(t, app, http.MethodGet, path, "", nil)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("missing token: expected 401, got %d", resp.StatusCode)
	}
}

func TestSubmitQuizCertifiesAndRejectsResubmission(t *testing.T) {
	app, db := setupTestApp(t)
	teacher, _ := createUser(t, db, "Teacher", "teacher@example.com", models.RoleTeacher)
	student, studentToken := createUser(t, db, "Student", "student@example.com", models.RoleStudent)
	course := createCourse(t, db, teacher.ID, "Go Basics")
	enroll(t, db, student.ID, course.ID)
	ids := seedQuestions(t, course.ID, 5)

	body := map[string]interface{}{"course_id": course.ID, "answers": answersFor(ids, "A")}
	resp, parsed, _ := doRequest(t, app, http.MethodPost, "/quizzes/submit", studentToken, body)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, parsed.Message)
	}

	var result struct {
		Score             int     `json:"score"`
		Total             int     `json:"total"`
		Percentage        float64 `json:"percentage"`
		Attempts          int     `json:"attempts"`
		CertificateEarned bool    `json:"certificate_earned"`
	}
	if err := json.Unmarshal(parsed.Data, &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.Score != 5 || result.Total != 5 || result.Percentage != 100 {
		t.Fatalf("unexpected grade: %+v", result)
	}
	if result.Attempts != 1 || !result.CertificateEarned {
		t.Fatalf("perfect score must certify on attempt 1: %+v", result)
	}

	resp, parsed, _ = doRequest(t, app, http.MethodPost, "/quizzes/submit", studentToken, body)
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("resubmission after certificate: expected 409, got %d: %s", resp.StatusCode, parsed.Message)
	}

	var progress models.StudentProgress
	if err := db.Where("student_id = ? AND course_id = ?", student.ID, course.ID).First(&progress).Error; err != nil {
		t.Fatalf("read progress: %v", err)
	}
	if progress.QuizAttempts != 1 || progress.QuizScore != 5 || !progress.CertificateEarned {
		t.Fatalf("rejected resubmission touched the ledger: %+v", progress)
	}
}

func TestSubmitQuizAttemptCap(t *testing.T) {
	app, db := setupTestApp(t)
	teacher, _ := createUser(t, db, "Teacher", "teacher@example.com", models.RoleTeacher)
	student, studentToken := createUser(t, db, "Student", "student@example.com", models.RoleStudent)
	course := createCourse(t, db, teacher.ID, "Go Basics")
	enroll(t, db, student.ID, course.ID)
	ids := seedQuestions(t, course.ID, 5)

	body := map[string]interface{}{"course_id": course.ID, "answers": answersFor(ids, "B")}
	for i := 0; i < 2; i++ {
		resp, parsed, _ := doRequest(t, app, http.MethodPost, "/quizzes/submit", studentToken, body)
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("attempt %d: expected 200, got %d: %s", i+1, resp.StatusCode, parsed.Message)
		}
	}

	resp, parsed, _ := doRequest(t, app, http.MethodPost, "/quizzes/submit", studentToken, body)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("third attempt: expected 400, got %d", resp.StatusCode)
	}
	if !strings.Contains(parsed.Message, "Maximum quiz attempts") {
		t.Fatalf("unexpected message: %s", parsed.Message)
	}

	var progress models.StudentProgress
	if err := db.Where("student_id = ? AND course_id = ?", student.ID, course.ID).First(&progress).Error; err != nil {
		t.Fatalf("read progress: %v", err)
	}
	if progress.QuizAttempts != 2 || progress.CertificateEarned {
		t.Fatalf("cap not enforced in ledger: %+v", progress)
	}
}

func TestSubmitQuizRejections(t *testing.T) {
	app, db := setupTestApp(t)
	teacher, _ := createUser(t, db, "Teacher", "teacher@example.com", models.RoleTeacher)
	student, studentToken := createUser(t, db, "Student", "student@example.com", models.RoleStudent)
	course := createCourse(t, db, teacher.ID, "Go Basics")
	ids := seedQuestions(t, course.ID, 3)

	// not enrolled yet
	body := map[string]interface{}{"course_id": course.ID, "answers": answersFor(ids, "A")}
	resp, _, _ := doRequest(t, app, http.MethodPost, "/quizzes/submit", studentToken, body)
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("unenrolled submit: expected 403, got %d", resp.StatusCode)
	}

	enroll(t, db, student.ID, course.ID)

	unknown := map[string]interface{}{"course_id": 9999, "answers": answersFor(ids, "A")}
	resp, _, _ = doRequest(t, app, http.MethodPost, "/quizzes/submit", studentToken, unknown)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("unknown course: expected 404, got %d", resp.StatusCode)
	}

	partial := map[string]interface{}{"course_id": course.ID, "answers": answersFor(ids[:2], "A")}
	resp, parsed, _ := doRequest(t, app, http.MethodPost, "/quizzes/submit", studentToken, partial)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("partial submission: expected 400, got %d: %s", resp.StatusCode, parsed.Message)
	}

	badID := map[string]interface{}{"course_id": course.ID, "answers": map[string]string{"not-a-number": "A"}}
	resp, _, _ = doRequest(t, app, http.MethodPost, "/quizzes/submit", studentToken, badID)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("bad question id: expected 400, got %d", resp.StatusCode)
	}

	empty := map[string]interface{}{"course_id": course.ID, "answers": map[string]string{}}
	resp, _, _ = doRequest(t, app, http.MethodPost, "/quizzes/submit", studentToken, empty)
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("empty answers: expected 422, got %d", resp.StatusCode)
	}
}
