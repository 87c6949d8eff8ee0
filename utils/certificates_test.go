package utils

import (
	"testing"

	"lms/config"
	"lms/database"
	"lms/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func seedEarnedProgress(t *testing.T, db *gorm.DB) (models.User, models.Course) {
	t.Helper()

	user := models.User{Name: "Student", Email: "student@example.com", Password: "x", Role: models.RoleStudent}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	course := models.Course{Title: "Go Basics", TeacherID: 1, IsActive: true}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("create course: %v", err)
	}
	progress := models.StudentProgress{
		StudentID:         user.ID,
		CourseID:          course.ID,
		QuizScore:         9,
		QuizTotal:         10,
		QuizAttempts:      1,
		CertificateEarned: true,
	}
	if err := db.Create(&progress).Error; err != nil {
		t.Fatalf("create progress: %v", err)
	}
	return user, course
}

func TestIssueCertificate(t *testing.T) {
	db := newTestDB(t)
	user, course := seedEarnedProgress(t, db)

	if err := IssueCertificate(db, user.ID, course.ID); err != nil {
		t.Fatalf("issue: %v", err)
	}

	var cert models.Certificate
	if err := db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&cert).Error; err != nil {
		t.Fatalf("certificate row missing: %v", err)
	}
	if cert.CertificateNumber == "" {
		t.Fatal("certificate number must be set")
	}
	if cert.IssuedAt.IsZero() {
		t.Fatal("issued_at must be set")
	}
}

func TestIssueCertificateIdempotent(t *testing.T) {
	db := newTestDB(t)
	user, course := seedEarnedProgress(t, db)

	if err := IssueCertificate(db, user.ID, course.ID); err != nil {
		t.Fatalf("first issue: %v", err)
	}
	var first models.Certificate
	if err := db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&first).Error; err != nil {
		t.Fatalf("read certificate: %v", err)
	}

	if err := IssueCertificate(db, user.ID, course.ID); err != nil {
		t.Fatalf("second issue: %v", err)
	}

	var count int64
	if err := db.Model(&models.Certificate{}).Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&count).Error; err != nil {
		t.Fatalf("count certificates: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one certificate, got %d", count)
	}

	var second models.Certificate
	if err := db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&second).Error; err != nil {
		t.Fatalf("re-read certificate: %v", err)
	}
	if second.CertificateNumber != first.CertificateNumber {
		t.Fatal("re-issue must not replace the certificate")
	}
}

func TestIssueCertificateRequiresEarnedFlag(t *testing.T) {
	db := newTestDB(t)

	progress := models.StudentProgress{StudentID: 1, CourseID: 2, QuizScore: 3, QuizTotal: 10, QuizAttempts: 2}
	if err := db.Create(&progress).Error; err != nil {
		t.Fatalf("create progress: %v", err)
	}

	if err := IssueCertificate(db, 1, 2); err == nil {
		t.Fatal("unearned progress must not be issued a certificate")
	}
	var count int64
	db.Model(&models.Certificate{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no certificates, got %d", count)
	}

	// no ledger entry at all
	if err := IssueCertificate(db, 5, 6); err == nil {
		t.Fatal("missing ledger entry must be an error")
	}
}

func TestReconcileCertificatesIssuesMissing(t *testing.T) {
	db := newTestDB(t)
	user, course := seedEarnedProgress(t, db)

	// a second earned pair that already has its certificate
	other := models.User{Name: "Other", Email: "other@example.com", Password: "x", Role: models.RoleStudent}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := db.Create(&models.StudentProgress{
		StudentID: other.ID, CourseID: course.ID,
		QuizScore: 10, QuizTotal: 10, QuizAttempts: 1, CertificateEarned: true,
	}).Error; err != nil {
		t.Fatalf("create progress: %v", err)
	}
	if err := IssueCertificate(db, other.ID, course.ID); err != nil {
		t.Fatalf("pre-issue: %v", err)
	}

	reconcileCertificates()

	var count int64
	if err := db.Model(&models.Certificate{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 certificates after reconcile, got %d", count)
	}
	var cert models.Certificate
	if err := db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&cert).Error; err != nil {
		t.Fatalf("reconciled certificate missing: %v", err)
	}
}
