package utils

import (
	"errors"
	"lms/config"
	"lms/models"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IssueCertificate creates the Certificate row for a (student, course) pair
// whose ledger entry has certificate_earned set. It is idempotent: an already
// issued pair is left untouched, so the controller hook and the scheduler can
// both call it safely.
func IssueCertificate(db *gorm.DB, userID, courseID uint) error {
	var progress models.StudentProgress
	if err := db.Where("student_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&progress).Error; err != nil {
		return err
	}
	if !progress.CertificateEarned {
		return errors.New("certificate not earned for this course")
	}

	var existing models.Certificate
	err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&existing).Error
	if err == nil {
		return nil // already issued
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	certificate := models.Certificate{
		UserID:            userID,
		CourseID:          courseID,
		CertificateNumber: uuid.NewString(),
		IssuedAt:          time.Now(),
	}
	if err := db.Create(&certificate).Error; err != nil {
		return err
	}

	var user models.User
	var course models.Course
	db.Where("id = ?", userID).First(&user)
	db.Where("id = ?", courseID).First(&course)

	if err := SendCertificateEmail(user.Email, user.Name, course.Title, certificate.CertificateNumber); err != nil {
		log.Printf("Error sending certificate email to %s: %v", user.Email, err)
	}

	notifyCertificateWebhook(certificate, user, course)

	return nil
}

// notifyCertificateWebhook posts the issued certificate to the configured
// webhook, if any. Failures are logged and never block issuance.
func notifyCertificateWebhook(certificate models.Certificate, user models.User, course models.Course) {
	webhookURL := config.AppConfig.CertificateWebhookURL
	if webhookURL == "" {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"certificate_number": certificate.CertificateNumber,
			"user_id":            user.ID,
			"user_email":         user.Email,
			"course_id":          course.ID,
			"course_title":       course.Title,
			"issued_at":          certificate.IssuedAt,
		}).
		Post(webhookURL)
	if err != nil {
		log.Printf("Error calling certificate webhook: %v", err)
		return
	}
	if resp.StatusCode() >= 300 {
		log.Printf("Certificate webhook returned status %d: %s", resp.StatusCode(), resp.String())
	}
}
