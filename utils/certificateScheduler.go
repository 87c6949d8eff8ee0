package utils

import (
	"lms/database"
	"lms/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[CERT-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// reconcileCertificates issues certificates for ledger entries that earned
// one but have no Certificate row yet. This covers a crash between the
// attempt commit and the issuance hook.
func reconcileCertificates() {
	db := database.Database.Db

	var pending []models.StudentProgress
	err := db.Where("certificate_earned = ? AND is_deleted = ?", true, false).
		Where("NOT EXISTS (SELECT 1 FROM certificates WHERE certificates.user_id = student_progresses.student_id AND certificates.course_id = student_progresses.course_id AND certificates.is_deleted = ?)", false).
		Find(&pending).Error
	if err != nil {
		logScheduler("Error fetching unissued certificates: " + err.Error())
		return
	}

	if len(pending) == 0 {
		return
	}

	logScheduler("Issuing missing certificates...")
	for _, progress := range pending {
		if err := IssueCertificate(db, progress.StudentID, progress.CourseID); err != nil {
			logScheduler("Error issuing certificate: " + err.Error())
		}
	}
}

// StartCertificateScheduler runs the certificate reconciler every hour
func StartCertificateScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("@hourly", reconcileCertificates); err != nil {
		log.Fatalf("Failed to schedule certificate reconciler: %v", err)
	}

	c.Start()
	logScheduler("Certificate scheduler started")
	return c
}
