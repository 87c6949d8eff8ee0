package models

import "gorm.io/gorm"

// StudentProgress is the per-student-per-course ledger entry: lesson
// completion, quiz attempts used, best quiz score and certificate status.
// The quiz fields are owned exclusively by the attempt ledger; nothing
// else writes them.
type StudentProgress struct {
	gorm.Model
	StudentID         uint `json:"student_id" gorm:"index;not null;uniqueIndex:idx_student_course"`
	CourseID          uint `json:"course_id" gorm:"index;not null;uniqueIndex:idx_student_course"`
	LessonCompleted   bool `json:"lesson_completed" gorm:"default:false"`
	QuizScore         int  `json:"quiz_score" gorm:"default:0"` // best score across attempts
	QuizTotal         int  `json:"quiz_total" gorm:"default:0"` // question count of the best attempt
	QuizAttempts      int  `json:"quiz_attempts" gorm:"default:0"`
	CertificateEarned bool `json:"certificate_earned" gorm:"default:false"` // monotonic, never cleared
	IsDeleted         bool `json:"-" gorm:"default:false"`
}
