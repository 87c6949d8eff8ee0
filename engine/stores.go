package engine

import (
	"strings"

	"lms/models"
)

// Valid answer labels for a question.
const labels = "ABCD"

// AnswerKeyStore holds, per course, the ordered set of questions with their
// correct labels. Question order is creation order and is stable across reads.
type AnswerKeyStore interface {
	// GetAnswerKey returns the course's questions in creation order, or
	// ErrCourseNotFound if the course has none.
	GetAnswerKey(courseID uint) ([]models.Quiz, error)
	// AddQuestion appends a question to the course. Questions are
	// append-only: once attempts reference a key there is no edit path.
	AddQuestion(courseID uint, question, optionA, optionB, optionC, optionD, correct string) (*models.Quiz, error)
}

// AttemptLedger owns StudentProgress rows and is the single source of truth
// for attempt counts, best scores and certificate status. Callers never
// mutate records directly.
type AttemptLedger interface {
	// GetRecord returns the record for the pair, or nil when absent.
	GetRecord(studentID, courseID uint) (*models.StudentProgress, error)
	// RecordAttempt applies one accepted submission. It re-validates the
	// attempt cap and certificate state at mutation time, so a stale
	// caller can never push a record past either rule.
	RecordAttempt(studentID, courseID uint, result GradedResult) (*models.StudentProgress, error)
}

// validateQuestion checks authoring input before it reaches a store.
func validateQuestion(question, optionA, optionB, optionC, optionD, correct string) error {
	if strings.TrimSpace(question) == "" {
		return ErrInvalidInput
	}
	for _, option := range []string{optionA, optionB, optionC, optionD} {
		if strings.TrimSpace(option) == "" {
			return ErrInvalidInput
		}
	}
	if len(correct) != 1 || !strings.Contains(labels, correct) {
		return ErrInvalidInput
	}
	return nil
}

// applyAttempt mutates rec with one accepted attempt. The best score is
// replaced only on strict improvement, so on ties the earlier best is kept.
// The certificate flag is evaluated against the best-so-far and OR'd with
// any prior value; it never transitions back to false.
func applyAttempt(rec *models.StudentProgress, result GradedResult) error {
	if rec.CertificateEarned {
		return ErrAlreadyCertified
	}
	if rec.QuizAttempts >= MaxAttempts {
		return ErrAttemptLimitExceeded
	}

	if rec.QuizAttempts == 0 || result.Score > rec.QuizScore {
		rec.QuizScore = result.Score
		rec.QuizTotal = result.Total
	}
	rec.QuizAttempts++
	rec.CertificateEarned = rec.CertificateEarned || IsCertified(rec.QuizScore, rec.QuizTotal)
	return nil
}
