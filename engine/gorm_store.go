package engine

import (
	"errors"

	"lms/models"

	"gorm.io/gorm"
)

// GormAnswerKeyStore is the database-backed AnswerKeyStore.
type GormAnswerKeyStore struct {
	db *gorm.DB
}

func NewGormAnswerKeyStore(db *gorm.DB) *GormAnswerKeyStore {
	return &GormAnswerKeyStore{db: db}
}

func (s *GormAnswerKeyStore) GetAnswerKey(courseID uint) ([]models.Quiz, error) {
	var questions []models.Quiz
	if err := s.db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("id asc").Find(&questions).Error; err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrCourseNotFound
	}
	return questions, nil
}

func (s *GormAnswerKeyStore) AddQuestion(courseID uint, question, optionA, optionB, optionC, optionD, correct string) (*models.Quiz, error) {
	if err := validateQuestion(question, optionA, optionB, optionC, optionD, correct); err != nil {
		return nil, err
	}

	quiz := models.Quiz{
		Question:      question,
		OptionA:       optionA,
		OptionB:       optionB,
		OptionC:       optionC,
		OptionD:       optionD,
		CorrectAnswer: correct,
		CourseID:      courseID,
	}
	if err := s.db.Create(&quiz).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

// GormAttemptLedger is the database-backed AttemptLedger. Same-key
// submissions are serialized with a per-key lock and the read-check-write
// runs inside one transaction, so the cap holds under concurrent submits.
type GormAttemptLedger struct {
	db    *gorm.DB
	locks *keyedMutex
}

func NewGormAttemptLedger(db *gorm.DB) *GormAttemptLedger {
	return &GormAttemptLedger{db: db, locks: newKeyedMutex()}
}

func (l *GormAttemptLedger) GetRecord(studentID, courseID uint) (*models.StudentProgress, error) {
	var rec models.StudentProgress
	err := l.db.Where("student_id = ? AND course_id = ? AND is_deleted = ?", studentID, courseID, false).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (l *GormAttemptLedger) RecordAttempt(studentID, courseID uint, result GradedResult) (*models.StudentProgress, error) {
	unlock := l.locks.lock(attemptKey{StudentID: studentID, CourseID: courseID})
	defer unlock()

	var rec models.StudentProgress
	err := l.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("student_id = ? AND course_id = ? AND is_deleted = ?", studentID, courseID, false).
			First(&rec).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			rec = models.StudentProgress{StudentID: studentID, CourseID: courseID}
		} else if err != nil {
			return err
		}

		if err := applyAttempt(&rec, result); err != nil {
			return err
		}
		return tx.Save(&rec).Error
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
