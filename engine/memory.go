package engine

import (
	"sync"

	"lms/models"
)

// MemoryAnswerKeyStore is an in-memory AnswerKeyStore implementation.
type MemoryAnswerKeyStore struct {
	mu     sync.RWMutex
	nextID uint
	keys   map[uint][]models.Quiz
}

func NewMemoryAnswerKeyStore() *MemoryAnswerKeyStore {
	return &MemoryAnswerKeyStore{keys: make(map[uint][]models.Quiz)}
}

func (s *MemoryAnswerKeyStore) GetAnswerKey(courseID uint) ([]models.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key, ok := s.keys[courseID]
	if !ok || len(key) == 0 {
		return nil, ErrCourseNotFound
	}
	out := make([]models.Quiz, len(key))
	copy(out, key)
	return out, nil
}

func (s *MemoryAnswerKeyStore) AddQuestion(courseID uint, question, optionA, optionB, optionC, optionD, correct string) (*models.Quiz, error) {
	if err := validateQuestion(question, optionA, optionB, optionC, optionD, correct); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	quiz := models.Quiz{
		Question:      question,
		OptionA:       optionA,
		OptionB:       optionB,
		OptionC:       optionC,
		OptionD:       optionD,
		CorrectAnswer: correct,
		CourseID:      courseID,
	}
	quiz.ID = s.nextID
	s.keys[courseID] = append(s.keys[courseID], quiz)
	return &quiz, nil
}

// MemoryAttemptLedger is an in-memory AttemptLedger implementation.
type MemoryAttemptLedger struct {
	mu      sync.RWMutex
	locks   *keyedMutex
	nextID  uint
	records map[attemptKey]*models.StudentProgress
}

func NewMemoryAttemptLedger() *MemoryAttemptLedger {
	return &MemoryAttemptLedger{
		locks:   newKeyedMutex(),
		records: make(map[attemptKey]*models.StudentProgress),
	}
}

func (l *MemoryAttemptLedger) GetRecord(studentID, courseID uint) (*models.StudentProgress, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	rec, ok := l.records[attemptKey{StudentID: studentID, CourseID: courseID}]
	if !ok {
		return nil, nil
	}
	out := *rec
	return &out, nil
}

func (l *MemoryAttemptLedger) RecordAttempt(studentID, courseID uint, result GradedResult) (*models.StudentProgress, error) {
	key := attemptKey{StudentID: studentID, CourseID: courseID}
	unlock := l.locks.lock(key)
	defer unlock()

	// Work on a copy so readers never observe a half-applied attempt and a
	// rejected attempt leaves the stored record untouched.
	l.mu.Lock()
	var work models.StudentProgress
	if rec, ok := l.records[key]; ok {
		work = *rec
	} else {
		l.nextID++
		work = models.StudentProgress{StudentID: studentID, CourseID: courseID}
		work.ID = l.nextID
	}
	l.mu.Unlock()

	if err := applyAttempt(&work, result); err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.records[key] = &work
	l.mu.Unlock()

	out := work
	return &out, nil
}
