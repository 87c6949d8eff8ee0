package engine

import "errors"

var (
	// ErrCourseNotFound is returned when a course has no quiz questions to take.
	ErrCourseNotFound = errors.New("no quiz questions found for this course")
	// ErrInvalidInput indicates malformed question authoring data.
	ErrInvalidInput = errors.New("invalid question data")
	// ErrIncompleteSubmission is returned when a submission does not cover
	// every question of the course exactly once.
	ErrIncompleteSubmission = errors.New("submission must answer every question of the course")
	// ErrAttemptLimitExceeded is returned once the attempt cap is reached.
	ErrAttemptLimitExceeded = errors.New("maximum quiz attempts reached")
	// ErrAlreadyCertified rejects further submissions after the certificate
	// has been earned.
	ErrAlreadyCertified = errors.New("certificate already earned for this course")
)
