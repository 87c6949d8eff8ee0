package models

import "gorm.io/gorm"

// Quiz represents a single multiple choice question belonging to a course.
// The correct answer is never serialized; student-facing reads go through
// a response struct that omits it.
type Quiz struct {
	gorm.Model
	Question      string `json:"question" gorm:"not null"`
	OptionA       string `json:"option_a" gorm:"not null"`
	OptionB       string `json:"option_b" gorm:"not null"`
	OptionC       string `json:"option_c" gorm:"not null"`
	OptionD       string `json:"option_d" gorm:"not null"`
	CorrectAnswer string `json:"-" gorm:"not null"` // A, B, C or D
	CourseID      uint   `json:"course_id" gorm:"index;not null"`
	IsDeleted     bool   `json:"-" gorm:"default:false"`
}
