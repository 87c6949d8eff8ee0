package models

import "gorm.io/gorm"

// Lesson represents study material within a course
type Lesson struct {
	gorm.Model
	Title     string `json:"title"`
	Content   string `json:"content"`
	CourseID  uint   `json:"course_id" gorm:"index;not null"`
	IsDeleted bool   `json:"-" gorm:"default:false"`
}
