package models

import "gorm.io/gorm"

// Enrollment tracks a student's enrollment in a course
type Enrollment struct {
	gorm.Model
	UserID    uint `json:"user_id" gorm:"index;not null;uniqueIndex:idx_user_course"`
	CourseID  uint `json:"course_id" gorm:"index;not null;uniqueIndex:idx_user_course"`
	IsDeleted bool `json:"-" gorm:"default:false"`
}
