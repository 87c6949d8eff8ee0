package models

import "gorm.io/gorm"

// Course represents a learning course owned by a teacher
type Course struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description"`
	TeacherID   uint   `json:"teacher_id" gorm:"index;not null"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
	IsDeleted   bool   `json:"-" gorm:"default:false"`
}
