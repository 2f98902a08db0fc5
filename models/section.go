package models

import "gorm.io/gorm"

// Section is a scheduled offering of a course: a teacher, a capacity and a
// weekly time slot. The slot is stored as the compact schedule string
// "Day HH:MM-HH:MM", or the "TBD" sentinel while the section is unscheduled.
// The string is deliberately kept opaque here; internal/schedule owns its
// parsing and silently treats anything malformed as unscheduled.
type Section struct {
	gorm.Model
	CourseID uint   `json:"courseId" gorm:"not null"`
	Name     string `json:"name" gorm:"not null"`
	Teacher  string `json:"teacher"`
	Capacity int    `json:"capacity" gorm:"default:20"`
	Enrolled int    `json:"enrolled" gorm:"default:0"`
	IsActive *bool  `json:"isActive" gorm:"default:true"`
	Schedule string `json:"schedule" gorm:"default:TBD"`

	Course *Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

// SectionInput binds the create/update payload for a section.
type SectionInput struct {
	CourseID uint   `json:"courseId" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Teacher  string `json:"teacher"`
	Capacity int    `json:"capacity" binding:"min=1"`
	IsActive *bool  `json:"isActive"`
}

// ScheduleInput binds the schedule PATCH payload. The string is accepted
// verbatim: the formatted "Day HH:MM-HH:MM" value or the "TBD" sentinel.
type ScheduleInput struct {
	Schedule string `json:"schedule" binding:"required"`
}
