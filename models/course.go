package models

import "gorm.io/gorm"

// Course is a subject the academy teaches; students enroll into its sections.
type Course struct {
	gorm.Model
	Name          string  `json:"name" gorm:"not null"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	PricePerMonth float64 `json:"pricePerMonth"`
	IsActive      *bool   `json:"isActive" gorm:"default:true"`

	Sections []Section `gorm:"foreignKey:CourseID" json:"sections,omitempty"`
}

// CourseInput binds the create/update payload for a course.
type CourseInput struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	PricePerMonth float64 `json:"pricePerMonth" binding:"min=0"`
	IsActive      *bool   `json:"isActive"`
}
