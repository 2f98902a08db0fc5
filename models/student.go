package models

import (
	"time"

	"gorm.io/gorm"
)

// Student is the academy profile behind a student user account. The barcode is
// the value printed on the student's card and scanned at check-in; it is a
// UUID string so cards cannot be guessed from sequential ids.
type Student struct {
	gorm.Model
	UserID        uint       `json:"userId" gorm:"unique;not null"`
	Barcode       string     `json:"barcode" gorm:"unique;not null"`
	BirthDate     *time.Time `json:"birthDate"`
	GuardianName  string     `json:"guardianName"`
	GuardianPhone string     `json:"guardianPhone"`
	Notes         string     `json:"notes"`

	User        User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Enrollments []Enrollment `gorm:"foreignKey:StudentID" json:"enrollments,omitempty"`
}

// StudentInput binds the create/update payload from the admin panel.
type StudentInput struct {
	Email         string     `json:"email" binding:"required,email"`
	FullName      string     `json:"fullName" binding:"required"`
	Phone         string     `json:"phone"`
	Password      string     `json:"password"`
	BirthDate     *time.Time `json:"birthDate"`
	GuardianName  string     `json:"guardianName"`
	GuardianPhone string     `json:"guardianPhone"`
	Notes         string     `json:"notes"`
}
