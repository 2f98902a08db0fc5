package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment statuses. A request starts pending and an admin moves it to
// approved or rejected; only approved enrollments count against capacity and
// admit the student to check-in.
const (
	EnrollmentPending  = "pending"
	EnrollmentApproved = "approved"
	EnrollmentRejected = "rejected"
)

// Enrollment is a student's request to join a section, plus its approval
// outcome.
type Enrollment struct {
	gorm.Model
	StudentID  uint       `json:"studentId" gorm:"not null;index:idx_enroll_student_section,unique"`
	SectionID  uint       `json:"sectionId" gorm:"not null;index:idx_enroll_student_section,unique"`
	Status     string     `json:"status" gorm:"default:pending"`
	DecidedAt  *time.Time `json:"decidedAt"`
	DecidedBy  *uint      `json:"decidedBy"`
	RejectNote string     `json:"rejectNote"`

	Student *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Section *Section `gorm:"foreignKey:SectionID" json:"section,omitempty"`
}

// EnrollmentInput binds a student's enrollment request.
type EnrollmentInput struct {
	SectionID uint `json:"sectionId" binding:"required"`
}

// EnrollmentDecision binds an admin's approve/reject action.
type EnrollmentDecision struct {
	RejectNote string `json:"rejectNote"`
}
