package models

import (
	"time"

	"gorm.io/gorm"
)

// Attendance is one check-in: a student scanned their card for a section on a
// given date. The unique index makes check-in idempotent per day.
type Attendance struct {
	gorm.Model
	StudentID   uint      `json:"studentId" gorm:"not null;index:idx_att_day,unique"`
	SectionID   uint      `json:"sectionId" gorm:"not null;index:idx_att_day,unique"`
	Date        string    `json:"date" gorm:"not null;index:idx_att_day,unique"` // "2006-01-02"
	CheckedInAt time.Time `json:"checkedInAt"`

	Student *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Section *Section `gorm:"foreignKey:SectionID" json:"section,omitempty"`
}

// DeviceRegistration binds a scanning device to a student after the one-time
// setup token has been redeemed. One row per device.
type DeviceRegistration struct {
	gorm.Model
	StudentID uint   `json:"studentId" gorm:"not null"`
	DeviceID  string `json:"deviceId" gorm:"unique;not null"`

	Student *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

// CheckinInput binds the scanner's check-in request.
type CheckinInput struct {
	Barcode   string `json:"barcode" binding:"required"`
	SectionID uint   `json:"sectionId" binding:"required"`
}

// SetupRedeemInput binds the one-time device setup redemption.
type SetupRedeemInput struct {
	Token    string `json:"token" binding:"required"`
	DeviceID string `json:"deviceId" binding:"required"`
}
