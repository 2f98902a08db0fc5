package models

import (
	"time"

	"gorm.io/gorm"
)

// SubscriptionPayment records one monthly payment for an approved enrollment.
// Amount is the final charged value after any discount formula was applied;
// AmountInWords is frozen at receipt time so later formula edits cannot
// silently rewrite an issued receipt.
type SubscriptionPayment struct {
	gorm.Model
	EnrollmentID  uint      `json:"enrollmentId" gorm:"not null"`
	Month         string    `json:"month" gorm:"not null"` // "2006-01"
	Amount        float64   `json:"amount" gorm:"not null"`
	Formula       string    `json:"formula"`
	ReceiptNumber string    `json:"receiptNumber" gorm:"unique;not null"`
	AmountInWords string    `json:"amountInWords"`
	PaidAt        time.Time `json:"paidAt"`
	RecordedBy    uint      `json:"recordedBy"`

	Enrollment *Enrollment `gorm:"foreignKey:EnrollmentID" json:"enrollment,omitempty"`
}

// PaymentInput binds the record-payment payload. Formula is optional; when
// present it is evaluated against {price, siblings} to produce the final
// amount, otherwise the course's monthly price is charged as-is.
type PaymentInput struct {
	EnrollmentID uint   `json:"enrollmentId" binding:"required"`
	Month        string `json:"month" binding:"required"`
	Formula      string `json:"formula"`
	Siblings     int    `json:"siblings"`
}
