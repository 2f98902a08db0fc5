package models

import "gorm.io/gorm"

// Roles a user account can hold.
const (
	RoleAdmin   = "admin"
	RoleStaff   = "staff"
	RoleStudent = "student"
)

// User is a login identity: academy staff, admins and students all
// authenticate through the same table.
type User struct {
	gorm.Model
	Email        string `json:"email" gorm:"unique;not null"`
	PasswordHash string `json:"-" gorm:"not null"`
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	Role         string `json:"role" gorm:"default:student"`
	Status       string `json:"status" gorm:"default:active"`
}

// UserResponse is the user shape sent in API responses. Kept separate from the
// model so the password hash can never leak into a payload.
type UserResponse struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

// Response converts a User into its API shape.
func (u *User) Response() UserResponse {
	return UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Phone:    u.Phone,
		Role:     u.Role,
		Status:   u.Status,
	}
}
