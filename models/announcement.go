package models

import "gorm.io/gorm"

// Announcement is a news item shown on the academy's public pages.
type Announcement struct {
	gorm.Model
	Title    string `json:"title" gorm:"not null"`
	Body     string `json:"body"`
	ImageURL string `json:"imageUrl"`
	Pinned   bool   `json:"pinned"`
	AuthorID uint   `json:"authorId"`
}

// AnnouncementInput binds the create/update payload for an announcement.
type AnnouncementInput struct {
	Title    string `json:"title" binding:"required"`
	Body     string `json:"body"`
	ImageURL string `json:"imageUrl"`
	Pinned   bool   `json:"pinned"`
}
