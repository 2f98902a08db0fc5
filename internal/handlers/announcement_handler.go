package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nori1432/Laws-sub002/config"
	"github.com/nori1432/Laws-sub002/models"
)

// ListAnnouncementsHandler returns announcements for the public pages, pinned
// items first.
func ListAnnouncementsHandler(c *gin.Context) {
	var announcements []models.Announcement
	if err := config.DB.Order("pinned desc, created_at desc").
		Scopes(Paginate(c)).Find(&announcements).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch announcements"})
		return
	}

	var totalRows int64
	config.DB.Model(&models.Announcement{}).Count(&totalRows)
	c.JSON(http.StatusOK, CreatePaginatedResponse(c, announcements, totalRows))
}

// CreateAnnouncementHandler publishes an announcement (admin).
func CreateAnnouncementHandler(c *gin.Context) {
	var input models.AnnouncementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	announcement := models.Announcement{
		Title:    input.Title,
		Body:     input.Body,
		ImageURL: input.ImageURL,
		Pinned:   input.Pinned,
		AuthorID: c.GetUint("user_id"),
	}
	if err := config.DB.Create(&announcement).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create announcement"})
		return
	}
	c.JSON(http.StatusCreated, announcement)
}

// UpdateAnnouncementHandler edits an announcement (admin).
func UpdateAnnouncementHandler(c *gin.Context) {
	var announcement models.Announcement
	if err := config.DB.First(&announcement, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Announcement not found"})
		return
	}

	var input models.AnnouncementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	announcement.Title = input.Title
	announcement.Body = input.Body
	announcement.ImageURL = input.ImageURL
	announcement.Pinned = input.Pinned
	if err := config.DB.Save(&announcement).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update announcement"})
		return
	}
	c.JSON(http.StatusOK, announcement)
}

// DeleteAnnouncementHandler removes an announcement (admin).
func DeleteAnnouncementHandler(c *gin.Context) {
	if err := config.DB.Delete(&models.Announcement{}, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete announcement"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Announcement deleted"})
}
