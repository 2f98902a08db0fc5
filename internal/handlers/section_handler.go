package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nori1432/Laws-sub002/config"
	"github.com/nori1432/Laws-sub002/models"
)

// ListSectionsHandler returns sections, optionally filtered by course.
func ListSectionsHandler(c *gin.Context) {
	query := config.DB.Preload("Course").Order("id asc")
	if courseID := c.Query("course_id"); courseID != "" {
		query = query.Where("course_id = ?", courseID)
	}
	if c.Query("all") != "true" {
		query = query.Where("is_active = ?", true)
	}

	var sections []models.Section
	if err := query.Find(&sections).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch sections"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": sections})
}

// GetSectionHandler returns one section.
func GetSectionHandler(c *gin.Context) {
	var section models.Section
	if err := config.DB.Preload("Course").First(&section, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, section)
}

// CreateSectionHandler creates a section (admin). New sections start
// unscheduled; the schedule is set later through the grid editor.
func CreateSectionHandler(c *gin.Context) {
	var input models.SectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	var course models.Course
	if err := config.DB.First(&course, input.CourseID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	section := models.Section{
		CourseID: input.CourseID,
		Name:     input.Name,
		Teacher:  input.Teacher,
		Capacity: input.Capacity,
		IsActive: input.IsActive,
	}
	if err := config.DB.Create(&section).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create section"})
		return
	}
	c.JSON(http.StatusCreated, section)
}

// UpdateSectionHandler updates a section's descriptive fields (admin). The
// schedule string has its own endpoint.
func UpdateSectionHandler(c *gin.Context) {
	var section models.Section
	if err := config.DB.First(&section, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}

	var input models.SectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	section.CourseID = input.CourseID
	section.Name = input.Name
	section.Teacher = input.Teacher
	section.Capacity = input.Capacity
	if input.IsActive != nil {
		section.IsActive = input.IsActive
	}
	if err := config.DB.Save(&section).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update section"})
		return
	}
	c.JSON(http.StatusOK, section)
}

// UpdateSectionScheduleHandler is the persistence target of the grid editor's
// update callback: it stores the formatted schedule string (or the TBD
// sentinel) verbatim. No shape validation happens here; a string the codec
// cannot parse simply renders the section as unscheduled.
func UpdateSectionScheduleHandler(c *gin.Context) {
	var section models.Section
	if err := config.DB.First(&section, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}

	var input models.ScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	section.Schedule = input.Schedule
	if err := config.DB.Save(&section).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update schedule"})
		return
	}

	slog.Info("Section schedule updated", "section_id", section.ID, "schedule", section.Schedule)
	c.JSON(http.StatusOK, section)
}

// DeleteSectionHandler soft-deletes a section (admin).
func DeleteSectionHandler(c *gin.Context) {
	if err := config.DB.Delete(&models.Section{}, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete section"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Section deleted"})
}
