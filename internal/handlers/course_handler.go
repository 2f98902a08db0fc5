package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nori1432/Laws-sub002/config"
	"github.com/nori1432/Laws-sub002/models"
)

// ListCoursesHandler returns the course catalogue with sections preloaded.
// Public: the marketing pages render from this.
func ListCoursesHandler(c *gin.Context) {
	var courses []models.Course
	query := config.DB.Preload("Sections").Order("id asc")
	if c.Query("all") != "true" {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&courses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch courses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": courses})
}

// GetCourseHandler returns a single course with its sections.
func GetCourseHandler(c *gin.Context) {
	var course models.Course
	if err := config.DB.Preload("Sections").First(&course, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, course)
}

// CreateCourseHandler creates a course (admin).
func CreateCourseHandler(c *gin.Context) {
	var input models.CourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	course := models.Course{
		Name:          input.Name,
		Description:   input.Description,
		Category:      input.Category,
		PricePerMonth: input.PricePerMonth,
		IsActive:      input.IsActive,
	}
	if err := config.DB.Create(&course).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create course"})
		return
	}
	c.JSON(http.StatusCreated, course)
}

// UpdateCourseHandler updates a course (admin).
func UpdateCourseHandler(c *gin.Context) {
	var course models.Course
	if err := config.DB.First(&course, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	var input models.CourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	course.Name = input.Name
	course.Description = input.Description
	course.Category = input.Category
	course.PricePerMonth = input.PricePerMonth
	if input.IsActive != nil {
		course.IsActive = input.IsActive
	}
	if err := config.DB.Save(&course).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update course"})
		return
	}
	c.JSON(http.StatusOK, course)
}

// DeleteCourseHandler soft-deletes a course (admin).
func DeleteCourseHandler(c *gin.Context) {
	if err := config.DB.Delete(&models.Course{}, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete course"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Course deleted"})
}
