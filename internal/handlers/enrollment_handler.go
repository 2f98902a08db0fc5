package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nori1432/Laws-sub002/config"
	"github.com/nori1432/Laws-sub002/models"
)

// RequestEnrollmentHandler files a pending enrollment request for the
// authenticated student.
func RequestEnrollmentHandler(c *gin.Context) {
	var input models.EnrollmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	student, ok := currentStudent(c)
	if !ok {
		return
	}

	var section models.Section
	if err := config.DB.First(&section, input.SectionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}
	if section.IsActive != nil && !*section.IsActive {
		c.JSON(http.StatusConflict, gin.H{"error": "Section is not open for enrollment"})
		return
	}

	var existing models.Enrollment
	err := config.DB.Where("student_id = ? AND section_id = ?", student.ID, section.ID).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Enrollment already exists with status %q", existing.Status)})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	enrollment := models.Enrollment{
		StudentID: student.ID,
		SectionID: section.ID,
		Status:    models.EnrollmentPending,
	}
	if err := config.DB.Create(&enrollment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create enrollment request"})
		return
	}

	slog.Info("Enrollment requested", "student_id", student.ID, "section_id", section.ID)
	c.JSON(http.StatusCreated, enrollment)
}

// ListMyEnrollmentsHandler returns the authenticated student's enrollments.
func ListMyEnrollmentsHandler(c *gin.Context) {
	student, ok := currentStudent(c)
	if !ok {
		return
	}

	var enrollments []models.Enrollment
	if err := config.DB.Preload("Section").Preload("Section.Course").
		Where("student_id = ?", student.ID).Order("id desc").Find(&enrollments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch enrollments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": enrollments})
}

// ListEnrollmentsHandler returns enrollments for the admin panel, filtered by
// status (default pending) and paginated.
func ListEnrollmentsHandler(c *gin.Context) {
	status := c.DefaultQuery("status", models.EnrollmentPending)

	query := config.DB.Model(&models.Enrollment{}).Where("status = ?", status)
	var totalRows int64
	query.Count(&totalRows)

	var enrollments []models.Enrollment
	if err := config.DB.Preload("Student").Preload("Student.User").
		Preload("Section").Preload("Section.Course").
		Where("status = ?", status).Order("id asc").
		Scopes(Paginate(c)).Find(&enrollments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch enrollments"})
		return
	}

	c.JSON(http.StatusOK, CreatePaginatedResponse(c, enrollments, totalRows))
}

// ApproveEnrollmentHandler approves a pending request. The capacity check and
// the enrolled-count bump happen inside one transaction so two concurrent
// approvals cannot oversubscribe a section.
func ApproveEnrollmentHandler(c *gin.Context) {
	adminID := c.GetUint("user_id")

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var enrollment models.Enrollment
		if err := tx.First(&enrollment, c.Param("id")).Error; err != nil {
			return err
		}
		if enrollment.Status != models.EnrollmentPending {
			return fmt.Errorf("enrollment is already %s", enrollment.Status)
		}

		var section models.Section
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&section, enrollment.SectionID).Error; err != nil {
			return err
		}
		if section.Enrolled >= section.Capacity {
			return errSectionFull
		}

		now := time.Now()
		enrollment.Status = models.EnrollmentApproved
		enrollment.DecidedAt = &now
		enrollment.DecidedBy = &adminID
		if err := tx.Save(&enrollment).Error; err != nil {
			return err
		}

		section.Enrolled++
		return tx.Save(&section).Error
	})

	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Enrollment approved"})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Enrollment not found"})
	case errors.Is(err, errSectionFull):
		c.JSON(http.StatusConflict, gin.H{"error": "Section is full"})
	default:
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	}
}

// RejectEnrollmentHandler rejects a pending request with an optional note.
func RejectEnrollmentHandler(c *gin.Context) {
	adminID := c.GetUint("user_id")

	var decision models.EnrollmentDecision
	// The body is optional; a bare reject is fine.
	_ = c.ShouldBindJSON(&decision)

	var enrollment models.Enrollment
	if err := config.DB.First(&enrollment, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Enrollment not found"})
		return
	}
	if enrollment.Status != models.EnrollmentPending {
		c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Enrollment is already %s", enrollment.Status)})
		return
	}

	now := time.Now()
	enrollment.Status = models.EnrollmentRejected
	enrollment.DecidedAt = &now
	enrollment.DecidedBy = &adminID
	enrollment.RejectNote = decision.RejectNote
	if err := config.DB.Save(&enrollment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update enrollment"})
		return
	}
	c.JSON(http.StatusOK, enrollment)
}

var errSectionFull = errors.New("section is full")

// currentStudent resolves the authenticated user's student profile, writing
// the error response itself when there is none.
func currentStudent(c *gin.Context) (models.Student, bool) {
	userID := c.GetUint("user_id")

	var student models.Student
	if err := config.DB.Where("user_id = ?", userID).First(&student).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "No student profile for this account"})
		return models.Student{}, false
	}
	return student, true
}
