package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nori1432/Laws-sub002/config"
	"github.com/nori1432/Laws-sub002/models"
)

const (
	setupTokenTTL    = 5 * time.Minute
	setupTokenPrefix = "attendance:setup:"
)

// RequestSetupTokenHandler issues a one-time device setup token for the
// authenticated student. The token lives in Redis for five minutes and is
// consumed on first redemption; the student shows it (as a QR code rendered
// client-side) to the scanner device being registered.
func RequestSetupTokenHandler(c *gin.Context) {
	if config.RDB == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Device setup is not available"})
		return
	}

	student, ok := currentStudent(c)
	if !ok {
		return
	}

	token := uuid.NewString()
	key := setupTokenPrefix + token
	if err := config.RDB.Set(config.Ctx, key, student.ID, setupTokenTTL).Err(); err != nil {
		slog.Error("Failed to store setup token", "error", err, "student_id", student.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not issue setup token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresIn": int(setupTokenTTL.Seconds()),
	})
}

// RedeemSetupTokenHandler consumes a one-time setup token and binds the
// calling device to the student. GETDEL makes the token single-use: a second
// redemption of the same token fails even if it races the first.
func RedeemSetupTokenHandler(c *gin.Context) {
	if config.RDB == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Device setup is not available"})
		return
	}

	var input models.SetupRedeemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	val, err := config.RDB.GetDel(config.Ctx, setupTokenPrefix+input.Token).Result()
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired setup token"})
		return
	}
	studentID, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		slog.Error("Corrupt setup token payload", "value", val)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not redeem setup token"})
		return
	}

	var student models.Student
	if err := config.DB.First(&student, uint(studentID)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	// Re-running setup on a known device rebinds it instead of failing.
	var reg models.DeviceRegistration
	err = config.DB.Where("device_id = ?", input.DeviceID).First(&reg).Error
	switch {
	case err == nil:
		reg.StudentID = student.ID
		err = config.DB.Save(&reg).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		reg = models.DeviceRegistration{StudentID: student.ID, DeviceID: input.DeviceID}
		err = config.DB.Create(&reg).Error
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not register device"})
		return
	}

	slog.Info("Device registered", "student_id", student.ID, "device_id", input.DeviceID)
	c.JSON(http.StatusOK, gin.H{"barcode": student.Barcode})
}

// CheckinHandler records a barcode scan for a section. The check-in is
// idempotent per (student, section, day); re-scanning the same card returns
// the existing record instead of an error, so a flaky scanner cannot create
// duplicates. Every new check-in is pushed to the live feed.
func CheckinHandler(c *gin.Context) {
	var input models.CheckinInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	var student models.Student
	if err := config.DB.Preload("User").Where("barcode = ?", input.Barcode).First(&student).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown barcode"})
		return
	}

	var section models.Section
	if err := config.DB.First(&section, input.SectionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}

	var enrollment models.Enrollment
	err := config.DB.Where("student_id = ? AND section_id = ? AND status = ?",
		student.ID, section.ID, models.EnrollmentApproved).First(&enrollment).Error
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Student is not enrolled in this section"})
		return
	}

	now := time.Now()
	today := now.Format("2006-01-02")

	var existing models.Attendance
	err = config.DB.Where("student_id = ? AND section_id = ? AND date = ?",
		student.ID, section.ID, today).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"attendance": existing, "alreadyCheckedIn": true})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	attendance := models.Attendance{
		StudentID:   student.ID,
		SectionID:   section.ID,
		Date:        today,
		CheckedInAt: now,
	}
	if err := config.DB.Create(&attendance).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not record check-in"})
		return
	}

	LiveHub.Publish(CheckinEvent{
		StudentID:   student.ID,
		StudentName: student.User.FullName,
		SectionID:   section.ID,
		SectionName: section.Name,
		CheckedInAt: now,
	})

	slog.Info("Check-in recorded", "student_id", student.ID, "section_id", section.ID)
	c.JSON(http.StatusCreated, gin.H{"attendance": attendance, "alreadyCheckedIn": false})
}

// TodayAttendanceHandler lists today's check-ins, optionally for one section.
func TodayAttendanceHandler(c *gin.Context) {
	today := time.Now().Format("2006-01-02")

	query := config.DB.Preload("Student").Preload("Student.User").Preload("Section").
		Where("date = ?", today).Order("checked_in_at desc")
	if sectionID := c.Query("section_id"); sectionID != "" {
		query = query.Where("section_id = ?", sectionID)
	}

	var records []models.Attendance
	if err := query.Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch attendance"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": today, "data": records})
}
