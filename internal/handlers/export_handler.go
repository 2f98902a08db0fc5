package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/nori1432/Laws-sub002/config"
	"github.com/nori1432/Laws-sub002/models"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportAttendanceHandler streams an .xlsx of check-ins for a date range,
// optionally restricted to one section. Dates default to the last 30 days.
func ExportAttendanceHandler(c *gin.Context) {
	to := c.DefaultQuery("to", time.Now().Format("2006-01-02"))
	from := c.DefaultQuery("from", time.Now().AddDate(0, 0, -30).Format("2006-01-02"))

	query := config.DB.Preload("Student").Preload("Student.User").
		Preload("Section").Preload("Section.Course").
		Where("date >= ? AND date <= ?", from, to).Order("date asc, checked_in_at asc")
	if sectionID := c.Query("section_id"); sectionID != "" {
		query = query.Where("section_id = ?", sectionID)
	}

	var records []models.Attendance
	if err := query.Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch attendance"})
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Attendance"
	f.SetSheetName("Sheet1", sheet)

	headers := []interface{}{"Date", "Time", "Student", "Section", "Course"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not build spreadsheet"})
		return
	}

	for i, r := range records {
		studentName := ""
		if r.Student != nil {
			studentName = r.Student.User.FullName
		}
		sectionName, courseName := "", ""
		if r.Section != nil {
			sectionName = r.Section.Name
			if r.Section.Course != nil {
				courseName = r.Section.Course.Name
			}
		}
		row := []interface{}{
			r.Date,
			r.CheckedInAt.Format("15:04"),
			studentName,
			sectionName,
			courseName,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not build spreadsheet"})
			return
		}
	}

	filename := fmt.Sprintf("attendance_%s_%s.xlsx", from, to)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Header("Content-Type", xlsxContentType)
	if err := f.Write(c.Writer); err != nil {
		slog.Error("Failed to stream attendance export", "error", err)
	}
}

// ExportEnrollmentsHandler streams an .xlsx roster of approved enrollments per
// section.
func ExportEnrollmentsHandler(c *gin.Context) {
	query := config.DB.Preload("Student").Preload("Student.User").
		Preload("Section").Preload("Section.Course").
		Where("status = ?", models.EnrollmentApproved).
		Order("section_id asc, id asc")
	if sectionID := c.Query("section_id"); sectionID != "" {
		query = query.Where("section_id = ?", sectionID)
	}

	var enrollments []models.Enrollment
	if err := query.Find(&enrollments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch enrollments"})
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Roster"
	f.SetSheetName("Sheet1", sheet)

	headers := []interface{}{"Section", "Course", "Schedule", "Student", "Guardian phone", "Approved on"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not build spreadsheet"})
		return
	}

	for i, e := range enrollments {
		sectionName, courseName, scheduleStr := "", "", ""
		if e.Section != nil {
			sectionName = e.Section.Name
			scheduleStr = e.Section.Schedule
			if e.Section.Course != nil {
				courseName = e.Section.Course.Name
			}
		}
		studentName, guardianPhone := "", ""
		if e.Student != nil {
			studentName = e.Student.User.FullName
			guardianPhone = e.Student.GuardianPhone
		}
		approvedOn := ""
		if e.DecidedAt != nil {
			approvedOn = e.DecidedAt.Format("2006-01-02")
		}
		row := []interface{}{sectionName, courseName, scheduleStr, studentName, guardianPhone, approvedOn}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not build spreadsheet"})
			return
		}
	}

	c.Header("Content-Disposition", `attachment; filename="enrollment_roster.xlsx"`)
	c.Header("Content-Type", xlsxContentType)
	if err := f.Write(c.Writer); err != nil {
		slog.Error("Failed to stream enrollment export", "error", err)
	}
}
