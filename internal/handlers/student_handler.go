package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nori1432/Laws-sub002/config"
	"github.com/nori1432/Laws-sub002/internal/middleware"
	"github.com/nori1432/Laws-sub002/models"
)

// ListStudentsHandler returns a paginated student list for the admin panel.
func ListStudentsHandler(c *gin.Context) {
	var totalRows int64
	config.DB.Model(&models.Student{}).Count(&totalRows)

	var students []models.Student
	if err := config.DB.Preload("User").Order("id asc").
		Scopes(Paginate(c)).Find(&students).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch students"})
		return
	}

	c.JSON(http.StatusOK, CreatePaginatedResponse(c, students, totalRows))
}

// GetStudentHandler returns one student with profile and enrollments.
func GetStudentHandler(c *gin.Context) {
	var student models.Student
	err := config.DB.Preload("User").Preload("Enrollments").
		Preload("Enrollments.Section").First(&student, c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, student)
}

// CreateStudentHandler creates a student from the admin panel: login account
// plus profile with a fresh barcode, in one transaction.
func CreateStudentHandler(c *gin.Context) {
	var input models.StudentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	password := input.Password
	if password == "" {
		// Admin-created accounts without a password get a throwaway one; the
		// student resets it on first login.
		password = uuid.NewString()
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not hash password"})
		return
	}

	var student models.Student
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Email:        input.Email,
			PasswordHash: string(hash),
			FullName:     input.FullName,
			Phone:        input.Phone,
			Role:         models.RoleStudent,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		student = models.Student{
			UserID:        user.ID,
			Barcode:       uuid.NewString(),
			BirthDate:     input.BirthDate,
			GuardianName:  input.GuardianName,
			GuardianPhone: input.GuardianPhone,
			Notes:         input.Notes,
		}
		return tx.Create(&student).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create student"})
		return
	}

	c.JSON(http.StatusCreated, student)
}

// UpdateStudentHandler updates a student's profile and account fields.
func UpdateStudentHandler(c *gin.Context) {
	var student models.Student
	if err := config.DB.Preload("User").First(&student, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	var input models.StudentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		student.User.Email = input.Email
		student.User.FullName = input.FullName
		student.User.Phone = input.Phone
		if input.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			student.User.PasswordHash = string(hash)
		}
		if err := tx.Save(&student.User).Error; err != nil {
			return err
		}

		student.BirthDate = input.BirthDate
		student.GuardianName = input.GuardianName
		student.GuardianPhone = input.GuardianPhone
		student.Notes = input.Notes
		return tx.Save(&student).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update student"})
		return
	}

	middleware.InvalidateUserCache(student.UserID)
	c.JSON(http.StatusOK, student)
}

// RegenerateBarcodeHandler replaces a student's barcode, e.g. after a lost
// card. The old barcode stops working immediately.
func RegenerateBarcodeHandler(c *gin.Context) {
	var student models.Student
	if err := config.DB.First(&student, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	student.Barcode = uuid.NewString()
	if err := config.DB.Save(&student).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not regenerate barcode"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"barcode": student.Barcode})
}
