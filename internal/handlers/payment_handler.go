package handlers

import (
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/Knetic/govaluate"
	"github.com/divan/num2words"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nori1432/Laws-sub002/config"
	"github.com/nori1432/Laws-sub002/models"
)

// evaluateAmount computes the charged amount. An empty formula charges the
// monthly price as-is; otherwise the formula is evaluated against the
// parameters {price, siblings}, e.g. "price * 0.5" or "price - 500".
func evaluateAmount(formula string, price float64, siblings int) (float64, error) {
	if strings.TrimSpace(formula) == "" {
		return price, nil
	}

	expr, err := govaluate.NewEvaluableExpression(formula)
	if err != nil {
		return 0, fmt.Errorf("invalid formula %q: %v", formula, err)
	}

	result, err := expr.Evaluate(map[string]interface{}{
		"price":    price,
		"siblings": float64(siblings),
	})
	if err != nil {
		return 0, fmt.Errorf("could not evaluate formula %q: %v", formula, err)
	}

	amount, ok := result.(float64)
	if !ok {
		return 0, fmt.Errorf("formula %q did not produce a number", formula)
	}
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("formula %q produced an invalid amount", formula)
	}
	return amount, nil
}

// amountInWords spells out an amount for the printed receipt, dinars and
// centimes separately.
func amountInWords(amount float64) string {
	dinars := int(amount)
	centimes := int(math.Round((amount - float64(dinars)) * 100))
	if centimes == 100 {
		dinars++
		centimes = 0
	}
	words := num2words.Convert(dinars)
	if centimes == 0 {
		return fmt.Sprintf("%s dinars", words)
	}
	return fmt.Sprintf("%s dinars %02d centimes", words, centimes)
}

// RecordPaymentHandler records a monthly subscription payment for an approved
// enrollment and issues the receipt.
func RecordPaymentHandler(c *gin.Context) {
	var input models.PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	var enrollment models.Enrollment
	if err := config.DB.Preload("Section").Preload("Section.Course").
		First(&enrollment, input.EnrollmentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Enrollment not found"})
		return
	}
	if enrollment.Status != models.EnrollmentApproved {
		c.JSON(http.StatusConflict, gin.H{"error": "Enrollment is not approved"})
		return
	}

	var existing models.SubscriptionPayment
	err := config.DB.Where("enrollment_id = ? AND month = ?", enrollment.ID, input.Month).
		First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Payment for this month is already recorded",
			"receiptNumber": existing.ReceiptNumber})
		return
	}

	price := 0.0
	if enrollment.Section != nil && enrollment.Section.Course != nil {
		price = enrollment.Section.Course.PricePerMonth
	}
	amount, err := evaluateAmount(input.Formula, price, input.Siblings)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment := models.SubscriptionPayment{
		EnrollmentID:  enrollment.ID,
		Month:         input.Month,
		Amount:        amount,
		Formula:       input.Formula,
		ReceiptNumber: "RCP-" + uuid.NewString()[:8],
		AmountInWords: amountInWords(amount),
		PaidAt:        time.Now(),
		RecordedBy:    c.GetUint("user_id"),
	}
	if err := config.DB.Create(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not record payment"})
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// ListPaymentsHandler returns payments for the admin panel, paginated and
// optionally filtered by enrollment or month.
func ListPaymentsHandler(c *gin.Context) {
	filter := func(db *gorm.DB) *gorm.DB {
		if enrollmentID := c.Query("enrollment_id"); enrollmentID != "" {
			db = db.Where("enrollment_id = ?", enrollmentID)
		}
		if month := c.Query("month"); month != "" {
			db = db.Where("month = ?", month)
		}
		return db
	}

	var totalRows int64
	filter(config.DB.Model(&models.SubscriptionPayment{})).Count(&totalRows)

	var payments []models.SubscriptionPayment
	if err := filter(config.DB).Preload("Enrollment").Preload("Enrollment.Student").
		Preload("Enrollment.Student.User").Order("paid_at desc").
		Scopes(Paginate(c)).Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch payments"})
		return
	}

	c.JSON(http.StatusOK, CreatePaginatedResponse(c, payments, totalRows))
}
