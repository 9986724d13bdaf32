package paymentControllers

import (
	"fmt"
	"net/http"

	"github.com/TeamCharles/user-auth/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreatePaymentTypeRequest struct {
	Description   string `json:"description" binding:"required"`
	AccountNumber string `json:"account_number" binding:"required"`
}

// GET /user/payment-types
func GetPaymentTypes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var paymentTypes []models.PaymentType
		if err := db.Where("user_id = ?", userID).Order("description").Find(&paymentTypes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment types"})
			return
		}
		c.JSON(http.StatusOK, paymentTypes)
	}
}

// POST /user/payment-types
func CreatePaymentType(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var req CreatePaymentTypeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if len(req.Description) > models.PaymentDescriptionMaxLen {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("description must be at most %d characters", models.PaymentDescriptionMaxLen),
			})
			return
		}
		if len(req.AccountNumber) > models.PaymentAccountMaxLen {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("account_number must be at most %d characters", models.PaymentAccountMaxLen),
			})
			return
		}

		paymentType := models.PaymentType{
			Description:   req.Description,
			AccountNumber: req.AccountNumber,
			UserID:        userID,
		}
		if err := db.Create(&paymentType).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment type"})
			return
		}
		c.JSON(http.StatusCreated, paymentType)
	}
}
