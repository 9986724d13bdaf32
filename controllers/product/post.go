package productControllers

import (
	"net/http"

	"github.com/TeamCharles/user-auth/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductInput struct {
	Name             string          `json:"name" binding:"required,max=55"`
	Description      string          `json:"description" binding:"required,max=255"`
	Price            decimal.Decimal `json:"price" binding:"required"`
	ProductTypeID    uint            `json:"product_type_id"`
	ProductSubTypeID uint            `json:"product_sub_type_id"`
}

// CreateProduct adds a product owned by the caller. Both a type and a sub
// type must be chosen; the submitted fields come back with the error so the
// client can redisplay the form.
// POST /user/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if input.ProductTypeID == 0 || input.ProductSubTypeID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "product_type_id and product_sub_type_id are required",
				"product": input,
			})
			return
		}

		product := models.Product{
			Name:             input.Name,
			Description:      input.Description,
			Price:            input.Price,
			ProductTypeID:    input.ProductTypeID,
			ProductSubTypeID: input.ProductSubTypeID,
			UserID:           userID,
			IsActive:         true,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
