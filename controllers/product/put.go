package productControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/TeamCharles/user-auth/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpdateProduct overwrites name, description, price and type assignment of
// an existing product. Missing products are a 404, not a fatal lookup.
// PUT /user/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			}
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if input.ProductSubTypeID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "product_sub_type_id is required",
				"product": input,
			})
			return
		}

		product.Name = input.Name
		product.Description = input.Description
		product.Price = input.Price
		if input.ProductTypeID > 0 {
			product.ProductTypeID = input.ProductTypeID
		}
		product.ProductSubTypeID = input.ProductSubTypeID

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
