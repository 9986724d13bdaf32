package catalogControllers

import (
	"errors"
	"net/http"

	"github.com/TeamCharles/user-auth/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /types/:id/subtypes
func GetProductSubTypes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		activeCount := db.Model(&models.Product{}).
			Select("count(*)").
			Where("products.product_sub_type_id = product_sub_types.id AND products.is_active = ?", true)

		var subTypes []ProductSubTypeCount
		err := db.Model(&models.ProductSubType{}).
			Select("product_sub_types.id, product_sub_types.label, product_sub_types.product_type_id, product_sub_types.created_at, (?) AS quantity", activeCount).
			Where("product_sub_types.product_type_id = ?", c.Param("id")).
			Order("product_sub_types.label").
			Scan(&subTypes).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product sub types"})
			return
		}
		c.JSON(http.StatusOK, subTypes)
	}
}

// GET /subtypes/:id/products
func GetProductsBySubType(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		err := db.Where("product_sub_type_id = ? AND is_active = ?", c.Param("id"), true).
			Order("name").
			Find(&products).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// POST /admin/subtypes
func CreateProductSubType(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductSubTypeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var parent models.ProductType
		if err := db.First(&parent, req.ProductTypeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product type not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product type"})
			return
		}

		subType := models.ProductSubType{Label: req.Label, ProductTypeID: parent.ID}
		if err := db.Create(&subType).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product sub type"})
			return
		}
		c.JSON(http.StatusCreated, subType)
	}
}
