package cartControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/TeamCharles/user-auth/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrNoOpenOrder is returned by mutators when the user has no open order to
// act on.
var ErrNoOpenOrder = errors.New("no open order")

// View is the cart as shown to the user: the open order's active products
// and their summed price. Open is false when no open order exists, which is
// a normal state and not an error.
type View struct {
	Open       bool             `json:"open"`
	OrderID    uint             `json:"order_id,omitempty"`
	Products   []models.Product `json:"products"`
	TotalPrice decimal.Decimal  `json:"total_price"`
}

// OpenOrder returns the user's order with no completion timestamp, or nil
// when the cart is empty. The partial unique index on orders guarantees at
// most one row can match.
func OpenOrder(db *gorm.DB, userID string) (*models.Order, error) {
	var order models.Order
	err := db.Where("user_id = ? AND completed_at IS NULL", userID).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Contents resolves the open order and joins its line items to active
// products. Inactive products keep their line item rows but are excluded
// from the listing and the total.
func Contents(db *gorm.DB, userID string) (View, error) {
	view := View{Products: []models.Product{}, TotalPrice: decimal.Zero}

	order, err := OpenOrder(db, userID)
	if err != nil {
		return view, err
	}
	if order == nil {
		return view, nil
	}

	products, total, err := OrderProducts(db, order.ID)
	if err != nil {
		return view, err
	}

	view.Open = true
	view.OrderID = order.ID
	view.Products = products
	view.TotalPrice = total
	return view, nil
}

// OrderProducts lists the active products attached to an order through its
// line items, one entry per line item, plus their summed price. Shared with
// the checkout review and confirmation pages.
func OrderProducts(db *gorm.DB, orderID uint) ([]models.Product, decimal.Decimal, error) {
	products := []models.Product{}
	err := db.Model(&models.Product{}).
		Joins("JOIN line_items ON line_items.product_id = products.id").
		Where("line_items.order_id = ? AND products.is_active = ?", orderID, true).
		Order("line_items.created_at, line_items.id").
		Find(&products).Error
	if err != nil {
		return nil, decimal.Zero, err
	}

	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price)
	}
	return products, total, nil
}

// AddToCart appends one unit of a product to the user's open order,
// creating the order first if none exists. Both steps run in a single
// transaction. Repeated calls append repeated line items; quantity is row
// repetition.
func AddToCart(db *gorm.DB, userID string, productID uint) (*models.Order, error) {
	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		return nil, err
	}

	var open models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND completed_at IS NULL", userID).First(&open).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			open = models.Order{
				UserID: userID,
				Ref:    newOrderRef(),
			}
			if err := tx.Create(&open).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		return tx.Create(&models.LineItem{OrderID: open.ID, ProductID: product.ID}).Error
	})
	if err != nil {
		return nil, err
	}
	return &open, nil
}

// RemoveLineItem deletes one line item matching the product from the user's
// open order. When duplicates exist the most recently created row goes.
// A missing match is a no-op; a missing open order is ErrNoOpenOrder.
func RemoveLineItem(db *gorm.DB, userID string, productID uint) error {
	order, err := OpenOrder(db, userID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrNoOpenOrder
	}

	var item models.LineItem
	err = db.Where("order_id = ? AND product_id = ?", order.ID, productID).
		Order("created_at DESC, id DESC").
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return db.Delete(&item).Error
}

// ClearCart removes every line item from the user's open order.
func ClearCart(db *gorm.DB, userID string) error {
	order, err := OpenOrder(db, userID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrNoOpenOrder
	}
	return db.Where("order_id = ?", order.ID).Delete(&models.LineItem{}).Error
}

func newOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Handlers --------

// GET /user/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		view, err := Contents(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// POST /user/cart/items/:product_id
func AddToCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		order, err := AddToCart(db, userID, uint(productID))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"order_id": order.ID})
	}
}

// DELETE /user/cart/items/:product_id
func DeleteLineItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		if err := RemoveLineItem(db, userID, uint(productID)); err != nil {
			if errors.Is(err, ErrNoOpenOrder) {
				c.JSON(http.StatusNotFound, gin.H{"error": "No open cart"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /user/cart
func ClearCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		if err := ClearCart(db, userID); err != nil {
			if errors.Is(err, ErrNoOpenOrder) {
				c.JSON(http.StatusNotFound, gin.H{"error": "No open cart"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
