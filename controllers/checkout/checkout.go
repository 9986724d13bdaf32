package checkoutControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	cart "github.com/TeamCharles/user-auth/controllers/cart"
	"github.com/TeamCharles/user-auth/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	// ErrNoOpenOrder means the user has nothing to check out.
	ErrNoOpenOrder = errors.New("no open order")
	// ErrNoPaymentSelected means the chosen payment type id was unset or
	// not positive; the order stays open.
	ErrNoPaymentSelected = errors.New("no payment type selected")
	// ErrPaymentTypeNotFound means the chosen payment type does not exist
	// or belongs to another user.
	ErrPaymentTypeNotFound = errors.New("payment type not found")
)

type CompleteOrderRequest struct {
	PaymentTypeID int `json:"payment_type_id"`
}

// ReviewView backs the checkout review page: what the order holds, what it
// costs, and which payment types the user can pick from.
type ReviewView struct {
	OrderID           uint                 `json:"order_id"`
	Products          []models.Product     `json:"products"`
	TotalPrice        decimal.Decimal      `json:"total_price"`
	PaymentTypes      []models.PaymentType `json:"payment_types"`
	SelectedPaymentID uint                 `json:"selected_payment_id,omitempty"`
}

type ConfirmationView struct {
	Order       models.Order       `json:"order"`
	PaymentType models.PaymentType `json:"payment_type"`
	Products    []models.Product   `json:"products"`
	TotalPrice  decimal.Decimal    `json:"total_price"`
}

// CompleteOrder moves the user's open order to its terminal state: payment
// type attached, completion stamped. A completed order never matches the
// open-order query again, so the transition cannot be repeated or undone.
func CompleteOrder(db *gorm.DB, userID string, paymentTypeID int) (*models.Order, error) {
	order, err := cart.OpenOrder(db, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNoOpenOrder
	}

	if paymentTypeID <= 0 {
		return nil, ErrNoPaymentSelected
	}

	var payment models.PaymentType
	err = db.Where("id = ? AND user_id = ?", paymentTypeID, userID).First(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPaymentTypeNotFound
	}
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order.PaymentTypeID = &payment.ID
	order.CompletedAt = &now
	if err := db.Save(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// Confirmation loads a completed order with its payment type and the active
// products bought, same join as the cart but keyed by order id.
func Confirmation(db *gorm.DB, orderID uint) (ConfirmationView, error) {
	var view ConfirmationView

	var order models.Order
	if err := db.First(&order, orderID).Error; err != nil {
		return view, err
	}

	products, total, err := cart.OrderProducts(db, order.ID)
	if err != nil {
		return view, err
	}

	var payment models.PaymentType
	if order.PaymentTypeID != nil {
		if err := db.First(&payment, *order.PaymentTypeID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return view, err
		}
	}

	view.Order = order
	view.PaymentType = payment
	view.Products = products
	view.TotalPrice = total
	return view, nil
}

// -------- Handlers --------

// GET /user/checkout?payment_type_id=
func Review(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		order, err := cart.OpenOrder(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		if order == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No open cart"})
			return
		}

		products, total, err := cart.OrderProducts(db, order.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order items"})
			return
		}

		var paymentTypes []models.PaymentType
		if err := db.Where("user_id = ?", userID).Order("description").Find(&paymentTypes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment types"})
			return
		}

		view := ReviewView{
			OrderID:      order.ID,
			Products:     products,
			TotalPrice:   total,
			PaymentTypes: paymentTypes,
		}
		if selected, err := strconv.ParseUint(c.Query("payment_type_id"), 10, 64); err == nil && selected > 0 {
			view.SelectedPaymentID = uint(selected)
		}

		c.JSON(http.StatusOK, view)
	}
}

// POST /user/checkout/complete
func CompleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var req CompleteOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := CompleteOrder(db, userID, req.PaymentTypeID)
		if err != nil {
			switch {
			case errors.Is(err, ErrNoOpenOrder):
				c.JSON(http.StatusConflict, gin.H{"error": "No open order to complete"})
			case errors.Is(err, ErrNoPaymentSelected):
				c.JSON(http.StatusBadRequest, gin.H{"error": "No payment type selected"})
			case errors.Is(err, ErrPaymentTypeNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Payment type not found"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete order"})
			}
			return
		}

		broadcastCompletedOrder(*order)
		c.JSON(http.StatusOK, order)
	}
}

// GET /user/orders/:id/confirmation
func ConfirmationHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		view, err := Confirmation(db, uint(orderID))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch confirmation"})
			return
		}
		c.JSON(http.StatusOK, view)
	}
}
