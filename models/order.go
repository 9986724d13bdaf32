package models

import "time"

// Order doubles as the shopping cart while CompletedAt is null. The partial
// unique index keeps a user from ever holding two open orders, even under
// concurrent add-to-cart requests.
type Order struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	Ref           string       `gorm:"uniqueIndex" json:"ref"`
	UserID        string       `gorm:"not null;index:idx_orders_open_user,unique,where:completed_at IS NULL" json:"user_id"`
	User          User         `gorm:"foreignKey:UserID" json:"-"`
	PaymentTypeID *uint        `json:"payment_type_id"`
	PaymentType   *PaymentType `gorm:"foreignKey:PaymentTypeID" json:"payment_type,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	CompletedAt   *time.Time   `json:"completed_at"`
}

// LineItem links one unit of a product into an order. Quantity is row
// repetition; adding the same product twice creates two rows.
type LineItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"index;not null" json:"order_id"`
	Order     Order     `gorm:"foreignKey:OrderID" json:"-"`
	ProductID uint      `gorm:"not null" json:"product_id"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
