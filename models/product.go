package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID               uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string          `gorm:"type:VARCHAR(55);not null" json:"name"`
	Description      string          `gorm:"type:VARCHAR(255);not null" json:"description"`
	Price            decimal.Decimal `gorm:"type:numeric;not null" json:"price"`
	UserID           string          `gorm:"not null" json:"user_id"`
	User             User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ProductTypeID    uint            `gorm:"index;not null" json:"product_type_id"`
	ProductSubTypeID uint            `gorm:"index;not null" json:"product_sub_type_id"`
	IsActive         bool            `json:"is_active"` // soft delete flag, rows are never removed
	CreatedAt        time.Time       `json:"created_at"`
}
