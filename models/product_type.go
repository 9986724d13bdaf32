package models

import "time"

// ProductType and ProductSubType are static reference data. Neither stores
// an active-product count; quantities are computed per request in the
// catalog controllers.
type ProductType struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Label     string    `gorm:"type:VARCHAR(20);unique;not null" json:"label"`
	CreatedAt time.Time `json:"created_at"`
}

type ProductSubType struct {
	ID            uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Label         string      `gorm:"type:VARCHAR(20);not null" json:"label"`
	ProductTypeID uint        `gorm:"index;not null" json:"product_type_id"`
	ProductType   ProductType `gorm:"foreignKey:ProductTypeID" json:"-"`
	CreatedAt     time.Time   `json:"created_at"`
}
