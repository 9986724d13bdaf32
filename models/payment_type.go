package models

import "time"

const (
	PaymentDescriptionMaxLen = 12
	PaymentAccountMaxLen     = 20
)

type PaymentType struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Description   string    `gorm:"type:VARCHAR(12);not null" json:"description"`
	AccountNumber string    `gorm:"type:VARCHAR(20);not null" json:"account_number"`
	UserID        string    `gorm:"index;not null" json:"user_id"`
	User          User      `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}
