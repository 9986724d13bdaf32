package models

import "time"

// User mirrors an account issued by the identity service. The row exists
// only so orders, products and payment types have a foreign key target;
// profile data lives upstream.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
