package models

import "gorm.io/gorm"

// AutoMigrate creates or updates every table. Shared between main and the
// test databases so both see the same schema, partial indexes included.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&ProductType{},
		&ProductSubType{},
		&Product{},
		&PaymentType{},
		&Order{},
		&LineItem{},
	)
}
