package model

import "gorm.io/gorm"

// AutoMigrate выполняет миграцию всех сущностей маркетплейса.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&ServiceArea{},
		&ServiceCategory{},
		&Customer{},
		&Provider{},
		&ProviderCategory{},
		&ServiceRequest{},
		&Payment{},
		&Review{},
		&Event{},
	)
}
