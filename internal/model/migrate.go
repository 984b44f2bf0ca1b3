package model

import "gorm.io/gorm"

// AutoMigrate creates or updates the surveys and messages tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Survey{}, &Message{})
}
