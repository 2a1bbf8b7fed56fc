package controllers

import (
	"gorm.io/gorm"

	"github.com/ylk14/SmartPlant-sub001/models"
)

// MigrateModels runs the database migrations
func MigrateModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Species{},
		&models.Device{},
		&models.Reading{},
		&models.Alert{},
	)
}
