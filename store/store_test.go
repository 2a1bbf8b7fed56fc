package store

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ylk14/SmartPlant-sub001/models"
)

// newTestDB opens a per-test in-memory sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("could not open test db: %s", err)
	}

	if err := db.AutoMigrate(
		&models.Species{},
		&models.Device{},
		&models.Reading{},
		&models.Alert{},
	); err != nil {
		t.Fatalf("could not migrate test db: %s", err)
	}
	return db
}

func createDevice(t *testing.T, db *gorm.DB, device *models.Device) *models.Device {
	t.Helper()
	if err := db.Create(device).Error; err != nil {
		t.Fatalf("could not create device: %s", err)
	}
	return device
}

func f(v float64) *float64 { return &v }
