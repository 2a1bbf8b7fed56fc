package store

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ylk14/SmartPlant-sub001/models"
)

// AlertStore owns the alert read and resolution paths.
type AlertStore struct {
	db *gorm.DB
}

func NewAlertStore(db *gorm.DB) *AlertStore {
	return &AlertStore{db: db}
}

// ListActive returns every unresolved alert, newest first.
func (s *AlertStore) ListActive() ([]models.Alert, error) {
	var alerts []models.Alert
	err := s.db.
		Where("is_resolved = ?", false).
		Order("created_at DESC, id DESC").
		Find(&alerts).Error
	if err != nil {
		return nil, fmt.Errorf("list active alerts: %w", err)
	}
	return alerts, nil
}

// Resolve marks one alert resolved and stamps the resolution time. Returns
// ErrNotFound when no unresolved alert has that id, so a double resolution
// cannot silently succeed.
func (s *AlertStore) Resolve(alertID uint) error {
	now := time.Now()
	result := s.db.Model(&models.Alert{}).
		Where("id = ? AND is_resolved = ?", alertID, false).
		Updates(map[string]interface{}{"is_resolved": true, "resolved_at": now})
	if result.Error != nil {
		return fmt.Errorf("resolve alert %d: %w", alertID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ResolveAllForDevice marks every unresolved alert for the device resolved.
// Resolving zero alerts is a successful no-op, unlike single-alert Resolve.
func (s *AlertStore) ResolveAllForDevice(deviceID uint) (int64, error) {
	now := time.Now()
	result := s.db.Model(&models.Alert{}).
		Where("device_id = ? AND is_resolved = ?", deviceID, false).
		Updates(map[string]interface{}{"is_resolved": true, "resolved_at": now})
	if result.Error != nil {
		return 0, fmt.Errorf("resolve alerts for device %d: %w", deviceID, result.Error)
	}
	return result.RowsAffected, nil
}
