package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/ylk14/SmartPlant-sub001/models"
)

// SpeciesFallback is shown for devices with no species assignment.
const SpeciesFallback = "Unknown species"

const defaultHistoryRange = "24H"

var historyWindows = map[string]time.Duration{
	"1H":  time.Hour,
	"24H": 24 * time.Hour,
	"7D":  7 * 24 * time.Hour,
}

// ReadingStore owns the transactional write path for readings and their
// derived alerts, and the latest-state read path.
type ReadingStore struct {
	db *gorm.DB
}

func NewReadingStore(db *gorm.DB) *ReadingStore {
	return &ReadingStore{db: db}
}

// PersistReading writes one reading and its derived alerts as a single unit.
// Either the reading row and every alert row become durable, or none do. The
// alerts get their device id, reading id and creation time stamped here.
func (s *ReadingStore) PersistReading(reading *models.Reading, alerts []models.Alert) (uint, error) {
	if reading.ReadingTimestamp.IsZero() {
		reading.ReadingTimestamp = time.Now()
	}
	if reading.ReadingStatus == "" {
		reading.ReadingStatus = "ok"
	}
	reading.AlertGenerated = len(alerts) > 0

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(reading).Error; err != nil {
			return err
		}
		if len(alerts) == 0 {
			return nil
		}
		now := time.Now()
		for i := range alerts {
			alerts[i].DeviceID = reading.DeviceID
			alerts[i].ReadingID = reading.ID
			alerts[i].CreatedAt = now
		}
		return tx.Create(&alerts).Error
	})
	if err != nil {
		return 0, fmt.Errorf("persist reading for device %d: %w", reading.DeviceID, err)
	}
	return reading.ID, nil
}

// LatestStatusForAllDevices returns the status projection for every registered
// device. A device with no readings yet still appears, with nil metric fields.
func (s *ReadingStore) LatestStatusForAllDevices() ([]models.DeviceStatus, error) {
	var devices []models.Device
	if err := s.db.Preload("Species").Order("id").Find(&devices).Error; err != nil {
		return nil, fmt.Errorf("load devices: %w", err)
	}

	statuses := make([]models.DeviceStatus, 0, len(devices))
	for i := range devices {
		status, err := s.statusFor(&devices[i])
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// LatestStatusForDevice returns the status projection for one device, or
// ErrNotFound if the device is not registered.
func (s *ReadingStore) LatestStatusForDevice(deviceID uint) (*models.DeviceStatus, error) {
	var device models.Device
	if err := s.db.Preload("Species").First(&device, deviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load device %d: %w", deviceID, err)
	}
	status, err := s.statusFor(&device)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func (s *ReadingStore) statusFor(device *models.Device) (models.DeviceStatus, error) {
	status := models.DeviceStatus{
		DeviceID:    device.ID,
		DeviceName:  device.Name,
		Latitude:    device.Latitude,
		Longitude:   device.Longitude,
		SpeciesName: SpeciesFallback,
		IsActive:    device.IsActive,
	}
	if device.Species != nil {
		status.SpeciesName = device.Species.CommonName
	}

	var reading models.Reading
	err := s.db.
		Where("device_id = ?", device.ID).
		Order("reading_timestamp DESC, id DESC").
		First(&reading).Error
	switch {
	case err == nil:
		status.ReadingID = &reading.ID
		status.Temperature = reading.Temperature
		status.Humidity = reading.Humidity
		status.SoilMoisture = reading.SoilMoisture
		status.MotionDetected = &reading.MotionDetected
		status.ReadingTimestamp = &reading.ReadingTimestamp
	case errors.Is(err, gorm.ErrRecordNotFound):
		// No readings yet, metric fields stay nil.
	default:
		return status, fmt.Errorf("load latest reading for device %d: %w", device.ID, err)
	}

	var kinds []string
	if err := s.db.Model(&models.Alert{}).
		Where("device_id = ? AND is_resolved = ?", device.ID, false).
		Distinct().
		Pluck("alert_type", &kinds).Error; err != nil {
		return status, fmt.Errorf("load active alerts for device %d: %w", device.ID, err)
	}
	status.ActiveAlerts = strings.Join(kinds, ", ")
	return status, nil
}

// HistoryForDevice returns the device's readings within the lookback window
// selected by rangeKey, oldest first. Unknown range keys fall back to 24H.
func (s *ReadingStore) HistoryForDevice(deviceID uint, rangeKey string) ([]models.Reading, error) {
	window, ok := historyWindows[rangeKey]
	if !ok {
		window = historyWindows[defaultHistoryRange]
	}
	since := time.Now().Add(-window)

	var readings []models.Reading
	err := s.db.
		Where("device_id = ? AND reading_timestamp >= ?", deviceID, since).
		Order("reading_timestamp ASC, id ASC").
		Find(&readings).Error
	if err != nil {
		return nil, fmt.Errorf("load history for device %d: %w", deviceID, err)
	}
	return readings, nil
}
