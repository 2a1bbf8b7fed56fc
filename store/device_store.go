package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ylk14/SmartPlant-sub001/models"
)

// DeviceStore handles device registration and the species lookup. The core
// pipeline only reads devices; mutation happens through the HTTP API.
type DeviceStore struct {
	db *gorm.DB
}

func NewDeviceStore(db *gorm.DB) *DeviceStore {
	return &DeviceStore{db: db}
}

func (s *DeviceStore) Create(device *models.Device) error {
	if err := s.db.Create(device).Error; err != nil {
		return fmt.Errorf("create device: %w", err)
	}
	return nil
}

func (s *DeviceStore) List() ([]models.Device, error) {
	var devices []models.Device
	if err := s.db.Preload("Species").Order("id").Find(&devices).Error; err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}
	return devices, nil
}

func (s *DeviceStore) Get(deviceID uint) (*models.Device, error) {
	var device models.Device
	if err := s.db.Preload("Species").First(&device, deviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load device %d: %w", deviceID, err)
	}
	return &device, nil
}

func (s *DeviceStore) ListSpecies() ([]models.Species, error) {
	var species []models.Species
	if err := s.db.Order("common_name").Find(&species).Error; err != nil {
		return nil, fmt.Errorf("list species: %w", err)
	}
	return species, nil
}
