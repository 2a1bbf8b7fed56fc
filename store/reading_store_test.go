package store

import (
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/ylk14/SmartPlant-sub001/models"
)

func TestPersistReadingWithAlerts(t *testing.T) {
	db := newTestDB(t)
	device := createDevice(t, db, &models.Device{Name: "balcony", IsActive: true})
	s := NewReadingStore(db)

	reading := models.Reading{DeviceID: device.ID, Temperature: f(35), MotionDetected: false}
	alerts := []models.Alert{
		{AlertType: models.AlertTypeEnvironment, AlertMessage: "High Temperature: 35°C exceeds the 32°C limit"},
	}

	id, err := s.PersistReading(&reading, alerts)
	if err != nil {
		t.Fatalf("PersistReading failed: %s", err)
	}
	if id == 0 {
		t.Fatal("PersistReading returned zero id")
	}

	var stored models.Reading
	if err := db.First(&stored, id).Error; err != nil {
		t.Fatalf("reading not stored: %s", err)
	}
	if !stored.AlertGenerated {
		t.Error("alert_generated should be true when alerts were derived")
	}
	if stored.ReadingStatus != "ok" {
		t.Errorf("got reading_status %q, want %q", stored.ReadingStatus, "ok")
	}
	if stored.ReadingTimestamp.IsZero() {
		t.Error("reading_timestamp was not stamped")
	}

	var storedAlerts []models.Alert
	if err := db.Where("reading_id = ?", id).Find(&storedAlerts).Error; err != nil {
		t.Fatalf("could not load alerts: %s", err)
	}
	if len(storedAlerts) != 1 {
		t.Fatalf("got %d alert rows, want 1", len(storedAlerts))
	}
	if storedAlerts[0].DeviceID != device.ID {
		t.Errorf("alert device_id %d, want %d", storedAlerts[0].DeviceID, device.ID)
	}
	if storedAlerts[0].IsResolved {
		t.Error("new alert should be unresolved")
	}
	if storedAlerts[0].CreatedAt.IsZero() {
		t.Error("alert created_at was not stamped")
	}
}

func TestPersistReadingWithoutAlerts(t *testing.T) {
	db := newTestDB(t)
	device := createDevice(t, db, &models.Device{Name: "shelf", IsActive: true})
	s := NewReadingStore(db)

	id, err := s.PersistReading(&models.Reading{DeviceID: device.ID, Temperature: f(22)}, nil)
	if err != nil {
		t.Fatalf("PersistReading failed: %s", err)
	}

	var stored models.Reading
	if err := db.First(&stored, id).Error; err != nil {
		t.Fatalf("reading not stored: %s", err)
	}
	if stored.AlertGenerated {
		t.Error("alert_generated should be false without alerts")
	}

	var count int64
	db.Model(&models.Alert{}).Count(&count)
	if count != 0 {
		t.Errorf("got %d alert rows, want 0", count)
	}
}

func TestPersistReadingRollsBackWhenAlertInsertFails(t *testing.T) {
	db := newTestDB(t)
	device := createDevice(t, db, &models.Device{Name: "greenhouse", IsActive: true})
	s := NewReadingStore(db)

	// Fail the alert bulk-insert after the reading insert succeeded.
	err := db.Callback().Create().Before("gorm:create").Register("fail_alert_insert", func(tx *gorm.DB) {
		if tx.Statement.Table == "alerts" {
			tx.AddError(errors.New("injected alert insert failure"))
		}
	})
	if err != nil {
		t.Fatalf("could not register callback: %s", err)
	}

	_, err = s.PersistReading(
		&models.Reading{DeviceID: device.ID, Temperature: f(40)},
		[]models.Alert{{AlertType: models.AlertTypeEnvironment, AlertMessage: "too hot"}},
	)
	if err == nil {
		t.Fatal("PersistReading should fail when the alert insert fails")
	}

	var readings, alerts int64
	db.Model(&models.Reading{}).Count(&readings)
	db.Model(&models.Alert{}).Count(&alerts)
	if readings != 0 {
		t.Errorf("got %d reading rows after rollback, want 0", readings)
	}
	if alerts != 0 {
		t.Errorf("got %d alert rows after rollback, want 0", alerts)
	}
}

func TestLatestStatusIncludesDeviceWithoutReadings(t *testing.T) {
	db := newTestDB(t)
	s := NewReadingStore(db)

	species := models.Species{CommonName: "Monstera", ScientificName: "Monstera deliciosa"}
	if err := db.Create(&species).Error; err != nil {
		t.Fatalf("could not create species: %s", err)
	}
	reporting := createDevice(t, db, &models.Device{Name: "window", SpeciesID: &species.ID, IsActive: true})
	silent := createDevice(t, db, &models.Device{Name: "cellar", IsActive: true})

	if _, err := s.PersistReading(
		&models.Reading{DeviceID: reporting.ID, Temperature: f(35), Humidity: f(50)},
		[]models.Alert{{AlertType: models.AlertTypeEnvironment, AlertMessage: "too hot"}},
	); err != nil {
		t.Fatalf("PersistReading failed: %s", err)
	}

	statuses, err := s.LatestStatusForAllDevices()
	if err != nil {
		t.Fatalf("LatestStatusForAllDevices failed: %s", err)
	}
	if len(statuses) != 2 {
		t.Fatalf("got %d statuses, want 2", len(statuses))
	}

	byID := map[uint]models.DeviceStatus{}
	for _, st := range statuses {
		byID[st.DeviceID] = st
	}

	got := byID[reporting.ID]
	if got.SpeciesName != "Monstera" {
		t.Errorf("got species %q, want %q", got.SpeciesName, "Monstera")
	}
	if got.Temperature == nil || *got.Temperature != 35 {
		t.Errorf("got temperature %v, want 35", got.Temperature)
	}
	if got.ActiveAlerts != models.AlertTypeEnvironment {
		t.Errorf("got active alerts %q, want %q", got.ActiveAlerts, models.AlertTypeEnvironment)
	}

	got = byID[silent.ID]
	if got.DeviceName != "cellar" {
		t.Errorf("got device name %q, want %q", got.DeviceName, "cellar")
	}
	if got.SpeciesName != SpeciesFallback {
		t.Errorf("got species %q, want fallback %q", got.SpeciesName, SpeciesFallback)
	}
	if got.Temperature != nil || got.Humidity != nil || got.SoilMoisture != nil {
		t.Error("silent device should have nil metric fields")
	}
	if got.ReadingTimestamp != nil {
		t.Error("silent device should have nil reading timestamp")
	}
	if got.ActiveAlerts != "" {
		t.Errorf("silent device should have no active alerts, got %q", got.ActiveAlerts)
	}
}

func TestLatestStatusForDeviceUsesMostRecentReading(t *testing.T) {
	db := newTestDB(t)
	device := createDevice(t, db, &models.Device{Name: "porch", IsActive: true})
	s := NewReadingStore(db)

	older := models.Reading{DeviceID: device.ID, Temperature: f(20), ReadingTimestamp: time.Now().Add(-time.Hour)}
	newer := models.Reading{DeviceID: device.ID, Temperature: f(26), ReadingTimestamp: time.Now()}
	for _, r := range []*models.Reading{&older, &newer} {
		if _, err := s.PersistReading(r, nil); err != nil {
			t.Fatalf("PersistReading failed: %s", err)
		}
	}

	status, err := s.LatestStatusForDevice(device.ID)
	if err != nil {
		t.Fatalf("LatestStatusForDevice failed: %s", err)
	}
	if status.Temperature == nil || *status.Temperature != 26 {
		t.Errorf("got temperature %v, want the most recent reading's 26", status.Temperature)
	}
}

func TestLatestStatusForUnknownDevice(t *testing.T) {
	db := newTestDB(t)
	s := NewReadingStore(db)

	if _, err := s.LatestStatusForDevice(99); !errors.Is(err, ErrNotFound) {
		t.Errorf("got error %v, want ErrNotFound", err)
	}
}

func TestHistoryForDeviceRanges(t *testing.T) {
	db := newTestDB(t)
	device := createDevice(t, db, &models.Device{Name: "garden", IsActive: true})
	s := NewReadingStore(db)

	now := time.Now()
	for _, age := range []time.Duration{10 * time.Minute, 2 * time.Hour, 48 * time.Hour} {
		r := models.Reading{DeviceID: device.ID, Temperature: f(21), ReadingTimestamp: now.Add(-age)}
		if _, err := s.PersistReading(&r, nil); err != nil {
			t.Fatalf("PersistReading failed: %s", err)
		}
	}

	cases := []struct {
		rangeKey string
		want     int
	}{
		{"1H", 1},
		{"24H", 2},
		{"7D", 3},
		{"9X", 2}, // unrecognized, falls back to 24H
		{"", 2},   // absent, same fallback
	}
	for _, tc := range cases {
		readings, err := s.HistoryForDevice(device.ID, tc.rangeKey)
		if err != nil {
			t.Fatalf("HistoryForDevice(%q) failed: %s", tc.rangeKey, err)
		}
		if len(readings) != tc.want {
			t.Errorf("range %q: got %d readings, want %d", tc.rangeKey, len(readings), tc.want)
		}
		for i := 1; i < len(readings); i++ {
			if readings[i].ReadingTimestamp.Before(readings[i-1].ReadingTimestamp) {
				t.Errorf("range %q: readings not in ascending time order", tc.rangeKey)
			}
		}
	}
}
