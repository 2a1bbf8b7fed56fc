package store

import (
	"errors"
	"testing"

	"github.com/ylk14/SmartPlant-sub001/models"
)

func persistWithAlert(t *testing.T, s *ReadingStore, deviceID uint, message string) []models.Alert {
	t.Helper()
	alerts := []models.Alert{{AlertType: models.AlertTypeEnvironment, AlertMessage: message}}
	if _, err := s.PersistReading(&models.Reading{DeviceID: deviceID, Temperature: f(35)}, alerts); err != nil {
		t.Fatalf("PersistReading failed: %s", err)
	}
	return alerts
}

func TestResolveUnknownAlert(t *testing.T) {
	db := newTestDB(t)
	s := NewAlertStore(db)

	if err := s.Resolve(1234); !errors.Is(err, ErrNotFound) {
		t.Errorf("got error %v, want ErrNotFound", err)
	}
}

func TestResolveStampsAndRejectsDoubleResolution(t *testing.T) {
	db := newTestDB(t)
	device := createDevice(t, db, &models.Device{Name: "desk", IsActive: true})
	readings := NewReadingStore(db)
	alerts := persistWithAlert(t, readings, device.ID, "too hot")
	s := NewAlertStore(db)

	if err := s.Resolve(alerts[0].ID); err != nil {
		t.Fatalf("Resolve failed: %s", err)
	}

	var stored models.Alert
	if err := db.First(&stored, alerts[0].ID).Error; err != nil {
		t.Fatalf("could not load alert: %s", err)
	}
	if !stored.IsResolved {
		t.Error("alert should be resolved")
	}
	if stored.ResolvedAt == nil {
		t.Error("resolved_at should be stamped")
	}

	if err := s.Resolve(alerts[0].ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Resolve got error %v, want ErrNotFound", err)
	}
}

func TestResolveAllForDeviceIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	device := createDevice(t, db, &models.Device{Name: "kitchen", IsActive: true})
	readings := NewReadingStore(db)
	persistWithAlert(t, readings, device.ID, "High Temperature: 35°C exceeds the 32°C limit")
	s := NewAlertStore(db)

	count, err := s.ResolveAllForDevice(device.ID)
	if err != nil {
		t.Fatalf("ResolveAllForDevice failed: %s", err)
	}
	if count != 1 {
		t.Errorf("got %d resolved, want 1", count)
	}

	// Bulk resolution is a no-op when nothing is active, never an error.
	count, err = s.ResolveAllForDevice(device.ID)
	if err != nil {
		t.Fatalf("second ResolveAllForDevice failed: %s", err)
	}
	if count != 0 {
		t.Errorf("got %d resolved on second call, want 0", count)
	}
}

func TestListActiveExcludesResolvedAndOrdersNewestFirst(t *testing.T) {
	db := newTestDB(t)
	device := createDevice(t, db, &models.Device{Name: "hallway", IsActive: true})
	readings := NewReadingStore(db)

	first := persistWithAlert(t, readings, device.ID, "first")
	persistWithAlert(t, readings, device.ID, "second")
	persistWithAlert(t, readings, device.ID, "third")

	s := NewAlertStore(db)
	if err := s.Resolve(first[0].ID); err != nil {
		t.Fatalf("Resolve failed: %s", err)
	}

	active, err := s.ListActive()
	if err != nil {
		t.Fatalf("ListActive failed: %s", err)
	}
	if len(active) != 2 {
		t.Fatalf("got %d active alerts, want 2", len(active))
	}
	if active[0].AlertMessage != "third" || active[1].AlertMessage != "second" {
		t.Errorf("got order [%q, %q], want newest first", active[0].AlertMessage, active[1].AlertMessage)
	}
	for _, a := range active {
		if a.IsResolved {
			t.Errorf("alert %d is resolved but listed as active", a.ID)
		}
	}
}
