package models

import "time"

// DeviceStatus is the per-device dashboard projection: device identity joined
// with its most recent reading and the kinds of any unresolved alerts. It is
// computed on demand, never stored.
type DeviceStatus struct {
	DeviceID         uint       `json:"device_id"`
	DeviceName       string     `json:"device_name"`
	Latitude         float64    `json:"latitude"`
	Longitude        float64    `json:"longitude"`
	SpeciesName      string     `json:"species_name"`
	IsActive         bool       `json:"is_active"`
	ReadingID        *uint      `json:"reading_id"`
	Temperature      *float64   `json:"temperature"`
	Humidity         *float64   `json:"humidity"`
	SoilMoisture     *float64   `json:"soil_moisture"`
	MotionDetected   *bool      `json:"motion_detected"`
	ReadingTimestamp *time.Time `json:"reading_timestamp"`
	ActiveAlerts     string     `json:"active_alerts"`
}
