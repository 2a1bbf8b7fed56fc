package models

import "time"

// Reading is one sensor sample from a device. Rows are immutable once written;
// the ingestion path is the only writer.
type Reading struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	DeviceID         uint      `json:"device_id" gorm:"not null;index"`
	Temperature      *float64  `json:"temperature"`
	Humidity         *float64  `json:"humidity"`
	SoilMoisture     *float64  `json:"soil_moisture"`
	MotionDetected   bool      `json:"motion_detected"`
	AlertGenerated   bool      `json:"alert_generated"`
	ReadingStatus    string    `json:"reading_status" gorm:"default:ok"`
	ReadingTimestamp time.Time `json:"reading_timestamp"`
}
