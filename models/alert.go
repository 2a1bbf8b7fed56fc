package models

import "time"

const (
	AlertTypeMotion      = "motion"
	AlertTypeEnvironment = "environment"
)

// Alert is a derived anomaly tied to the reading that triggered it. Alerts are
// created in the same transaction as their reading and are only ever mutated
// by resolution.
type Alert struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	DeviceID     uint       `json:"device_id" gorm:"not null;index"`
	ReadingID    uint       `json:"reading_id" gorm:"not null"`
	AlertType    string     `json:"alert_type"`
	AlertMessage string     `json:"alert_message"`
	IsResolved   bool       `json:"is_resolved" gorm:"default:false;index"`
	CreatedAt    time.Time  `json:"created_at"`
	ResolvedAt   *time.Time `json:"resolved_at"`
}
