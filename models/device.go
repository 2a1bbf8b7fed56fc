package models

import "time"

// Device is a registered sensor node. The core pipeline only reads devices;
// registration happens through the HTTP API.
type Device struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	SpeciesID *uint     `json:"species_id"`
	Species   *Species  `json:"species,omitempty"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
}
