package models

// Species is plant species metadata for the dashboard dropdown.
type Species struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	CommonName     string `json:"common_name" gorm:"not null"`
	ScientificName string `json:"scientific_name"`
	Description    string `json:"description"`
}
