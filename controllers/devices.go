package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ylk14/SmartPlant-sub001/models"
)

// RegisterDevice creates a new sensor node record.
func (a *API) RegisterDevice(c *gin.Context) {
	var input struct {
		Name      string  `json:"name" binding:"required"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		SpeciesID *uint   `json:"species_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	device := models.Device{
		Name:      input.Name,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		SpeciesID: input.SpeciesID,
		IsActive:  true,
	}
	if err := a.Devices.Create(&device); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register device"})
		return
	}
	c.JSON(http.StatusCreated, device)
}

// GetDevices lists all registered devices.
func (a *API) GetDevices(c *gin.Context) {
	devices, err := a.Devices.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch devices"})
		return
	}
	c.JSON(http.StatusOK, devices)
}

// GetSpecies returns the species list for the registration dropdown.
func (a *API) GetSpecies(c *gin.Context) {
	species, err := a.Devices.ListSpecies()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch species"})
		return
	}
	c.JSON(http.StatusOK, species)
}
