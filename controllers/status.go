package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ylk14/SmartPlant-sub001/store"
)

// GetAllDeviceStatuses returns the latest-state projection for every device,
// including devices that have not reported yet.
func (a *API) GetAllDeviceStatuses(c *gin.Context) {
	statuses, err := a.Readings.LatestStatusForAllDevices()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch device statuses"})
		return
	}
	c.JSON(http.StatusOK, statuses)
}

// GetDeviceStatus returns the latest-state projection for one device.
func (a *API) GetDeviceStatus(c *gin.Context) {
	deviceID, ok := paramID(c, "id")
	if !ok {
		return
	}

	status, err := a.Readings.LatestStatusForDevice(deviceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Device not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch device status"})
		return
	}
	c.JSON(http.StatusOK, status)
}

// GetHistory returns a device's readings within the selected range, oldest
// first. Unknown range values fall back to 24H.
func (a *API) GetHistory(c *gin.Context) {
	deviceID, ok := paramID(c, "id")
	if !ok {
		return
	}

	readings, err := a.Readings.HistoryForDevice(deviceID, c.Query("range"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
		return
	}
	c.JSON(http.StatusOK, readings)
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
