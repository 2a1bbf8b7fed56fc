package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ylk14/SmartPlant-sub001/store"
)

// GetActiveAlerts returns all unresolved alerts, newest first.
func (a *API) GetActiveAlerts(c *gin.Context) {
	alerts, err := a.Alerts.ListActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch alerts"})
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// ResolveAlert marks one alert resolved. Resolving an unknown or already
// resolved alert is a 404, not a silent success.
func (a *API) ResolveAlert(c *gin.Context) {
	alertID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := a.Alerts.Resolve(alertID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No unresolved alert with that id"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve alert"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Alert resolved"})
}

// ResolveDeviceAlerts resolves every unresolved alert for a device. Zero
// matches is still a success.
func (a *API) ResolveDeviceAlerts(c *gin.Context) {
	deviceID, ok := paramID(c, "id")
	if !ok {
		return
	}

	count, err := a.Alerts.ResolveAllForDevice(deviceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve alerts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":        fmt.Sprintf("Resolved %d alerts", count),
		"resolved_count": count,
	})
}
