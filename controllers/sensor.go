package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ylk14/SmartPlant-sub001/ingest"
)

// ReceiveData processes incoming sensor data over HTTP. It runs the same
// evaluate-and-persist pipeline as the MQTT path.
func (a *API) ReceiveData(c *gin.Context) {
	var payload ingest.Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}
	if payload.DeviceID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing device_id"})
		return
	}

	reading, alerts, err := a.Pipeline.Ingest(payload, "http")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store reading"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Data received successfully",
		"reading_id":      reading.ID,
		"alert_generated": reading.AlertGenerated,
		"alerts":          alerts,
	})
}
