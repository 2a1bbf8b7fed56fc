package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ylk14/SmartPlant-sub001/models"
	"github.com/ylk14/SmartPlant-sub001/store"
	"github.com/ylk14/SmartPlant-sub001/utils"
)

// Chat answers a question about one device by summarizing its current state
// through the external language-model API.
func (a *API) Chat(c *gin.Context) {
	var input struct {
		DeviceID uint   `json:"device_id" binding:"required"`
		Question string `json:"question"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	status, err := a.Readings.LatestStatusForDevice(input.DeviceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Device not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch device status"})
		return
	}

	reply, err := utils.AskChatbot(a.Cfg.ChatbotURL, a.Cfg.ChatbotKey, buildPrompt(status, input.Question))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Chatbot unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

func buildPrompt(status *models.DeviceStatus, question string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a plant care assistant. Device %q (species: %s).\n", status.DeviceName, status.SpeciesName)

	if status.ReadingTimestamp == nil {
		b.WriteString("No sensor readings yet.\n")
	} else {
		fmt.Fprintf(&b, "Latest reading at %s:\n", status.ReadingTimestamp.Format("2006-01-02 15:04:05"))
		if status.Temperature != nil {
			fmt.Fprintf(&b, "- Temperature: %.1f°C\n", *status.Temperature)
		}
		if status.Humidity != nil {
			fmt.Fprintf(&b, "- Humidity: %.1f%%\n", *status.Humidity)
		}
		if status.SoilMoisture != nil {
			fmt.Fprintf(&b, "- Soil moisture: %.1f%%\n", *status.SoilMoisture)
		}
	}
	if status.ActiveAlerts != "" {
		fmt.Fprintf(&b, "Active alerts: %s\n", status.ActiveAlerts)
	}

	if question == "" {
		b.WriteString("Summarize the plant's condition for the owner.")
	} else {
		fmt.Fprintf(&b, "Owner question: %s", question)
	}
	return b.String()
}
