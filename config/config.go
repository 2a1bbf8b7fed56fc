package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Thresholds defines the dangerous-range boundaries for each metric. Values
// are read once at startup; changing them is a deployment action.
type Thresholds struct {
	TempHigh     float64
	TempLow      float64
	HumidityHigh float64
	SoilLow      float64
}

// Config holds everything the process needs from the environment.
type Config struct {
	Port         string
	DatabaseURL  string
	MQTTBroker   string
	MQTTTopic    string
	MQTTClientID string
	ChatbotURL   string
	ChatbotKey   string
	JWTSecret    string
	LogLevel     string
	Thresholds   Thresholds
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	godotenv.Load()

	return &Config{
		Port:         getEnv("PORT", "8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		MQTTBroker:   getEnv("MQTT_BROKER", "tcp://localhost:1883"),
		MQTTTopic:    getEnv("MQTT_TOPIC", "smartplant/readings"),
		MQTTClientID: getEnv("MQTT_CLIENT_ID", "smartplant-backend"),
		ChatbotURL:   os.Getenv("CHATBOT_API_URL"),
		ChatbotKey:   os.Getenv("CHATBOT_API_KEY"),
		JWTSecret:    getEnv("JWT_SECRET", "your-secret-key"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		Thresholds: Thresholds{
			TempHigh:     getEnvFloat("TEMP_HIGH", 32.0),
			TempLow:      getEnvFloat("TEMP_LOW", 10.0),
			HumidityHigh: getEnvFloat("HUMIDITY_HIGH", 85.0),
			SoilLow:      getEnvFloat("SOIL_MOISTURE_LOW", 30.0),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
