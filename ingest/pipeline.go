package ingest

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ylk14/SmartPlant-sub001/anomaly"
	"github.com/ylk14/SmartPlant-sub001/logger"
	"github.com/ylk14/SmartPlant-sub001/metrics"
	"github.com/ylk14/SmartPlant-sub001/models"
)

// Payload is the inbound telemetry record as published by the sensors.
// Metric fields are optional; a sensor without a probe sends null.
type Payload struct {
	DeviceID       uint     `json:"device_id"`
	Temperature    *float64 `json:"temperature"`
	Humidity       *float64 `json:"humidity"`
	SoilMoisture   *float64 `json:"soil_moisture"`
	MotionDetected bool     `json:"motion_detected"`
}

// Persister is the slice of the reading store the pipeline needs.
type Persister interface {
	PersistReading(reading *models.Reading, alerts []models.Alert) (uint, error)
}

// Notifier is called after a successful persist, e.g. to push the reading to
// websocket clients. Alerts carry their generated ids.
type Notifier func(reading models.Reading, alerts []models.Alert)

// Pipeline turns one inbound payload into a persisted reading plus derived
// alerts. It is shared by the MQTT subscriber and the HTTP ingestion route.
type Pipeline struct {
	evaluator *anomaly.Evaluator
	store     Persister
	notify    Notifier
	log       zerolog.Logger
}

func NewPipeline(evaluator *anomaly.Evaluator, store Persister, notify Notifier) *Pipeline {
	return &Pipeline{
		evaluator: evaluator,
		store:     store,
		notify:    notify,
		log:       logger.WithComponent("ingest"),
	}
}

// HandleMessage processes one raw transport message. Malformed payloads are
// dropped with a diagnostic; persistence failures are logged and the message
// is considered consumed. Nothing here ever panics back into the transport.
func (p *Pipeline) HandleMessage(raw []byte) {
	payload, err := decode(raw)
	if err != nil {
		metrics.DecodeFailures.Inc()
		p.log.Warn().Err(err).Int("bytes", len(raw)).Msg("dropping unparseable payload")
		return
	}
	if _, _, err := p.Ingest(payload, "mqtt"); err != nil {
		p.log.Error().Err(err).Uint("device_id", payload.DeviceID).Msg("reading lost")
	}
}

// Ingest evaluates the payload against the thresholds and persists the
// reading together with any derived alerts in one transaction.
func (p *Pipeline) Ingest(payload Payload, source string) (*models.Reading, []models.Alert, error) {
	reading := models.Reading{
		DeviceID:       payload.DeviceID,
		Temperature:    payload.Temperature,
		Humidity:       payload.Humidity,
		SoilMoisture:   payload.SoilMoisture,
		MotionDetected: payload.MotionDetected,
	}

	findings := p.evaluator.Evaluate(reading)
	alerts := make([]models.Alert, 0, len(findings))
	for _, f := range findings {
		alerts = append(alerts, models.Alert{
			AlertType:    f.Type,
			AlertMessage: f.Message,
		})
	}

	if _, err := p.store.PersistReading(&reading, alerts); err != nil {
		metrics.PersistFailures.Inc()
		return nil, nil, err
	}

	metrics.ReadingsIngested.WithLabelValues(source).Inc()
	for _, a := range alerts {
		metrics.AlertsRaised.WithLabelValues(a.AlertType).Inc()
	}

	if p.notify != nil {
		p.notify(reading, alerts)
	}
	return &reading, alerts, nil
}

func decode(raw []byte) (Payload, error) {
	var payload Payload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return Payload{}, err
	}
	if payload.DeviceID == 0 {
		return Payload{}, fmt.Errorf("missing device_id")
	}
	return payload, nil
}
