package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Ingestion metrics
	ReadingsIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartplant_readings_ingested_total",
			Help: "Total number of readings persisted",
		},
		[]string{"source"}, // source: mqtt, http
	)

	DecodeFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "smartplant_decode_failures_total",
			Help: "Total number of inbound payloads dropped as unparseable",
		},
	)

	PersistFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "smartplant_persist_failures_total",
			Help: "Total number of readings lost to a failed transaction",
		},
	)

	AlertsRaised = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartplant_alerts_raised_total",
			Help: "Total number of alerts derived from readings",
		},
		[]string{"type"}, // type: motion, environment
	)
)
