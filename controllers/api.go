package controllers

import (
	"gorm.io/gorm"

	"github.com/ylk14/SmartPlant-sub001/config"
	"github.com/ylk14/SmartPlant-sub001/ingest"
	"github.com/ylk14/SmartPlant-sub001/store"
)

// API bundles the dependencies the HTTP handlers need. Everything is injected
// so tests can swap in an in-memory database.
type API struct {
	Cfg      *config.Config
	DB       *gorm.DB
	Readings *store.ReadingStore
	Alerts   *store.AlertStore
	Devices  *store.DeviceStore
	Pipeline *ingest.Pipeline
	Hub      *Hub
}

func NewAPI(cfg *config.Config, db *gorm.DB, pipeline *ingest.Pipeline, hub *Hub) *API {
	return &API{
		Cfg:      cfg,
		DB:       db,
		Readings: store.NewReadingStore(db),
		Alerts:   store.NewAlertStore(db),
		Devices:  store.NewDeviceStore(db),
		Pipeline: pipeline,
		Hub:      hub,
	}
}
