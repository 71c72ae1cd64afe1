package service

import "time"

// TypeStats summarizes the event history for one care type on one plant.
type TypeStats struct {
	Type            string     `json:"type"`
	Events          int        `json:"events"`
	AvgIntervalDays float64    `json:"avg_interval_days"`
	OnTimeRate      float64    `json:"on_time_rate"`
	Streak          int        `json:"streak"`
	LastEventAt     *time.Time `json:"last_event_at,omitempty"`
	NextDueAt       *time.Time `json:"next_due_at,omitempty"`
}

type PlantInsights struct {
	PlantID uint        `json:"plant_id"`
	Types   []TypeStats `json:"types"`
}

type InsightsService interface {
	ForPlant(plantID uint) (*PlantInsights, error)

	// ExportXLSX renders the plant's history and summary as a spreadsheet.
	ExportXLSX(plantID uint) ([]byte, error)
}
