package entities

import "time"

type Observation struct {
	ObsID        uint      `gorm:"primaryKey" json:"obs_id"`
	PlantID      uint      `gorm:"index" json:"plant_id"`
	Date         time.Time `json:"date"`
	HeightCM     *float64  `json:"height_cm"`
	SoilMoistPct *float64  `json:"soil_moist_pct"`
	MoistState   string    `json:"moist_state"` // dry|ok|wet
	NewLeaves    *int      `json:"new_leaves"`
	Note         string    `json:"note"`
	PhotoURL     string    `json:"photo_url"`
	CreatedAt    time.Time
}
