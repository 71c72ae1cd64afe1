package entities

import "time"

type Plant struct {
	PlantID   uint     `gorm:"primaryKey" json:"plant_id"`
	UserID    string   `json:"user_id" gorm:"index"`
	Name      string   `json:"name"`
	Species   string   `json:"species"`
	RoomID    *uint    `json:"room_id" gorm:"index"`
	PotSizeCM *float64 `json:"pot_size_cm"`
	SoilType  string   `json:"soil_type"` // universal|cactus|orchid|hydro
	Lat       *float64 `json:"lat"`
	Lon       *float64 `json:"lon"`
	PhotoURL  string   `json:"photo_url"`
	Notes     string   `json:"notes"`

	AcquiredAt time.Time `json:"acquired_at"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Room struct {
	RoomID    uint      `gorm:"primaryKey" json:"room_id"`
	UserID    string    `json:"user_id" gorm:"index"`
	Name      string    `json:"name"`
	Sort      int       `json:"sort"`
	CreatedAt time.Time
}
