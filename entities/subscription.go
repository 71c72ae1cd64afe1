package entities

import "time"

// PushSubscription is a reminder target registered by a client. Dispatch is
// fire-and-forget; failures only bump FailCount.
type PushSubscription struct {
	SubID     uint      `gorm:"primaryKey" json:"sub_id"`
	UserID    string    `gorm:"index" json:"user_id"`
	Endpoint  string    `json:"endpoint"`
	Label     string    `json:"label"`
	FailCount int       `json:"fail_count"`
	CreatedAt time.Time
}
