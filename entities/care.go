package entities

import "time"

// Care types tracked per plant. A plant has at most one rule, and at most one
// open task, per type.
const (
	CareWater     = "water"
	CareFertilize = "fertilize"
	CareRepot     = "repot"
)

// DefaultIntervalDays is used when a stored rule has no usable interval.
const DefaultIntervalDays = 7

type CareRule struct {
	RuleID       uint     `gorm:"primaryKey" json:"rule_id"`
	PlantID      uint     `gorm:"index" json:"plant_id"`
	Type         string   `json:"type"` // water|fertilize|repot
	IntervalDays int      `json:"interval_days"`
	AmountML     *float64 `json:"amount_ml,omitempty"` // water only
	Formula      string   `json:"formula,omitempty"`   // fertilize only

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CareEvent is append-only history: the action happened at OccurredAt.
// CompletionID is the undo token handed back by the completion call.
type CareEvent struct {
	EventID      uint      `gorm:"primaryKey" json:"event_id"`
	PlantID      uint      `gorm:"index" json:"plant_id"`
	Type         string    `json:"type"`
	OccurredAt   time.Time `json:"occurred_at"`
	CompletionID string    `gorm:"index" json:"completion_id"`
	Note         string    `json:"note,omitempty"`
	CreatedAt    time.Time
}

// CareTask is the derived "next occurrence" row. OriginEventID carries the
// CompletionID of the completion that scheduled it; empty for initial tasks.
type CareTask struct {
	TaskID        uint       `gorm:"primaryKey" json:"task_id"`
	PlantID       uint       `gorm:"index" json:"plant_id"`
	Type          string     `json:"type"`
	DueAt         time.Time  `json:"due_at"`
	LastEventAt   *time.Time `json:"last_event_at,omitempty"`
	OriginEventID string     `gorm:"index" json:"-"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
