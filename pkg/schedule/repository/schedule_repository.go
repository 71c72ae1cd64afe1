package repository

import (
	"time"

	"sprout/entities"
)

// TaskRepository stores open care tasks. Find methods return (nil, nil) when
// no row matches so callers can distinguish "absent" from storage failure.
type TaskRepository interface {
	Insert(t *entities.CareTask) error
	FindByID(id uint) (*entities.CareTask, error)
	FindOpen(plantID uint, careType string) (*entities.CareTask, error)
	DueBy(until time.Time) ([]entities.CareTask, error)
	UpdateDueAt(id uint, due time.Time) (int64, error)
	DeleteByID(id uint) error
	DeleteOpen(plantID uint, careType string) error
	DeleteByOrigin(completionID string) error
	DeleteByPlant(plantID uint) error
}

type EventRepository interface {
	Insert(e *entities.CareEvent) error
	ListByPlant(plantID uint, from, to time.Time) ([]entities.CareEvent, error)
	DeleteByCompletionID(completionID string) error
	DeleteByPlant(plantID uint) error
}

// RuleReader is the engine's read-only view of care rules; writes live in
// the careplan package.
type RuleReader interface {
	Find(plantID uint, careType string) (*entities.CareRule, error)
	ListByPlant(plantID uint) ([]entities.CareRule, error)
}
