package service

import (
	"errors"
	"time"

	"sprout/entities"
)

// Errors the engine reports. Controllers map them to 404/400. Conflict is
// reserved for a stricter concurrency mode and not returned today.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation")
)

// TaskRef identifies a task either by its own id or by the (plant, care type)
// pair. Completion through a plant/type ref succeeds even when no open task
// row exists for the pair, as long as a rule does.
type TaskRef struct {
	TaskID  uint
	PlantID uint
	Type    string
}

func ByID(taskID uint) TaskRef { return TaskRef{TaskID: taskID} }

func ByPlantType(plantID uint, careType string) TaskRef {
	return TaskRef{PlantID: plantID, Type: careType}
}

func (r TaskRef) ByTaskID() bool { return r.TaskID != 0 }

// Completion is the result of recording a care event. Token is the undo
// handle; EventAt is the timestamp actually written.
type Completion struct {
	EventAt time.Time          `json:"event_at"`
	Token   string             `json:"token"`
	Task    *entities.CareTask `json:"task,omitempty"`
}

type ScheduleService interface {
	// ScheduleInitialTasks creates one open task per rule, due IntervalDays
	// from now. No events are written.
	ScheduleInitialTasks(plantID uint, rules []entities.CareRule) ([]entities.CareTask, error)

	// RecordCareEvent appends an event, retires the open task for the pair
	// and, when a rule exists, schedules the successor IntervalDays after
	// occurredAt. A zero occurredAt means now. The event is written even
	// when no rule is configured.
	RecordCareEvent(ref TaskRef, occurredAt time.Time, note string) (*Completion, error)

	// DeferTask pushes the task's due date forward by whole calendar days.
	DeferTask(taskID uint, days int) (*entities.CareTask, error)

	// UndoCompletion compensates a prior RecordCareEvent identified by its
	// token: the event and the successor task it scheduled are removed and
	// the supplied original task is restored. Rows that no longer match the
	// token are skipped silently.
	UndoCompletion(original entities.CareTask, token string) error

	// ListDue returns open tasks due within the window, soonest first.
	ListDue(withinDays int) ([]entities.CareTask, error)

	// ListEvents returns the event history for a plant, optionally bounded
	// by YYYY-MM-DD dates.
	ListEvents(plantID uint, from, to string) ([]entities.CareEvent, error)
}
