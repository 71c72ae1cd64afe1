package serviceImp

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"sprout/entities"
	"sprout/pkg/schedule/repository"
	"sprout/pkg/schedule/service"
)

type SchedSvc struct {
	tasks  repository.TaskRepository
	events repository.EventRepository
	rules  repository.RuleReader
	now    func() time.Time
}

func NewScheduleService(t repository.TaskRepository, e repository.EventRepository, r repository.RuleReader) *SchedSvc {
	return &SchedSvc{tasks: t, events: e, rules: r, now: time.Now}
}

// NewWithClock is for tests that need a fixed notion of now.
func NewWithClock(t repository.TaskRepository, e repository.EventRepository, r repository.RuleReader, now func() time.Time) *SchedSvc {
	return &SchedSvc{tasks: t, events: e, rules: r, now: now}
}

// interval falls back to the default rather than failing the write when a
// stored rule has no usable interval.
func interval(r *entities.CareRule) int {
	if r == nil || r.IntervalDays <= 0 {
		return entities.DefaultIntervalDays
	}
	return r.IntervalDays
}

func (s *SchedSvc) ScheduleInitialTasks(plantID uint, rules []entities.CareRule) ([]entities.CareTask, error) {
	now := s.now()
	out := make([]entities.CareTask, 0, len(rules))
	for _, r := range rules {
		// AddDate is calendar-day arithmetic: time-of-day survives DST.
		t := entities.CareTask{
			PlantID: plantID,
			Type:    r.Type,
			DueAt:   now.AddDate(0, 0, interval(&r)),
		}
		if err := s.tasks.Insert(&t); err != nil {
			return nil, fmt.Errorf("schedule initial %s: %w", r.Type, err)
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *SchedSvc) RecordCareEvent(ref service.TaskRef, occurredAt time.Time, note string) (*service.Completion, error) {
	plantID, careType := ref.PlantID, ref.Type
	var open *entities.CareTask
	if ref.ByTaskID() {
		t, err := s.tasks.FindByID(ref.TaskID)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, service.ErrNotFound
		}
		open = t
		plantID, careType = t.PlantID, t.Type
	} else {
		if plantID == 0 || careType == "" {
			return nil, fmt.Errorf("%w: plant and type required", service.ErrValidation)
		}
		t, err := s.tasks.FindOpen(plantID, careType)
		if err != nil {
			return nil, err
		}
		open = t // may be nil: completion self-heals a missing task row
	}

	if occurredAt.IsZero() {
		occurredAt = s.now()
	}
	token := uuid.NewString()

	// History first: the event is recorded even if no rule is configured.
	ev := entities.CareEvent{
		PlantID:      plantID,
		Type:         careType,
		OccurredAt:   occurredAt,
		CompletionID: token,
		Note:         note,
	}
	if err := s.events.Insert(&ev); err != nil {
		return nil, fmt.Errorf("record event: %w", err)
	}

	if open != nil {
		if err := s.tasks.DeleteByID(open.TaskID); err != nil {
			return nil, fmt.Errorf("retire task: %w", err)
		}
	}

	comp := &service.Completion{EventAt: occurredAt, Token: token}

	rule, err := s.rules.Find(plantID, careType)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		// valid, silent state: history-only event, nothing rescheduled
		return comp, nil
	}

	next := entities.CareTask{
		PlantID:       plantID,
		Type:          careType,
		DueAt:         occurredAt.AddDate(0, 0, interval(rule)),
		LastEventAt:   &occurredAt,
		OriginEventID: token,
	}
	if err := s.tasks.Insert(&next); err != nil {
		return nil, fmt.Errorf("schedule next: %w", err)
	}
	comp.Task = &next
	return comp, nil
}

func (s *SchedSvc) DeferTask(taskID uint, days int) (*entities.CareTask, error) {
	if days <= 0 {
		return nil, fmt.Errorf("%w: defer days must be a positive integer", service.ErrValidation)
	}
	t, err := s.tasks.FindByID(taskID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, service.ErrNotFound
	}
	due := t.DueAt.AddDate(0, 0, days)
	n, err := s.tasks.UpdateDueAt(taskID, due)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		// concurrently completed
		return nil, service.ErrNotFound
	}
	t.DueAt = due
	return t, nil
}

func (s *SchedSvc) UndoCompletion(original entities.CareTask, token string) error {
	if token == "" {
		return fmt.Errorf("%w: token required", service.ErrValidation)
	}
	if err := s.events.DeleteByCompletionID(token); err != nil {
		return err
	}
	if err := s.tasks.DeleteByOrigin(token); err != nil {
		return err
	}
	if original.TaskID == 0 {
		return nil
	}
	// Re-insert only if a later completion has not already replaced it.
	cur, err := s.tasks.FindOpen(original.PlantID, original.Type)
	if err != nil {
		return err
	}
	if cur != nil {
		return nil
	}
	return s.tasks.Insert(&original)
}

func (s *SchedSvc) ListDue(withinDays int) ([]entities.CareTask, error) {
	if withinDays < 0 {
		return nil, fmt.Errorf("%w: window must be >= 0 days", service.ErrValidation)
	}
	return s.tasks.DueBy(s.now().AddDate(0, 0, withinDays))
}

func (s *SchedSvc) ListEvents(plantID uint, from, to string) ([]entities.CareEvent, error) {
	var f, t time.Time
	if from != "" {
		if v, err := time.Parse("2006-01-02", from); err == nil {
			f = v
		}
	}
	if to != "" {
		if v, err := time.Parse("2006-01-02", to); err == nil {
			t = v
		}
	}
	return s.events.ListByPlant(plantID, f, t)
}
