package serviceImp

import (
	"sort"
	"time"

	"sprout/entities"
)

// In-memory repositories implementing the same interfaces the gorm adapters
// implement, so engine behavior is tested storage-free.

type memTasks struct {
	seq  uint
	rows map[uint]entities.CareTask
}

func newMemTasks() *memTasks { return &memTasks{rows: map[uint]entities.CareTask{}} }

func (m *memTasks) Insert(t *entities.CareTask) error {
	if t.TaskID == 0 {
		m.seq++
		t.TaskID = m.seq
	} else if t.TaskID > m.seq {
		m.seq = t.TaskID
	}
	m.rows[t.TaskID] = *t
	return nil
}

func (m *memTasks) FindByID(id uint) (*entities.CareTask, error) {
	if t, ok := m.rows[id]; ok {
		cp := t
		return &cp, nil
	}
	return nil, nil
}

func (m *memTasks) FindOpen(plantID uint, careType string) (*entities.CareTask, error) {
	for _, t := range m.rows {
		if t.PlantID == plantID && t.Type == careType {
			cp := t
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memTasks) DueBy(until time.Time) ([]entities.CareTask, error) {
	var out []entities.CareTask
	for _, t := range m.rows {
		if !t.DueAt.After(until) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueAt.Before(out[j].DueAt) })
	return out, nil
}

func (m *memTasks) UpdateDueAt(id uint, due time.Time) (int64, error) {
	t, ok := m.rows[id]
	if !ok {
		return 0, nil
	}
	t.DueAt = due
	m.rows[id] = t
	return 1, nil
}

func (m *memTasks) DeleteByID(id uint) error {
	delete(m.rows, id)
	return nil
}

func (m *memTasks) DeleteOpen(plantID uint, careType string) error {
	for id, t := range m.rows {
		if t.PlantID == plantID && t.Type == careType {
			delete(m.rows, id)
		}
	}
	return nil
}

func (m *memTasks) DeleteByOrigin(completionID string) error {
	for id, t := range m.rows {
		if completionID != "" && t.OriginEventID == completionID {
			delete(m.rows, id)
		}
	}
	return nil
}

func (m *memTasks) DeleteByPlant(plantID uint) error {
	for id, t := range m.rows {
		if t.PlantID == plantID {
			delete(m.rows, id)
		}
	}
	return nil
}

func (m *memTasks) all() []entities.CareTask {
	var out []entities.CareTask
	for _, t := range m.rows {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TaskID < out[j].TaskID })
	return out
}

type memEvents struct {
	seq  uint
	rows []entities.CareEvent
}

func newMemEvents() *memEvents { return &memEvents{} }

func (m *memEvents) Insert(e *entities.CareEvent) error {
	m.seq++
	e.EventID = m.seq
	m.rows = append(m.rows, *e)
	return nil
}

func (m *memEvents) ListByPlant(plantID uint, from, to time.Time) ([]entities.CareEvent, error) {
	var out []entities.CareEvent
	for _, e := range m.rows {
		if e.PlantID != plantID {
			continue
		}
		if !from.IsZero() && e.OccurredAt.Before(from) {
			continue
		}
		if !to.IsZero() && e.OccurredAt.After(to) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OccurredAt.Before(out[j].OccurredAt) })
	return out, nil
}

func (m *memEvents) DeleteByCompletionID(completionID string) error {
	kept := m.rows[:0]
	for _, e := range m.rows {
		if completionID == "" || e.CompletionID != completionID {
			kept = append(kept, e)
		}
	}
	m.rows = kept
	return nil
}

func (m *memEvents) DeleteByPlant(plantID uint) error {
	kept := m.rows[:0]
	for _, e := range m.rows {
		if e.PlantID != plantID {
			kept = append(kept, e)
		}
	}
	m.rows = kept
	return nil
}

type memRules struct {
	rows []entities.CareRule
}

func newMemRules(rules ...entities.CareRule) *memRules { return &memRules{rows: rules} }

func (m *memRules) Find(plantID uint, careType string) (*entities.CareRule, error) {
	for _, r := range m.rows {
		if r.PlantID == plantID && r.Type == careType {
			cp := r
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memRules) ListByPlant(plantID uint) ([]entities.CareRule, error) {
	var out []entities.CareRule
	for _, r := range m.rows {
		if r.PlantID == plantID {
			out = append(out, r)
		}
	}
	return out, nil
}
