package serviceImp

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprout/entities"
	schedsvc "sprout/pkg/schedule/service"
)

type memSubs struct {
	seq   uint
	rows  map[uint]entities.PushSubscription
	fails map[uint]int
}

func newMemSubs() *memSubs {
	return &memSubs{rows: map[uint]entities.PushSubscription{}, fails: map[uint]int{}}
}

func (m *memSubs) Create(s *entities.PushSubscription) error {
	m.seq++
	s.SubID = m.seq
	m.rows[s.SubID] = *s
	return nil
}

func (m *memSubs) ListByUser(uid string) ([]entities.PushSubscription, error) {
	var out []entities.PushSubscription
	for _, s := range m.rows {
		if s.UserID == uid {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memSubs) All() ([]entities.PushSubscription, error) {
	var out []entities.PushSubscription
	for _, s := range m.rows {
		out = append(out, s)
	}
	return out, nil
}

func (m *memSubs) BumpFail(subID uint) error {
	m.fails[subID]++
	return nil
}

func (m *memSubs) Delete(subID uint, uid string) error {
	if s, ok := m.rows[subID]; ok && s.UserID == uid {
		delete(m.rows, subID)
	}
	return nil
}

type stubDue struct{ tasks []entities.CareTask }

func (s *stubDue) ScheduleInitialTasks(uint, []entities.CareRule) ([]entities.CareTask, error) {
	return nil, nil
}
func (s *stubDue) RecordCareEvent(schedsvc.TaskRef, time.Time, string) (*schedsvc.Completion, error) {
	return nil, nil
}
func (s *stubDue) DeferTask(uint, int) (*entities.CareTask, error)   { return nil, nil }
func (s *stubDue) UndoCompletion(entities.CareTask, string) error    { return nil }
func (s *stubDue) ListDue(int) ([]entities.CareTask, error)          { return s.tasks, nil }
func (s *stubDue) ListEvents(uint, string, string) ([]entities.CareEvent, error) {
	return nil, nil
}

type stubPlants struct{ byID map[uint]entities.Plant }

func (s *stubPlants) Create(*entities.Plant) error                   { return nil }
func (s *stubPlants) ListByUser(string) ([]entities.Plant, error)    { return nil, nil }
func (s *stubPlants) FindByID(uint, string) (*entities.Plant, error) { return nil, nil }
func (s *stubPlants) FindAny(id uint) (*entities.Plant, error) {
	if p, ok := s.byID[id]; ok {
		cp := p
		return &cp, nil
	}
	return nil, nil
}
func (s *stubPlants) Update(*entities.Plant) error    { return nil }
func (s *stubPlants) Delete(uint, string) error       { return nil }

func TestSubscribeRequiresEndpoint(t *testing.T) {
	s := New(newMemSubs(), &stubDue{}, &stubPlants{})
	err := s.Subscribe(&entities.PushSubscription{UserID: "u1"})
	require.Error(t, err)
}

func TestDispatchDueGroupsByOwnerAndDelivers(t *testing.T) {
	var got reminder
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &got)
	}))
	defer srv.Close()

	subs := newMemSubs()
	require.NoError(t, subs.Create(&entities.PushSubscription{UserID: "u1", Endpoint: srv.URL}))

	due := &stubDue{tasks: []entities.CareTask{
		{TaskID: 1, PlantID: 10, Type: entities.CareWater, DueAt: time.Now()},
		{TaskID: 2, PlantID: 10, Type: entities.CareFertilize, DueAt: time.Now()},
		{TaskID: 3, PlantID: 20, Type: entities.CareWater, DueAt: time.Now()},
	}}
	plants := &stubPlants{byID: map[uint]entities.Plant{
		10: {PlantID: 10, UserID: "u1", Name: "Fred"},
		20: {PlantID: 20, UserID: "someone-else", Name: "Not yours"},
	}}

	rep, err := New(subs, due, plants).DispatchDue(3)
	require.NoError(t, err)
	assert.Equal(t, 3, rep.DueTasks)
	assert.Equal(t, 1, rep.Delivered)
	assert.Equal(t, 0, rep.Failed)

	require.Len(t, got.Tasks, 2, "only the subscriber's own plants")
	assert.Equal(t, "Fred", got.Tasks[0].PlantName)
	assert.Contains(t, got.Body, "2 care task")
}

func TestDispatchDueCountsFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGone)
	}))
	defer srv.Close()

	subs := newMemSubs()
	require.NoError(t, subs.Create(&entities.PushSubscription{UserID: "u1", Endpoint: srv.URL}))

	due := &stubDue{tasks: []entities.CareTask{{TaskID: 1, PlantID: 10, Type: entities.CareWater}}}
	plants := &stubPlants{byID: map[uint]entities.Plant{10: {PlantID: 10, UserID: "u1"}}}

	rep, err := New(subs, due, plants).DispatchDue(3)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Failed)
	assert.Equal(t, 1, subs.fails[1], "failure bumps the counter")
}

func TestDispatchDueNoTasks(t *testing.T) {
	rep, err := New(newMemSubs(), &stubDue{}, &stubPlants{}).DispatchDue(3)
	require.NoError(t, err)
	assert.Zero(t, rep.DueTasks)
	assert.Zero(t, rep.Delivered)
}
