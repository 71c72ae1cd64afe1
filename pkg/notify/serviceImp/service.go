package serviceImp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"sprout/entities"
	"sprout/pkg/notify/repository"
	svc "sprout/pkg/notify/service"
	plantrepo "sprout/pkg/plant/repository"
	schedsvc "sprout/pkg/schedule/service"
)

type service struct {
	repo   repository.Repo
	sched  schedsvc.ScheduleService
	plants plantrepo.PlantRepository
	httpc  *http.Client
}

func New(r repository.Repo, sched schedsvc.ScheduleService, plants plantrepo.PlantRepository) svc.Service {
	return &service{repo: r, sched: sched, plants: plants, httpc: &http.Client{Timeout: 5 * time.Second}}
}

func (s *service) Subscribe(sub *entities.PushSubscription) error {
	if sub.Endpoint == "" {
		return errors.New("endpoint is required")
	}
	return s.repo.Create(sub)
}

func (s *service) List(uid string) ([]entities.PushSubscription, error) {
	return s.repo.ListByUser(uid)
}

func (s *service) Unsubscribe(subID uint, uid string) error {
	return s.repo.Delete(subID, uid)
}

type reminder struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Tasks []struct {
		PlantName string    `json:"plant_name"`
		Type      string    `json:"type"`
		DueAt     time.Time `json:"due_at"`
	} `json:"tasks"`
}

func (s *service) DispatchDue(withinDays int) (*svc.DispatchReport, error) {
	due, err := s.sched.ListDue(withinDays)
	if err != nil {
		return nil, err
	}
	rep := &svc.DispatchReport{DueTasks: len(due)}
	if len(due) == 0 {
		return rep, nil
	}

	// group due tasks by owning user
	byUser := map[string]*reminder{}
	for _, t := range due {
		owner, name := s.owner(t.PlantID)
		if owner == "" {
			continue
		}
		r, ok := byUser[owner]
		if !ok {
			r = &reminder{Title: "Plants need you"}
			byUser[owner] = r
		}
		r.Tasks = append(r.Tasks, struct {
			PlantName string    `json:"plant_name"`
			Type      string    `json:"type"`
			DueAt     time.Time `json:"due_at"`
		}{PlantName: name, Type: t.Type, DueAt: t.DueAt})
	}
	for _, r := range byUser {
		r.Body = fmt.Sprintf("%d care task(s) due", len(r.Tasks))
	}

	subs, err := s.repo.All()
	if err != nil {
		return nil, err
	}
	for _, sub := range subs {
		r, ok := byUser[sub.UserID]
		if !ok {
			continue
		}
		if s.push(sub.Endpoint, r) {
			rep.Delivered++
		} else {
			rep.Failed++
			_ = s.repo.BumpFail(sub.SubID)
		}
	}
	return rep, nil
}

// owner resolves a plant to its user without a uid filter; the dispatcher is
// the one caller that works across users.
func (s *service) owner(plantID uint) (string, string) {
	p, err := s.plants.FindAny(plantID)
	if err != nil || p == nil {
		return "", ""
	}
	return p.UserID, p.Name
}

func (s *service) push(endpoint string, r *reminder) bool {
	b, _ := json.Marshal(r)
	req, err := http.NewRequest("POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.httpc.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
