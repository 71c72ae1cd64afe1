package service

import "sprout/entities"

type Service interface {
	Subscribe(s *entities.PushSubscription) error
	List(uid string) ([]entities.PushSubscription, error)
	Unsubscribe(subID uint, uid string) error

	// DispatchDue pushes one reminder per subscription whose owner has tasks
	// due within the window. Fire-and-forget: per-endpoint failures are
	// counted, never returned.
	DispatchDue(withinDays int) (*DispatchReport, error)
}

type DispatchReport struct {
	DueTasks  int `json:"due_tasks"`
	Delivered int `json:"delivered"`
	Failed    int `json:"failed"`
}
