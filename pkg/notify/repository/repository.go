package repository

import "sprout/entities"

type Repo interface {
	Create(s *entities.PushSubscription) error
	ListByUser(uid string) ([]entities.PushSubscription, error)
	All() ([]entities.PushSubscription, error)
	BumpFail(subID uint) error
	Delete(subID uint, uid string) error
}
