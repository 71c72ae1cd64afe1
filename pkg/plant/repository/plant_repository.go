package repository

import "sprout/entities"

type PlantRepository interface {
	Create(p *entities.Plant) error
	FindByID(id uint, uid string) (*entities.Plant, error)

	// FindAny looks a plant up without a user filter; only the reminder
	// dispatcher, which works across users, may use it.
	FindAny(id uint) (*entities.Plant, error)
	ListByUser(uid string) ([]entities.Plant, error)
	Update(p *entities.Plant) error

	// Delete removes the plant and everything hanging off it: rules, open
	// tasks, events and observations. One transaction, no orphans.
	Delete(id uint, uid string) error
}
