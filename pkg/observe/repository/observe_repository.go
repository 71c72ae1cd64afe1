package repository

import "sprout/entities"

type ObserveRepository interface {
	Create(o *entities.Observation) error
	Recent(plantID uint, days int) ([]entities.Observation, error)
}
