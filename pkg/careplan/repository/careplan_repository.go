package repository

import "sprout/entities"

type CarePlanRepository interface {
	ListByPlant(plantID uint) ([]entities.CareRule, error)
	Create(r *entities.CareRule) error
	Update(r *entities.CareRule) error
	Delete(ruleID uint) error
	DeleteByPlant(plantID uint) error
}
