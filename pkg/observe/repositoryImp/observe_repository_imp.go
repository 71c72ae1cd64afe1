package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"sprout/entities"
	"sprout/pkg/observe/repository"
)

type obsRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ObserveRepository { return &obsRepo{db} }

func (r *obsRepo) Create(o *entities.Observation) error { return r.db.Create(o).Error }

func (r *obsRepo) Recent(plantID uint, days int) ([]entities.Observation, error) {
	var out []entities.Observation
	cut := time.Now().AddDate(0, 0, -days)
	if err := r.db.Where("plant_id = ? AND date >= ?", plantID, cut).Order("date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
