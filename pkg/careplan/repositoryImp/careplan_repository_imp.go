package repositoryImp

import (
	"gorm.io/gorm"

	"sprout/entities"
	"sprout/pkg/careplan/repository"
)

type ruleRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CarePlanRepository { return &ruleRepo{db} }

func (r *ruleRepo) ListByPlant(plantID uint) ([]entities.CareRule, error) {
	var out []entities.CareRule
	if err := r.db.Where("plant_id = ?", plantID).Order("type ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ruleRepo) Create(cr *entities.CareRule) error { return r.db.Create(cr).Error }

func (r *ruleRepo) Update(cr *entities.CareRule) error { return r.db.Save(cr).Error }

func (r *ruleRepo) Delete(ruleID uint) error {
	return r.db.Where("rule_id = ?", ruleID).Delete(&entities.CareRule{}).Error
}

func (r *ruleRepo) DeleteByPlant(plantID uint) error {
	return r.db.Where("plant_id = ?", plantID).Delete(&entities.CareRule{}).Error
}
