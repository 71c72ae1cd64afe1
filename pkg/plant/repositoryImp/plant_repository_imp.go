package repositoryImp

import (
	"gorm.io/gorm"

	"sprout/entities"
	"sprout/pkg/plant/repository"
)

type plantRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlantRepository { return &plantRepo{db} }

func (r *plantRepo) Create(p *entities.Plant) error { return r.db.Create(p).Error }

func (r *plantRepo) FindByID(id uint, uid string) (*entities.Plant, error) {
	var p entities.Plant
	if err := r.db.Where("plant_id = ? AND user_id = ?", id, uid).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *plantRepo) FindAny(id uint) (*entities.Plant, error) {
	var p entities.Plant
	if err := r.db.Where("plant_id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *plantRepo) ListByUser(uid string) ([]entities.Plant, error) {
	var out []entities.Plant
	if err := r.db.Where("user_id = ?", uid).Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *plantRepo) Update(p *entities.Plant) error { return r.db.Save(p).Error }

func (r *plantRepo) Delete(id uint, uid string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var p entities.Plant
		if err := tx.Where("plant_id = ? AND user_id = ?", id, uid).First(&p).Error; err != nil {
			return err
		}
		for _, m := range []any{
			&entities.CareRule{},
			&entities.CareTask{},
			&entities.CareEvent{},
			&entities.Observation{},
		} {
			if err := tx.Where("plant_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&p).Error
	})
}
