package repositoryImp

import (
	"gorm.io/gorm"

	"sprout/entities"
	"sprout/pkg/room/repository"
)

type roomRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.RoomRepository { return &roomRepo{db} }

func (r *roomRepo) Create(rm *entities.Room) error { return r.db.Create(rm).Error }

func (r *roomRepo) ListByUser(uid string) ([]entities.Room, error) {
	var out []entities.Room
	if err := r.db.Where("user_id = ?", uid).Order("sort ASC, name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *roomRepo) Delete(id uint, uid string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("room_id = ? AND user_id = ?", id, uid).Delete(&entities.Room{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		// plants keep existing, just unassigned
		return tx.Model(&entities.Plant{}).Where("room_id = ?", id).Update("room_id", nil).Error
	})
}
