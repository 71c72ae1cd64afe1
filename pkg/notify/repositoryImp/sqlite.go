package repositoryImp

import (
	"gorm.io/gorm"

	"sprout/entities"
	"sprout/pkg/notify/repository"
)

type sqliteRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.Repo { return &sqliteRepo{db: db} }

func (r *sqliteRepo) Create(s *entities.PushSubscription) error { return r.db.Create(s).Error }

func (r *sqliteRepo) ListByUser(uid string) ([]entities.PushSubscription, error) {
	var out []entities.PushSubscription
	return out, r.db.Where("user_id = ?", uid).Find(&out).Error
}

func (r *sqliteRepo) All() ([]entities.PushSubscription, error) {
	var out []entities.PushSubscription
	return out, r.db.Find(&out).Error
}

func (r *sqliteRepo) BumpFail(subID uint) error {
	return r.db.Model(&entities.PushSubscription{}).Where("sub_id = ?", subID).
		Update("fail_count", gorm.Expr("fail_count + 1")).Error
}

func (r *sqliteRepo) Delete(subID uint, uid string) error {
	return r.db.Where("sub_id = ? AND user_id = ?", subID, uid).Delete(&entities.PushSubscription{}).Error
}
