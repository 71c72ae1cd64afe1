package repositoryImp

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"sprout/entities"
	"sprout/pkg/schedule/repository"
)

type taskRepo struct{ db *gorm.DB }

func NewTaskRepo(db *gorm.DB) repository.TaskRepository { return &taskRepo{db} }

func (r *taskRepo) Insert(t *entities.CareTask) error { return r.db.Create(t).Error }

func (r *taskRepo) FindByID(id uint) (*entities.CareTask, error) {
	var t entities.CareTask
	if err := r.db.Where("task_id = ?", id).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *taskRepo) FindOpen(plantID uint, careType string) (*entities.CareTask, error) {
	var t entities.CareTask
	if err := r.db.Where("plant_id = ? AND type = ?", plantID, careType).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *taskRepo) DueBy(until time.Time) ([]entities.CareTask, error) {
	var out []entities.CareTask
	if err := r.db.Where("due_at <= ?", until).Order("due_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *taskRepo) UpdateDueAt(id uint, due time.Time) (int64, error) {
	res := r.db.Model(&entities.CareTask{}).Where("task_id = ?", id).Update("due_at", due)
	return res.RowsAffected, res.Error
}

func (r *taskRepo) DeleteByID(id uint) error {
	return r.db.Where("task_id = ?", id).Delete(&entities.CareTask{}).Error
}

func (r *taskRepo) DeleteOpen(plantID uint, careType string) error {
	return r.db.Where("plant_id = ? AND type = ?", plantID, careType).Delete(&entities.CareTask{}).Error
}

func (r *taskRepo) DeleteByOrigin(completionID string) error {
	return r.db.Where("origin_event_id = ?", completionID).Delete(&entities.CareTask{}).Error
}

func (r *taskRepo) DeleteByPlant(plantID uint) error {
	return r.db.Where("plant_id = ?", plantID).Delete(&entities.CareTask{}).Error
}

type eventRepo struct{ db *gorm.DB }

func NewEventRepo(db *gorm.DB) repository.EventRepository { return &eventRepo{db} }

func (r *eventRepo) Insert(e *entities.CareEvent) error { return r.db.Create(e).Error }

func (r *eventRepo) ListByPlant(plantID uint, from, to time.Time) ([]entities.CareEvent, error) {
	q := r.db.Where("plant_id = ?", plantID)
	if !from.IsZero() {
		q = q.Where("occurred_at >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("occurred_at <= ?", to)
	}
	var out []entities.CareEvent
	if err := q.Order("occurred_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *eventRepo) DeleteByCompletionID(completionID string) error {
	return r.db.Where("completion_id = ?", completionID).Delete(&entities.CareEvent{}).Error
}

func (r *eventRepo) DeleteByPlant(plantID uint) error {
	return r.db.Where("plant_id = ?", plantID).Delete(&entities.CareEvent{}).Error
}

type ruleReader struct{ db *gorm.DB }

func NewRuleReader(db *gorm.DB) repository.RuleReader { return &ruleReader{db} }

func (r *ruleReader) Find(plantID uint, careType string) (*entities.CareRule, error) {
	var cr entities.CareRule
	if err := r.db.Where("plant_id = ? AND type = ?", plantID, careType).First(&cr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cr, nil
}

func (r *ruleReader) ListByPlant(plantID uint) ([]entities.CareRule, error) {
	var out []entities.CareRule
	if err := r.db.Where("plant_id = ?", plantID).Order("type ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
