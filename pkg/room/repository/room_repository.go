package repository

import "sprout/entities"

type RoomRepository interface {
	Create(r *entities.Room) error
	ListByUser(uid string) ([]entities.Room, error)
	Delete(id uint, uid string) error
}
