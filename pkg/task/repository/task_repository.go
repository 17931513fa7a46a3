package repository

import "farmdesk/entities"

type TaskRepository interface {
	List() ([]entities.Task, error)
	FindByID(id uint) (*entities.Task, error)
	Create(t *entities.Task) error
	Save(t *entities.Task) error
	Delete(id uint) error
}
