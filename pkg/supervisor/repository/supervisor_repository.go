package repository

import "farmdesk/entities"

type SupervisorRepository interface {
	List() ([]entities.Supervisor, error)
	FindByID(id uint) (*entities.Supervisor, error)
	Create(v *entities.Supervisor) error
	Save(v *entities.Supervisor) error
	Delete(id uint) error
}
