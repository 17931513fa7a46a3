package repository

import "farmdesk/entities"

type PlotRepository interface {
	List() ([]entities.Plot, error)
	FindByID(id uint) (*entities.Plot, error)
	Create(v *entities.Plot) error
	Save(v *entities.Plot) error
	Delete(id uint) error
}
