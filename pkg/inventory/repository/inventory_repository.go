package repository

import "farmdesk/entities"

type InventoryRepository interface {
	List() ([]entities.InventoryItem, error)
	FindByID(id uint) (*entities.InventoryItem, error)
	Create(v *entities.InventoryItem) error
	Save(v *entities.InventoryItem) error
	Delete(id uint) error
}
