package service

import "farmdesk/entities"

type InventoryService interface {
	List() ([]entities.InventoryItem, error)
	Create(i *entities.InventoryItem) error
	Update(id uint, p InventoryPatch) (*entities.InventoryItem, error)
	Delete(id uint) error
}

type InventoryPatch struct {
	ItemName  *string  `json:"item_name"`
	Category  *string  `json:"category"`
	Stock     *float64 `json:"stock"`
	Unit      *string  `json:"unit"`
	Threshold *float64 `json:"threshold"`
}
