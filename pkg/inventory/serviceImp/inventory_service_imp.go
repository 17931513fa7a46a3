package serviceImp

import (
	"fmt"

	"farmdesk/entities"
	repo "farmdesk/pkg/inventory/repository"
	svc "farmdesk/pkg/inventory/service"
	"farmdesk/pkg/validation"
)

type inventorySvc struct{ r repo.InventoryRepository }

func New(r repo.InventoryRepository) svc.InventoryService { return &inventorySvc{r} }

func (s *inventorySvc) List() ([]entities.InventoryItem, error) { return s.r.List() }

func (s *inventorySvc) Create(i *entities.InventoryItem) error {
	i.ID = 0
	if err := validation.Check(i); err != nil {
		return err
	}
	if err := s.r.Create(i); err != nil {
		return fmt.Errorf("create inventory item: %w", err)
	}
	return nil
}

// Update bumps last_updated through gorm's autoUpdateTime on save.
func (s *inventorySvc) Update(id uint, p svc.InventoryPatch) (*entities.InventoryItem, error) {
	cur, err := s.r.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("find inventory item %d: %w", id, err)
	}
	if p.ItemName != nil {
		cur.ItemName = *p.ItemName
	}
	if p.Category != nil {
		cur.Category = *p.Category
	}
	if p.Stock != nil {
		cur.Stock = *p.Stock
	}
	if p.Unit != nil {
		cur.Unit = *p.Unit
	}
	if p.Threshold != nil {
		cur.Threshold = *p.Threshold
	}
	if err := validation.Check(cur); err != nil {
		return nil, err
	}
	if err := s.r.Save(cur); err != nil {
		return nil, fmt.Errorf("save inventory item %d: %w", id, err)
	}
	return cur, nil
}

func (s *inventorySvc) Delete(id uint) error {
	if err := s.r.Delete(id); err != nil {
		return fmt.Errorf("delete inventory item %d: %w", id, err)
	}
	return nil
}
