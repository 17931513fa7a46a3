package repositoryImp

import (
	"gorm.io/gorm"

	"farmdesk/entities"
	"farmdesk/pkg/inventory/repository"
)

type inventoryRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.InventoryRepository { return &inventoryRepo{db} }

func (r *inventoryRepo) List() ([]entities.InventoryItem, error) {
	var out []entities.InventoryItem
	if err := r.db.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	if out == nil {
		out = []entities.InventoryItem{}
	}
	return out, nil
}

func (r *inventoryRepo) FindByID(id uint) (*entities.InventoryItem, error) {
	var v entities.InventoryItem
	if err := r.db.First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *inventoryRepo) Create(v *entities.InventoryItem) error { return r.db.Create(v).Error }

func (r *inventoryRepo) Save(v *entities.InventoryItem) error { return r.db.Save(v).Error }

func (r *inventoryRepo) Delete(id uint) error {
	res := r.db.Delete(&entities.InventoryItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
