package entities

import "time"

type InventoryItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ItemName    string    `json:"item_name" validate:"required"`
	Category    string    `json:"category" validate:"required"`
	Stock       float64   `json:"stock" validate:"gte=0"`
	Unit        string    `json:"unit" validate:"required"`
	Threshold   float64   `json:"threshold" validate:"gte=0"`
	LastUpdated time.Time `json:"last_updated" gorm:"autoUpdateTime"`

	CreatedAt time.Time `json:"-"`
}

func (i InventoryItem) GetID() uint { return i.ID }

// LowStock is derived on read; it is never persisted.
func (i InventoryItem) LowStock() bool { return i.Stock <= i.Threshold }
