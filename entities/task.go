package entities

import "time"

// Task is a unit of field work. Plot holds the plot number, not Plot.ID.
type Task struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Type             string     `json:"type" validate:"required"`
	Description      string     `json:"description" validate:"required"`
	Plot             string     `json:"plot" gorm:"index" validate:"required"`
	SupervisorID     uint       `json:"supervisor_id" gorm:"index"`
	Status           TaskStatus `json:"status" gorm:"index" validate:"required,task_status"`
	DueDate          *string    `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	InventoryItemID  *uint      `json:"inventory_item_id"`
	RequiredQuantity *float64   `json:"required_quantity" validate:"omitempty,gte=0"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (t Task) GetID() uint { return t.ID }
