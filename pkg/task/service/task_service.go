package service

import (
	"farmdesk/entities"
	"farmdesk/pkg/optional"
)

type TaskService interface {
	List() ([]entities.Task, error)
	Create(t *entities.Task) error
	Update(id uint, p TaskPatch) (*entities.Task, error)
	Delete(id uint) error
}

// TaskPatch holds the fields a PUT may change. Nil pointers and unset
// optionals are left as is; an explicit null clears an optional field.
type TaskPatch struct {
	Type             *string                 `json:"type"`
	Description      *string                 `json:"description"`
	Plot             *string                 `json:"plot"`
	SupervisorID     *uint                   `json:"supervisor_id"`
	Status           *entities.TaskStatus    `json:"status"`
	DueDate          optional.Value[string]  `json:"due_date"`
	InventoryItemID  optional.Value[uint]    `json:"inventory_item_id"`
	RequiredQuantity optional.Value[float64] `json:"required_quantity"`
}
