package service

import (
	"farmdesk/entities"
	"farmdesk/pkg/optional"
)

type SupervisorService interface {
	List() ([]entities.Supervisor, error)
	Create(s *entities.Supervisor) error
	Update(id uint, p SupervisorPatch) (*entities.Supervisor, error)
	Delete(id uint) error
}

// SupervisorPatch: null clears field_manager_id; null or "" clears photo_url.
type SupervisorPatch struct {
	Name           *string                `json:"name"`
	Email          *string                `json:"email"`
	Phone          *string                `json:"phone"`
	Plots          *[]string              `json:"plots"`
	FieldManagerID optional.Value[uint]   `json:"field_manager_id"`
	PhotoURL       optional.Value[string] `json:"photo_url"`
}
