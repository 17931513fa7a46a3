package service

import (
	"farmdesk/entities"
	"farmdesk/pkg/optional"
)

type PlotService interface {
	List() ([]entities.Plot, error)
	Create(p *entities.Plot) error
	Update(id uint, p PlotPatch) (*entities.Plot, error)
	Delete(id uint) error
}

// PlotPatch: null unassigns supervisor_id or field_manager_id.
type PlotPatch struct {
	Name           *string              `json:"name"`
	PlotNumber     *string              `json:"plot_number"`
	Latitude       *float64             `json:"latitude"`
	Longitude      *float64             `json:"longitude"`
	SupervisorID   optional.Value[uint] `json:"supervisor_id"`
	FieldManagerID optional.Value[uint] `json:"field_manager_id"`
}
