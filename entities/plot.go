package entities

import "time"

type Plot struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	Name           string  `json:"name" validate:"required"`
	PlotNumber     string  `json:"plot_number" gorm:"index" validate:"required"`
	Latitude       float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude      float64 `json:"longitude" validate:"gte=-180,lte=180"`
	SupervisorID   *uint   `json:"supervisor_id" gorm:"index"`
	FieldManagerID *uint   `json:"field_manager_id" gorm:"index"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (p Plot) GetID() uint { return p.ID }
