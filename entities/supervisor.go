package entities

import "time"

type Supervisor struct {
	ID             uint     `gorm:"primaryKey" json:"id"`
	Name           string   `json:"name" validate:"required"`
	Email          string   `json:"email" validate:"required,email"`
	Phone          string   `json:"phone" validate:"required"`
	Plots          []string `json:"plots" gorm:"serializer:json"`
	FieldManagerID *uint    `json:"field_manager_id" gorm:"index"`
	PhotoURL       string   `json:"photo_url"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (s Supervisor) GetID() uint { return s.ID }
