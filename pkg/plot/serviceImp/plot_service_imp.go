package serviceImp

import (
	"fmt"
	"strings"

	"farmdesk/entities"
	repo "farmdesk/pkg/plot/repository"
	svc "farmdesk/pkg/plot/service"
	"farmdesk/pkg/validation"
)

type plotSvc struct{ r repo.PlotRepository }

func New(r repo.PlotRepository) svc.PlotService { return &plotSvc{r} }

func (s *plotSvc) List() ([]entities.Plot, error) { return s.r.List() }

// Create does not enforce plot_number uniqueness; numbers repeat across farms.
func (s *plotSvc) Create(p *entities.Plot) error {
	p.ID = 0
	p.PlotNumber = strings.TrimSpace(p.PlotNumber)
	if err := validation.Check(p); err != nil {
		return err
	}
	if err := s.r.Create(p); err != nil {
		return fmt.Errorf("create plot: %w", err)
	}
	return nil
}

func (s *plotSvc) Update(id uint, p svc.PlotPatch) (*entities.Plot, error) {
	cur, err := s.r.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("find plot %d: %w", id, err)
	}
	if p.Name != nil {
		cur.Name = *p.Name
	}
	if p.PlotNumber != nil {
		cur.PlotNumber = strings.TrimSpace(*p.PlotNumber)
	}
	if p.Latitude != nil {
		cur.Latitude = *p.Latitude
	}
	if p.Longitude != nil {
		cur.Longitude = *p.Longitude
	}
	p.SupervisorID.Apply(&cur.SupervisorID)
	p.FieldManagerID.Apply(&cur.FieldManagerID)
	if err := validation.Check(cur); err != nil {
		return nil, err
	}
	if err := s.r.Save(cur); err != nil {
		return nil, fmt.Errorf("save plot %d: %w", id, err)
	}
	return cur, nil
}

func (s *plotSvc) Delete(id uint) error {
	if err := s.r.Delete(id); err != nil {
		return fmt.Errorf("delete plot %d: %w", id, err)
	}
	return nil
}
