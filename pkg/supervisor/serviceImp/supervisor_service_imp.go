package serviceImp

import (
	"fmt"
	"strings"

	"farmdesk/entities"
	repo "farmdesk/pkg/supervisor/repository"
	svc "farmdesk/pkg/supervisor/service"
	"farmdesk/pkg/validation"
)

type supervisorSvc struct{ r repo.SupervisorRepository }

func New(r repo.SupervisorRepository) svc.SupervisorService { return &supervisorSvc{r} }

func (s *supervisorSvc) List() ([]entities.Supervisor, error) { return s.r.List() }

func (s *supervisorSvc) Create(v *entities.Supervisor) error {
	v.ID = 0
	v.Email = strings.TrimSpace(v.Email)
	v.Plots = cleanPlots(v.Plots)
	if err := validation.Check(v); err != nil {
		return err
	}
	if err := s.r.Create(v); err != nil {
		return fmt.Errorf("create supervisor: %w", err)
	}
	return nil
}

func (s *supervisorSvc) Update(id uint, p svc.SupervisorPatch) (*entities.Supervisor, error) {
	cur, err := s.r.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("find supervisor %d: %w", id, err)
	}
	if p.Name != nil {
		cur.Name = *p.Name
	}
	if p.Email != nil {
		cur.Email = strings.TrimSpace(*p.Email)
	}
	if p.Phone != nil {
		cur.Phone = *p.Phone
	}
	if p.Plots != nil {
		cur.Plots = cleanPlots(*p.Plots)
	}
	p.FieldManagerID.Apply(&cur.FieldManagerID)
	p.PhotoURL.ApplyZero(&cur.PhotoURL)
	if err := validation.Check(cur); err != nil {
		return nil, err
	}
	if err := s.r.Save(cur); err != nil {
		return nil, fmt.Errorf("save supervisor %d: %w", id, err)
	}
	return cur, nil
}

func (s *supervisorSvc) Delete(id uint) error {
	if err := s.r.Delete(id); err != nil {
		return fmt.Errorf("delete supervisor %d: %w", id, err)
	}
	return nil
}

// cleanPlots trims labels and drops blanks; labels are free text and are
// not checked against stored plots.
func cleanPlots(in []string) []string {
	out := make([]string, 0, len(in))
	for _, p := range in {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
