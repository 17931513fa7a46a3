package serviceImp

import (
	"fmt"

	"farmdesk/entities"
	repo "farmdesk/pkg/task/repository"
	svc "farmdesk/pkg/task/service"
	"farmdesk/pkg/validation"
)

type taskSvc struct{ r repo.TaskRepository }

func New(r repo.TaskRepository) svc.TaskService { return &taskSvc{r} }

func (s *taskSvc) List() ([]entities.Task, error) { return s.r.List() }

func (s *taskSvc) Create(t *entities.Task) error {
	t.ID = 0
	if t.Status == "" {
		t.Status = entities.StatusPending
	}
	if err := validation.Check(t); err != nil {
		return err
	}
	if err := s.r.Create(t); err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (s *taskSvc) Update(id uint, p svc.TaskPatch) (*entities.Task, error) {
	cur, err := s.r.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("find task %d: %w", id, err)
	}
	if p.Type != nil {
		cur.Type = *p.Type
	}
	if p.Description != nil {
		cur.Description = *p.Description
	}
	if p.Plot != nil {
		cur.Plot = *p.Plot
	}
	if p.SupervisorID != nil {
		cur.SupervisorID = *p.SupervisorID
	}
	if p.Status != nil {
		cur.Status = *p.Status
	}
	p.DueDate.Apply(&cur.DueDate)
	p.InventoryItemID.Apply(&cur.InventoryItemID)
	p.RequiredQuantity.Apply(&cur.RequiredQuantity)
	if err := validation.Check(cur); err != nil {
		return nil, err
	}
	if err := s.r.Save(cur); err != nil {
		return nil, fmt.Errorf("save task %d: %w", id, err)
	}
	return cur, nil
}

func (s *taskSvc) Delete(id uint) error {
	if err := s.r.Delete(id); err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return nil
}
