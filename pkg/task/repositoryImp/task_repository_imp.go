package repositoryImp

import (
	"gorm.io/gorm"

	"farmdesk/entities"
	"farmdesk/pkg/task/repository"
)

type taskRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TaskRepository { return &taskRepo{db} }

func (r *taskRepo) List() ([]entities.Task, error) {
	var out []entities.Task
	if err := r.db.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	if out == nil {
		out = []entities.Task{}
	}
	return out, nil
}

func (r *taskRepo) FindByID(id uint) (*entities.Task, error) {
	var t entities.Task
	if err := r.db.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *taskRepo) Create(t *entities.Task) error { return r.db.Create(t).Error }

func (r *taskRepo) Save(t *entities.Task) error { return r.db.Save(t).Error }

func (r *taskRepo) Delete(id uint) error {
	res := r.db.Delete(&entities.Task{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
