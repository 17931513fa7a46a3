package repositoryImp

import (
	"gorm.io/gorm"

	"farmdesk/entities"
	"farmdesk/pkg/supervisor/repository"
)

type supervisorRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SupervisorRepository { return &supervisorRepo{db} }

func (r *supervisorRepo) List() ([]entities.Supervisor, error) {
	var out []entities.Supervisor
	if err := r.db.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	if out == nil {
		out = []entities.Supervisor{}
	}
	return out, nil
}

func (r *supervisorRepo) FindByID(id uint) (*entities.Supervisor, error) {
	var v entities.Supervisor
	if err := r.db.First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *supervisorRepo) Create(v *entities.Supervisor) error { return r.db.Create(v).Error }

func (r *supervisorRepo) Save(v *entities.Supervisor) error { return r.db.Save(v).Error }

func (r *supervisorRepo) Delete(id uint) error {
	res := r.db.Delete(&entities.Supervisor{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
