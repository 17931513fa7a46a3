package repositoryImp

import (
	"gorm.io/gorm"

	"farmdesk/entities"
	"farmdesk/pkg/plot/repository"
)

type plotRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlotRepository { return &plotRepo{db} }

func (r *plotRepo) List() ([]entities.Plot, error) {
	var out []entities.Plot
	if err := r.db.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	if out == nil {
		out = []entities.Plot{}
	}
	return out, nil
}

func (r *plotRepo) FindByID(id uint) (*entities.Plot, error) {
	var v entities.Plot
	if err := r.db.First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *plotRepo) Create(v *entities.Plot) error { return r.db.Create(v).Error }

func (r *plotRepo) Save(v *entities.Plot) error { return r.db.Save(v).Error }

func (r *plotRepo) Delete(id uint) error {
	res := r.db.Delete(&entities.Plot{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
