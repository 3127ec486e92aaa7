package repositoryImp

import (
	"gorm.io/gorm"

	"florisys/entities"
	"florisys/pkg/plot/repository"
)

type plotRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlotRepository { return &plotRepo{db} }

func (r *plotRepo) Create(p *entities.Plot) error { return r.db.Create(p).Error }

func (r *plotRepo) List() ([]entities.Plot, error) {
	var plots []entities.Plot
	return plots, r.db.Order("created_at desc").Find(&plots).Error
}

// FindWithChildren loads the plot with its beds and their spatial maps, so a
// delete can enumerate every file the plot transitively owns.
func (r *plotRepo) FindWithChildren(id string) (*entities.Plot, error) {
	var p entities.Plot
	if err := r.db.Preload("Beds.SpatialMaps").Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *plotRepo) Delete(id string) (int64, error) {
	res := r.db.Where("id = ?", id).Delete(&entities.Plot{})
	return res.RowsAffected, res.Error
}
