package repositoryImp

import (
	"gorm.io/gorm"

	"florisys/entities"
	"florisys/pkg/bed/repository"
)

type bedRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.BedRepository { return &bedRepo{db} }

func (r *bedRepo) PlotExists(plotID string) (bool, error) {
	var n int64
	err := r.db.Model(&entities.Plot{}).Where("id = ?", plotID).Count(&n).Error
	return n > 0, err
}

func (r *bedRepo) ListByPlot(plotID string) ([]entities.Bed, error) {
	var beds []entities.Bed
	return beds, r.db.Where("plot_id = ?", plotID).Order("created_at asc").Find(&beds).Error
}

func (r *bedRepo) Find(plotID, bedID string) (*entities.Bed, error) {
	var b entities.Bed
	if err := r.db.Where("id = ? AND plot_id = ?", bedID, plotID).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bedRepo) FindWithMaps(plotID, bedID string) (*entities.Bed, error) {
	var b entities.Bed
	if err := r.db.Preload("SpatialMaps").Where("id = ? AND plot_id = ?", bedID, plotID).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bedRepo) Create(b *entities.Bed) error { return r.db.Create(b).Error }

func (r *bedRepo) UpdateFields(plotID, bedID string, fields map[string]any) (int64, error) {
	res := r.db.Model(&entities.Bed{}).Where("id = ? AND plot_id = ?", bedID, plotID).Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *bedRepo) Delete(plotID, bedID string) (int64, error) {
	res := r.db.Where("id = ? AND plot_id = ?", bedID, plotID).Delete(&entities.Bed{})
	return res.RowsAffected, res.Error
}
