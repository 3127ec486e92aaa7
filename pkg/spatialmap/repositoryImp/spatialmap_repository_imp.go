package repositoryImp

import (
	"gorm.io/gorm"

	"florisys/entities"
	"florisys/pkg/spatialmap/repository"
)

type mapRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SpatialMapRepository { return &mapRepo{db} }

func (r *mapRepo) BedExists(plotID, bedID string) (bool, error) {
	var n int64
	err := r.db.Model(&entities.Bed{}).Where("id = ? AND plot_id = ?", bedID, plotID).Count(&n).Error
	return n > 0, err
}

func (r *mapRepo) Create(m *entities.SpatialMap) error { return r.db.Create(m).Error }

// ListByBed orders newest capture first, breaking ties on creation time.
// The sort is applied on every read rather than trusted from insert order,
// since concurrent uploads can interleave.
func (r *mapRepo) ListByBed(bedID string) ([]entities.SpatialMap, error) {
	var maps []entities.SpatialMap
	return maps, r.db.Where("bed_id = ?", bedID).Order("date desc, created_at desc").Find(&maps).Error
}

func (r *mapRepo) Find(bedID, mapID string) (*entities.SpatialMap, error) {
	var m entities.SpatialMap
	if err := r.db.Where("id = ? AND bed_id = ?", mapID, bedID).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *mapRepo) Delete(bedID, mapID string) (int64, error) {
	res := r.db.Where("id = ? AND bed_id = ?", mapID, bedID).Delete(&entities.SpatialMap{})
	return res.RowsAffected, res.Error
}
