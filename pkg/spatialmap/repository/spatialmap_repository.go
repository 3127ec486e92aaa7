package repository

import "florisys/entities"

type SpatialMapRepository interface {
	// BedExists reports whether the (plot, bed) pair exists.
	BedExists(plotID, bedID string) (bool, error)
	Create(m *entities.SpatialMap) error
	ListByBed(bedID string) ([]entities.SpatialMap, error)
	Find(bedID, mapID string) (*entities.SpatialMap, error)
	Delete(bedID, mapID string) (int64, error)
}
