package service

import (
	"florisys/entities"
	"florisys/pkg/geometry"
)

type BedService interface {
	List(plotID string) ([]entities.Bed, error)
	Get(plotID, bedID string) (*entities.Bed, error)
	Create(plotID, name string, rings geometry.Polygon) (*entities.Bed, error)
	// Update touches only the supplied fields; nil means "leave unchanged".
	Update(plotID, bedID string, name *string, rings *geometry.Polygon) (*entities.Bed, error)
	Delete(plotID, bedID string) error
}
