package repository

import "florisys/entities"

type BedRepository interface {
	PlotExists(plotID string) (bool, error)
	ListByPlot(plotID string) ([]entities.Bed, error)
	Find(plotID, bedID string) (*entities.Bed, error)
	FindWithMaps(plotID, bedID string) (*entities.Bed, error)
	Create(b *entities.Bed) error
	// UpdateFields applies a targeted update to the bed matching (plotID,
	// bedID) and reports how many rows matched.
	UpdateFields(plotID, bedID string, fields map[string]any) (int64, error)
	Delete(plotID, bedID string) (int64, error)
}
