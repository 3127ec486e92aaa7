package service

import (
	"io"

	"florisys/entities"
)

type SpatialMapService interface {
	// Add ingests a point-cloud upload under the (plot, bed) pair. dateISO
	// is the declared capture date; empty or unparsable falls back to now.
	Add(plotID, bedID string, src io.Reader, filename, contentType, dateISO string) (*entities.SpatialMap, error)
	List(plotID, bedID string) ([]entities.SpatialMap, error)
	Delete(plotID, bedID, mapID string) error
}
