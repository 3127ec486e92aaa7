package serviceImp

import (
	"errors"
	"fmt"
	"io"
	"time"

	"gorm.io/gorm"

	"florisys/entities"
	"florisys/pkg/apperr"
	"florisys/pkg/files"
	"florisys/pkg/spatialmap/repository"
	"florisys/pkg/spatialmap/service"
	"florisys/pkg/upload"
)

type mapSvc struct {
	repo  repository.SpatialMapRepository
	pipe  *upload.Pipeline
	store *files.Store
}

func NewSpatialMapService(repo repository.SpatialMapRepository, pipe *upload.Pipeline, store *files.Store) service.SpatialMapService {
	return &mapSvc{repo: repo, pipe: pipe, store: store}
}

func (s *mapSvc) Add(plotID, bedID string, src io.Reader, filename, contentType, dateISO string) (*entities.SpatialMap, error) {
	exists, err := s.repo.BedExists(plotID, bedID)
	if err != nil {
		return nil, fmt.Errorf("check bed: %w", err)
	}
	if !exists {
		return nil, apperr.NotFound("plot/bed")
	}

	sf, err := s.pipe.Ingest(src, filename, contentType)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	m := &entities.SpatialMap{
		ID:          sf.ID,
		BedID:       bedID,
		Filename:    sf.StoredName,
		FileName:    sf.OriginalName,
		Bytes:       sf.Bytes,
		ContentType: sf.ContentType,
		Date:        parseDate(dateISO, now),
		CreatedAt:   now,
	}
	if err := s.repo.Create(m); err != nil {
		// the bed may have been deleted while the file was streaming in
		s.store.Cleanup(sf.StoredName)
		if exists, eerr := s.repo.BedExists(plotID, bedID); eerr == nil && !exists {
			return nil, apperr.NotFound("plot/bed")
		}
		return nil, fmt.Errorf("insert spatial map: %w", err)
	}
	return m, nil
}

func (s *mapSvc) List(plotID, bedID string) ([]entities.SpatialMap, error) {
	exists, err := s.repo.BedExists(plotID, bedID)
	if err != nil {
		return nil, fmt.Errorf("check bed: %w", err)
	}
	if !exists {
		return nil, apperr.NotFound("plot/bed")
	}
	maps, err := s.repo.ListByBed(bedID)
	if err != nil {
		return nil, fmt.Errorf("list spatial maps: %w", err)
	}
	if maps == nil {
		maps = []entities.SpatialMap{}
	}
	return maps, nil
}

// Delete pulls the row first and removes the file only once the database
// confirms the removal; an orphaned file beats a dangling record.
func (s *mapSvc) Delete(plotID, bedID, mapID string) error {
	exists, err := s.repo.BedExists(plotID, bedID)
	if err != nil {
		return fmt.Errorf("check bed: %w", err)
	}
	if !exists {
		return apperr.NotFound("plot/bed")
	}
	m, err := s.repo.Find(bedID, mapID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("spatial map")
		}
		return fmt.Errorf("find spatial map: %w", err)
	}
	rows, err := s.repo.Delete(bedID, mapID)
	if err != nil {
		return fmt.Errorf("delete spatial map: %w", err)
	}
	if rows == 0 {
		return apperr.NotFound("plot/bed")
	}
	s.store.Cleanup(m.Filename)
	return nil
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func parseDate(iso string, fallback time.Time) time.Time {
	if iso == "" {
		return fallback
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t
		}
	}
	// silent fallback, matching the declared-date contract
	return fallback
}
