package serviceImp

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/gorm"

	"florisys/entities"
	"florisys/pkg/apperr"
	"florisys/pkg/files"
	"florisys/pkg/plot/repository"
	"florisys/pkg/plot/service"
	"florisys/pkg/upload"
)

type plotSvc struct {
	repo  repository.PlotRepository
	pipe  *upload.Pipeline
	store *files.Store
}

func NewPlotService(repo repository.PlotRepository, pipe *upload.Pipeline, store *files.Store) service.PlotService {
	return &plotSvc{repo: repo, pipe: pipe, store: store}
}

func (s *plotSvc) List() ([]entities.Plot, error) { return s.repo.List() }

func (s *plotSvc) Create(src io.Reader, filename, contentType string) (*entities.Plot, error) {
	sf, err := s.pipe.Ingest(src, filename, contentType)
	if err != nil {
		return nil, err
	}
	p := &entities.Plot{
		ID:        sf.ID,
		Name:      stem(sf.OriginalName),
		Filename:  sf.StoredName,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(p); err != nil {
		// insert failed after the raster was written; drop the orphan
		s.store.Cleanup(sf.StoredName)
		return nil, fmt.Errorf("insert plot: %w", err)
	}
	return p, nil
}

// Delete removes the plot row (beds and spatial maps cascade with it), then
// cleans up the raster and every spatial-map file the plot owned.
func (s *plotSvc) Delete(id string) error {
	p, err := s.repo.FindWithChildren(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("plot")
		}
		return fmt.Errorf("load plot: %w", err)
	}
	rows, err := s.repo.Delete(id)
	if err != nil {
		return fmt.Errorf("delete plot: %w", err)
	}
	if rows == 0 {
		return apperr.NotFound("plot")
	}
	s.store.Cleanup(p.Filename)
	for _, b := range p.Beds {
		for _, m := range b.SpatialMaps {
			s.store.Cleanup(m.Filename)
		}
	}
	return nil
}

func stem(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
