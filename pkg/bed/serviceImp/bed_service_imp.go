package serviceImp

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"florisys/entities"
	"florisys/pkg/apperr"
	"florisys/pkg/bed/repository"
	"florisys/pkg/bed/service"
	"florisys/pkg/files"
	"florisys/pkg/geometry"
)

type bedSvc struct {
	repo  repository.BedRepository
	store *files.Store
}

func NewBedService(repo repository.BedRepository, store *files.Store) service.BedService {
	return &bedSvc{repo: repo, store: store}
}

// List returns an empty slice when the plot is missing or has no beds; a
// missing plot is not an error on this path.
func (s *bedSvc) List(plotID string) ([]entities.Bed, error) {
	beds, err := s.repo.ListByPlot(plotID)
	if err != nil {
		return nil, fmt.Errorf("list beds: %w", err)
	}
	if beds == nil {
		beds = []entities.Bed{}
	}
	return beds, nil
}

func (s *bedSvc) Get(plotID, bedID string) (*entities.Bed, error) {
	exists, err := s.repo.PlotExists(plotID)
	if err != nil {
		return nil, fmt.Errorf("check plot: %w", err)
	}
	if !exists {
		return nil, apperr.NotFound("plot")
	}
	b, err := s.repo.Find(plotID, bedID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("bed")
		}
		return nil, fmt.Errorf("find bed: %w", err)
	}
	return b, nil
}

func (s *bedSvc) Create(plotID, name string, rings geometry.Polygon) (*entities.Bed, error) {
	validated, err := geometry.ValidateAndClose(rings)
	if err != nil {
		return nil, err
	}
	exists, err := s.repo.PlotExists(plotID)
	if err != nil {
		return nil, fmt.Errorf("check plot: %w", err)
	}
	if !exists {
		return nil, apperr.NotFound("plot")
	}
	now := time.Now().UTC()
	b := &entities.Bed{
		ID:          entities.NewID(),
		PlotID:      plotID,
		Name:        name,
		Coordinates: datatypes.JSONSlice[geometry.Ring](validated),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(b); err != nil {
		// the plot may have been deleted between the check and the insert
		if exists, eerr := s.repo.PlotExists(plotID); eerr == nil && !exists {
			return nil, apperr.NotFound("plot")
		}
		return nil, fmt.Errorf("insert bed: %w", err)
	}
	return b, nil
}

func (s *bedSvc) Update(plotID, bedID string, name *string, rings *geometry.Polygon) (*entities.Bed, error) {
	fields := map[string]any{"updated_at": time.Now().UTC()}
	if rings != nil {
		validated, err := geometry.ValidateAndClose(*rings)
		if err != nil {
			return nil, err
		}
		fields["coordinates"] = datatypes.JSONSlice[geometry.Ring](validated)
	}
	if name != nil {
		fields["name"] = *name
	}
	rows, err := s.repo.UpdateFields(plotID, bedID, fields)
	if err != nil {
		return nil, fmt.Errorf("update bed: %w", err)
	}
	if rows == 0 {
		if exists, eerr := s.repo.PlotExists(plotID); eerr == nil && !exists {
			return nil, apperr.NotFound("plot")
		}
		return nil, apperr.NotFound("bed")
	}
	// re-read so the caller sees the state after the write
	b, err := s.repo.Find(plotID, bedID)
	if err != nil {
		return nil, fmt.Errorf("reload bed: %w", err)
	}
	return b, nil
}

// Delete removes the bed's spatial-map files before pulling the row, trading
// a rare misleading not-found on a lost race for never orphaning files.
func (s *bedSvc) Delete(plotID, bedID string) error {
	exists, err := s.repo.PlotExists(plotID)
	if err != nil {
		return fmt.Errorf("check plot: %w", err)
	}
	if !exists {
		return apperr.NotFound("plot")
	}
	b, err := s.repo.FindWithMaps(plotID, bedID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("bed")
		}
		return fmt.Errorf("find bed: %w", err)
	}
	for _, m := range b.SpatialMaps {
		s.store.Cleanup(m.Filename)
	}
	rows, err := s.repo.Delete(plotID, bedID)
	if err != nil {
		return fmt.Errorf("delete bed: %w", err)
	}
	if rows == 0 {
		return apperr.NotFound("plot")
	}
	return nil
}
