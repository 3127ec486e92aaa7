// Package export renders a plot's bed and spatial-map inventory as an xlsx
// workbook for offline review.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"florisys/entities"
)

const (
	bedsSheet = "Beds"
	mapsSheet = "Spatial Maps"
)

// BuildWorkbook lays out one sheet of beds and one of spatial maps. The plot
// must be loaded with its children.
func BuildWorkbook(p *entities.Plot) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", bedsSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(mapsSheet); err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(bedsSheet, "A1", &[]any{"Bed ID", "Name", "Outer ring vertices", "Created", "Updated"}); err != nil {
		return nil, err
	}
	row := 2
	for _, b := range p.Beds {
		vertices := 0
		if len(b.Coordinates) > 0 {
			vertices = len(b.Coordinates[0])
		}
		cell := fmt.Sprintf("A%d", row)
		if err := f.SetSheetRow(bedsSheet, cell, &[]any{b.ID, b.Name, vertices, b.CreatedAt, b.UpdatedAt}); err != nil {
			return nil, err
		}
		row++
	}

	if err := f.SetSheetRow(mapsSheet, "A1", &[]any{"Bed", "Map ID", "File", "Bytes", "Content type", "Capture date"}); err != nil {
		return nil, err
	}
	row = 2
	for _, b := range p.Beds {
		for _, m := range b.SpatialMaps {
			cell := fmt.Sprintf("A%d", row)
			if err := f.SetSheetRow(mapsSheet, cell, &[]any{b.Name, m.ID, m.FileName, m.Bytes, m.ContentType, m.Date}); err != nil {
				return nil, err
			}
			row++
		}
	}
	return f, nil
}
