package entities

import (
	"time"

	"gorm.io/datatypes"

	"florisys/pkg/geometry"
)

// Bed is a user-drawn polygonal sub-region of a Plot. Coordinates holds the
// polygon rings as a JSON column, outer ring first, closed on write.
type Bed struct {
	ID          string                             `gorm:"primaryKey;size:32" json:"id"`
	PlotID      string                             `gorm:"size:32;index" json:"-"`
	Name        string                             `json:"name"`
	Coordinates datatypes.JSONSlice[geometry.Ring] `json:"coordinates"`
	CreatedAt   time.Time                          `json:"createdAt"`
	UpdatedAt   time.Time                          `json:"updatedAt"`

	SpatialMaps []SpatialMap `gorm:"foreignKey:BedID;constraint:OnDelete:CASCADE" json:"spatialMaps,omitempty"`
}
