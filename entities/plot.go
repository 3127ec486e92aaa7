package entities

import "time"

// Plot is a surveyed area backed by one orthomosaic raster upload. Name is
// the original filename stem; Filename is the opaque server-assigned name
// the raster is stored under.
type Plot struct {
	ID        string    `gorm:"primaryKey;size:32" json:"id"`
	Name      string    `json:"name"`
	Filename  string    `json:"-"`
	CreatedAt time.Time `gorm:"index:idx_plots_created_at,sort:desc" json:"createdAt"`

	Beds []Bed `gorm:"foreignKey:PlotID;constraint:OnDelete:CASCADE" json:"beds,omitempty"`
}
