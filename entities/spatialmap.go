package entities

import "time"

// SpatialMap is one point-cloud capture under a Bed. Filename is the opaque
// stored name; FileName keeps the client's original name for display. Date
// is the capture date, defaulting to the upload instant.
type SpatialMap struct {
	ID          string    `gorm:"primaryKey;size:32" json:"id"`
	BedID       string    `gorm:"size:32;index" json:"-"`
	Filename    string    `json:"-"`
	FileName    string    `json:"fileName"`
	Bytes       int64     `json:"bytes"`
	ContentType string    `json:"contentType"`
	Date        time.Time `gorm:"index:idx_spatial_maps_date,sort:desc" json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}
