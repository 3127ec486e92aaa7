package entities

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// NewID mints the opaque 32-char hex identifier used for all records.
func NewID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}
