package service

import (
	"io"

	"florisys/entities"
)

type PlotService interface {
	List() ([]entities.Plot, error)
	Create(src io.Reader, filename, contentType string) (*entities.Plot, error)
	Delete(id string) error
}
