package repository

import "florisys/entities"

type PlotRepository interface {
	Create(p *entities.Plot) error
	List() ([]entities.Plot, error)
	FindWithChildren(id string) (*entities.Plot, error)
	Delete(id string) (int64, error)
}
