package repository

import (
	"github.com/gardenhub/garden-api/internal/domain"
	"github.com/gardenhub/garden-api/internal/store"
)

type PlotRepository struct {
	entities[domain.Plot]
}

func NewPlotRepository(plots store.Store[domain.Plot]) *PlotRepository {
	return &PlotRepository{
		entities: entities[domain.Plot]{store: plots},
	}
}
