package repository

import (
	"github.com/gardenhub/garden-api/internal/domain"
	"github.com/gardenhub/garden-api/internal/store"
)

type ResourceRepository struct {
	entities[domain.Resource]
}

func NewResourceRepository(resources store.Store[domain.Resource]) *ResourceRepository {
	return &ResourceRepository{
		entities: entities[domain.Resource]{store: resources},
	}
}
