package repository

import (
	"github.com/gardenhub/garden-api/internal/domain"
	"github.com/gardenhub/garden-api/internal/store"
)

type EventRepository struct {
	entities[domain.Event]
}

func NewEventRepository(events store.Store[domain.Event]) *EventRepository {
	return &EventRepository{
		entities: entities[domain.Event]{store: events},
	}
}
