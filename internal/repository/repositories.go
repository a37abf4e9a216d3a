package repository

import (
	"gorm.io/gorm"

	"github.com/gardenhub/garden-api/internal/domain"
	"github.com/gardenhub/garden-api/internal/store"
)

// Repositories bundles the five entity repositories over one storage
// backend.
type Repositories struct {
	Users      *UserRepository
	Plots      *PlotRepository
	Activities *ActivityRepository
	Resources  *ResourceRepository
	Events     *EventRepository
}

// NewMemory builds repositories over in-memory ordered maps. Used when
// no database is configured, and by tests.
func NewMemory() *Repositories {
	return &Repositories{
		Users:      NewUserRepository(store.NewMemory[domain.User](), store.NewMemoryEmailSet()),
		Plots:      NewPlotRepository(store.NewMemory[domain.Plot]()),
		Activities: NewActivityRepository(store.NewMemory[domain.Activity]()),
		Resources:  NewResourceRepository(store.NewMemory[domain.Resource]()),
		Events:     NewEventRepository(store.NewMemory[domain.Event]()),
	}
}

// NewGorm builds repositories over a postgres database.
func NewGorm(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:      NewUserRepository(store.NewGorm[domain.User](db), store.NewGormEmailSet(db)),
		Plots:      NewPlotRepository(store.NewGorm[domain.Plot](db)),
		Activities: NewActivityRepository(store.NewGorm[domain.Activity](db)),
		Resources:  NewResourceRepository(store.NewGorm[domain.Resource](db)),
		Events:     NewEventRepository(store.NewGorm[domain.Event](db)),
	}
}
