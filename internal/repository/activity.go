package repository

import (
	"context"
	"fmt"

	"github.com/gardenhub/garden-api/internal/domain"
	"github.com/gardenhub/garden-api/internal/store"
)

type ActivityRepository struct {
	entities[domain.Activity]
}

func NewActivityRepository(activities store.Store[domain.Activity]) *ActivityRepository {
	return &ActivityRepository{
		entities: entities[domain.Activity]{store: activities},
	}
}

// AnyForPlot reports whether at least one activity still references the
// plot. Used to forbid deleting a plot with children.
func (r *ActivityRepository) AnyForPlot(ctx context.Context, plotID string) (bool, error) {
	activities, err := r.store.Values(ctx)
	if err != nil {
		return false, fmt.Errorf("r.store.Values -> %w", err)
	}

	for _, activity := range activities {
		if activity.PlotID == plotID {
			return true, nil
		}
	}

	return false, nil
}
