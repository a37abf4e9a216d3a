package repository

import (
	"context"
	"fmt"

	"github.com/gardenhub/garden-api/internal/store"
)

// entities is the shared repository core over one entity store. The
// five entity repositories embed it and add entity-specific lookups.
type entities[T any] struct {
	store store.Store[T]
}

func (r *entities[T]) Save(ctx context.Context, key string, value T) error {
	if err := r.store.Insert(ctx, key, value); err != nil {
		return fmt.Errorf("r.store.Insert -> %w", err)
	}

	return nil
}

func (r *entities[T]) FindByID(ctx context.Context, id string) (T, bool, error) {
	value, found, err := r.store.Get(ctx, id)
	if err != nil {
		var zero T
		return zero, false, fmt.Errorf("r.store.Get -> %w", err)
	}

	return value, found, nil
}

func (r *entities[T]) FindAll(ctx context.Context) ([]T, error) {
	values, err := r.store.Values(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.store.Values -> %w", err)
	}

	return values, nil
}

func (r *entities[T]) Delete(ctx context.Context, id string) error {
	if err := r.store.Remove(ctx, id); err != nil {
		return fmt.Errorf("r.store.Remove -> %w", err)
	}

	return nil
}
