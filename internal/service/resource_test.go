package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gardenhub/garden-api/internal/domain"
	"github.com/gardenhub/garden-api/internal/repository"
)

func TestResourceService_CRUD(t *testing.T) {
	ctx := context.Background()
	svc := NewResourceService(repository.NewMemory().Resources)

	created, err := svc.CreateResource(ctx, domain.Resource{
		Name:      "wheelbarrow",
		Quantity:  2,
		Available: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := svc.GetResource(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "wheelbarrow", got.Name)

	updated, err := svc.UpdateResource(ctx, created.ID, domain.Resource{
		Name:      "wheelbarrow",
		Quantity:  1,
		Available: false,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), updated.Quantity)
	assert.False(t, updated.Available)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	all, err := svc.ListResources(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, svc.DeleteResource(ctx, created.ID))

	_, err = svc.GetResource(ctx, created.ID)
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestResourceService_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewResourceService(repository.NewMemory().Resources)

	_, err := svc.GetResource(ctx, "missing-id")
	assert.ErrorIs(t, err, ErrResourceNotFound)

	_, err = svc.UpdateResource(ctx, "missing-id", domain.Resource{Name: "x"})
	assert.ErrorIs(t, err, ErrResourceNotFound)

	err = svc.DeleteResource(ctx, "missing-id")
	assert.ErrorIs(t, err, ErrResourceNotFound)
}
