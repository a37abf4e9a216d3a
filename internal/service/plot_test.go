package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gardenhub/garden-api/internal/domain"
	"github.com/gardenhub/garden-api/internal/repository"
)

func newPlotService(repos *repository.Repositories) *PlotService {
	return NewPlotService(repos.Plots, repos.Users, repos.Activities)
}

func createPlot(t *testing.T, repos *repository.Repositories, owner domain.User) domain.Plot {
	t.Helper()

	plot, err := newPlotService(repos).CreatePlot(context.Background(), owner.ID, domain.Plot{
		UserID:        owner.ID,
		Size:          "10x10",
		Location:      "north corner",
		ReservedUntil: time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	return plot
}

func TestPlotService_CreatePlot(t *testing.T) {
	repos := repository.NewMemory()
	alice := signupUser(t, repos, "Alice", "alice@example.com")

	plot := createPlot(t, repos, alice)

	assert.NotEmpty(t, plot.ID)
	assert.Equal(t, alice.ID, plot.UserID)
	assert.False(t, plot.CreatedAt.IsZero())
}

func TestPlotService_CreatePlot_UnknownUser(t *testing.T) {
	ctx := context.Background()
	repos := repository.NewMemory()
	alice := signupUser(t, repos, "Alice", "alice@example.com")

	_, err := newPlotService(repos).CreatePlot(ctx, alice.ID, domain.Plot{
		UserID:   "missing-user",
		Size:     "10x10",
		Location: "north corner",
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestPlotService_CreatePlot_ForAnotherUser(t *testing.T) {
	ctx := context.Background()
	repos := repository.NewMemory()
	alice := signupUser(t, repos, "Alice", "alice@example.com")
	bob := signupUser(t, repos, "Bob", "bob@example.com")

	_, err := newPlotService(repos).CreatePlot(ctx, bob.ID, domain.Plot{
		UserID:   alice.ID,
		Size:     "10x10",
		Location: "north corner",
	})
	assert.ErrorIs(t, err, ErrNotPlotOwner)
}

func TestPlotService_GetPlot(t *testing.T) {
	ctx := context.Background()
	repos := repository.NewMemory()
	alice := signupUser(t, repos, "Alice", "alice@example.com")
	plot := createPlot(t, repos, alice)

	svc := newPlotService(repos)

	got, err := svc.GetPlot(ctx, plot.ID)
	require.NoError(t, err)
	assert.Equal(t, plot.Location, got.Location)

	_, err = svc.GetPlot(ctx, "missing-id")
	assert.ErrorIs(t, err, ErrPlotNotFound)
}

func TestPlotService_UpdatePlot(t *testing.T) {
	ctx := context.Background()
	repos := repository.NewMemory()
	alice := signupUser(t, repos, "Alice", "alice@example.com")
	plot := createPlot(t, repos, alice)

	svc := newPlotService(repos)

	updated, err := svc.UpdatePlot(ctx, alice.ID, plot.ID, domain.Plot{
		Size:          "5x5",
		Location:      "east row",
		ReservedUntil: time.Date(2027, 6, 30, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "5x5", updated.Size)
	assert.Equal(t, "east row", updated.Location)
	assert.Equal(t, plot.ID, updated.ID)
	assert.Equal(t, plot.UserID, updated.UserID)
}

func TestPlotService_UpdatePlot_NotOwner(t *testing.T) {
	ctx := context.Background()
	repos := repository.NewMemory()
	alice := signupUser(t, repos, "Alice", "alice@example.com")
	bob := signupUser(t, repos, "Bob", "bob@example.com")
	plot := createPlot(t, repos, alice)

	_, err := newPlotService(repos).UpdatePlot(ctx, bob.ID, plot.ID, domain.Plot{
		Size:     "5x5",
		Location: "east row",
	})
	assert.ErrorIs(t, err, ErrNotPlotOwner)
}

func TestPlotService_DeletePlot(t *testing.T) {
	ctx := context.Background()
	repos := repository.NewMemory()
	alice := signupUser(t, repos, "Alice", "alice@example.com")
	plot := createPlot(t, repos, alice)

	svc := newPlotService(repos)

	require.NoError(t, svc.DeletePlot(ctx, alice.ID, plot.ID))

	_, err := svc.GetPlot(ctx, plot.ID)
	assert.ErrorIs(t, err, ErrPlotNotFound)
}

func TestPlotService_DeletePlot_WithActivities(t *testing.T) {
	ctx := context.Background()
	repos := repository.NewMemory()
	alice := signupUser(t, repos, "Alice", "alice@example.com")
	plot := createPlot(t, repos, alice)

	activitySvc := NewActivityService(repos.Activities, repos.Plots)
	activity, err := activitySvc.CreateActivity(ctx, alice.ID, domain.Activity{
		PlotID:      plot.ID,
		Description: "planted tomatoes",
		Date:        time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	svc := newPlotService(repos)

	err = svc.DeletePlot(ctx, alice.ID, plot.ID)
	assert.ErrorIs(t, err, ErrPlotHasActivities)

	// Removing the last activity unblocks the delete.
	require.NoError(t, activitySvc.DeleteActivity(ctx, alice.ID, activity.ID))
	require.NoError(t, svc.DeletePlot(ctx, alice.ID, plot.ID))
}
