package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gardenhub/garden-api/internal/domain"
)

var (
	ErrPlotNotFound      = errors.New("plot not found")
	ErrNotPlotOwner      = errors.New("only the plot's owner can modify it")
	ErrPlotHasActivities = errors.New("plot still has activities recorded against it")
)

type PlotRepository interface {
	Save(ctx context.Context, key string, plot domain.Plot) error
	FindByID(ctx context.Context, id string) (domain.Plot, bool, error)
	FindAll(ctx context.Context) ([]domain.Plot, error)
	Delete(ctx context.Context, id string) error
}

type PlotUserFinder interface {
	FindByID(ctx context.Context, id string) (domain.User, bool, error)
}

type PlotActivityChecker interface {
	AnyForPlot(ctx context.Context, plotID string) (bool, error)
}

type PlotService struct {
	plots      PlotRepository
	users      PlotUserFinder
	activities PlotActivityChecker
}

func NewPlotService(plots PlotRepository, users PlotUserFinder, activities PlotActivityChecker) *PlotService {
	return &PlotService{
		plots:      plots,
		users:      users,
		activities: activities,
	}
}

// CreatePlot verifies the referenced user exists and that the caller is
// that user before persisting.
func (s *PlotService) CreatePlot(ctx context.Context, callerID string, plot domain.Plot) (domain.Plot, error) {
	_, found, err := s.users.FindByID(ctx, plot.UserID)
	if err != nil {
		return domain.Plot{}, fmt.Errorf("s.users.FindByID -> %w", err)
	}
	if !found {
		return domain.Plot{}, ErrUserNotFound
	}

	if plot.UserID != callerID {
		return domain.Plot{}, ErrNotPlotOwner
	}

	plot.ID = uuid.NewString()
	plot.CreatedAt = time.Now().UTC()

	if err = s.plots.Save(ctx, plot.ID, plot); err != nil {
		return domain.Plot{}, fmt.Errorf("s.plots.Save -> %w", err)
	}

	return plot, nil
}

func (s *PlotService) GetPlot(ctx context.Context, id string) (domain.Plot, error) {
	plot, found, err := s.plots.FindByID(ctx, id)
	if err != nil {
		return domain.Plot{}, fmt.Errorf("s.plots.FindByID -> %w", err)
	}
	if !found {
		return domain.Plot{}, ErrPlotNotFound
	}

	return plot, nil
}

func (s *PlotService) ListPlots(ctx context.Context) ([]domain.Plot, error) {
	plots, err := s.plots.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.plots.FindAll -> %w", err)
	}

	return plots, nil
}

func (s *PlotService) UpdatePlot(ctx context.Context, callerID, id string, updated domain.Plot) (domain.Plot, error) {
	current, found, err := s.plots.FindByID(ctx, id)
	if err != nil {
		return domain.Plot{}, fmt.Errorf("s.plots.FindByID -> %w", err)
	}
	if !found {
		return domain.Plot{}, ErrPlotNotFound
	}

	if current.UserID != callerID {
		return domain.Plot{}, ErrNotPlotOwner
	}

	current.Size = updated.Size
	current.Location = updated.Location
	current.ReservedUntil = updated.ReservedUntil

	if err = s.plots.Save(ctx, current.ID, current); err != nil {
		return domain.Plot{}, fmt.Errorf("s.plots.Save -> %w", err)
	}

	return current, nil
}

// DeletePlot forbids deletion while activities still reference the
// plot, so the activity store never holds ids pointing nowhere.
func (s *PlotService) DeletePlot(ctx context.Context, callerID, id string) error {
	plot, found, err := s.plots.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.plots.FindByID -> %w", err)
	}
	if !found {
		return ErrPlotNotFound
	}

	if plot.UserID != callerID {
		return ErrNotPlotOwner
	}

	hasActivities, err := s.activities.AnyForPlot(ctx, id)
	if err != nil {
		return fmt.Errorf("s.activities.AnyForPlot -> %w", err)
	}
	if hasActivities {
		return ErrPlotHasActivities
	}

	if err = s.plots.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.plots.Delete -> %w", err)
	}

	return nil
}
