package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gardenhub/garden-api/internal/domain"
)

var ErrActivityNotFound = errors.New("activity not found")

type ActivityRepository interface {
	Save(ctx context.Context, key string, activity domain.Activity) error
	FindByID(ctx context.Context, id string) (domain.Activity, bool, error)
	FindAll(ctx context.Context) ([]domain.Activity, error)
	Delete(ctx context.Context, id string) error
}

type ActivityPlotFinder interface {
	FindByID(ctx context.Context, id string) (domain.Plot, bool, error)
}

type ActivityService struct {
	activities ActivityRepository
	plots      ActivityPlotFinder
}

func NewActivityService(activities ActivityRepository, plots ActivityPlotFinder) *ActivityService {
	return &ActivityService{
		activities: activities,
		plots:      plots,
	}
}

func (s *ActivityService) CreateActivity(ctx context.Context, callerID string, activity domain.Activity) (domain.Activity, error) {
	plot, found, err := s.plots.FindByID(ctx, activity.PlotID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.plots.FindByID -> %w", err)
	}
	if !found {
		return domain.Activity{}, ErrPlotNotFound
	}

	if plot.UserID != callerID {
		return domain.Activity{}, ErrNotPlotOwner
	}

	activity.ID = uuid.NewString()
	activity.CreatedAt = time.Now().UTC()

	if err = s.activities.Save(ctx, activity.ID, activity); err != nil {
		return domain.Activity{}, fmt.Errorf("s.activities.Save -> %w", err)
	}

	return activity, nil
}

func (s *ActivityService) GetActivity(ctx context.Context, id string) (domain.Activity, error) {
	activity, found, err := s.activities.FindByID(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.activities.FindByID -> %w", err)
	}
	if !found {
		return domain.Activity{}, ErrActivityNotFound
	}

	return activity, nil
}

func (s *ActivityService) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	activities, err := s.activities.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.activities.FindAll -> %w", err)
	}

	return activities, nil
}

func (s *ActivityService) UpdateActivity(ctx context.Context, callerID, id string, updated domain.Activity) (domain.Activity, error) {
	current, err := s.GetActivity(ctx, id)
	if err != nil {
		return domain.Activity{}, err
	}

	if err = s.authorize(ctx, callerID, current.PlotID); err != nil {
		return domain.Activity{}, err
	}

	current.Description = updated.Description
	current.Date = updated.Date

	if err = s.activities.Save(ctx, current.ID, current); err != nil {
		return domain.Activity{}, fmt.Errorf("s.activities.Save -> %w", err)
	}

	return current, nil
}

func (s *ActivityService) DeleteActivity(ctx context.Context, callerID, id string) error {
	current, err := s.GetActivity(ctx, id)
	if err != nil {
		return err
	}

	if err = s.authorize(ctx, callerID, current.PlotID); err != nil {
		return err
	}

	if err = s.activities.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.activities.Delete -> %w", err)
	}

	return nil
}

// authorize resolves the parent plot and checks the caller owns it. An
// orphaned activity (plot removed out of band) is not mutable.
func (s *ActivityService) authorize(ctx context.Context, callerID, plotID string) error {
	plot, found, err := s.plots.FindByID(ctx, plotID)
	if err != nil {
		return fmt.Errorf("s.plots.FindByID -> %w", err)
	}
	if !found {
		return ErrPlotNotFound
	}

	if plot.UserID != callerID {
		return ErrNotPlotOwner
	}

	return nil
}
