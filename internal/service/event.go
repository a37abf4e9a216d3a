package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gardenhub/garden-api/internal/domain"
)

var ErrEventNotFound = errors.New("event not found")

type EventRepository interface {
	Save(ctx context.Context, key string, event domain.Event) error
	FindByID(ctx context.Context, id string) (domain.Event, bool, error)
	FindAll(ctx context.Context) ([]domain.Event, error)
	Delete(ctx context.Context, id string) error
}

type EventService struct {
	repo EventRepository
}

func NewEventService(repo EventRepository) *EventService {
	return &EventService{
		repo: repo,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	event.ID = uuid.NewString()
	event.CreatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, event.ID, event); err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Save -> %w", err)
	}

	return event, nil
}

func (s *EventService) GetEvent(ctx context.Context, id string) (domain.Event, error) {
	event, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if !found {
		return domain.Event{}, ErrEventNotFound
	}

	return event, nil
}

func (s *EventService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return events, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, id string, updated domain.Event) (domain.Event, error) {
	current, err := s.GetEvent(ctx, id)
	if err != nil {
		return domain.Event{}, err
	}

	current.Title = updated.Title
	current.Description = updated.Description
	current.Date = updated.Date
	current.Location = updated.Location

	if err = s.repo.Save(ctx, current.ID, current); err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Save -> %w", err)
	}

	return current, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	if _, err := s.GetEvent(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
