package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gardenhub/garden-api/internal/domain"
)

var ErrResourceNotFound = errors.New("resource not found")

type ResourceRepository interface {
	Save(ctx context.Context, key string, resource domain.Resource) error
	FindByID(ctx context.Context, id string) (domain.Resource, bool, error)
	FindAll(ctx context.Context) ([]domain.Resource, error)
	Delete(ctx context.Context, id string) error
}

type ResourceService struct {
	repo ResourceRepository
}

func NewResourceService(repo ResourceRepository) *ResourceService {
	return &ResourceService{
		repo: repo,
	}
}

func (s *ResourceService) CreateResource(ctx context.Context, resource domain.Resource) (domain.Resource, error) {
	resource.ID = uuid.NewString()
	resource.CreatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, resource.ID, resource); err != nil {
		return domain.Resource{}, fmt.Errorf("s.repo.Save -> %w", err)
	}

	return resource, nil
}

func (s *ResourceService) GetResource(ctx context.Context, id string) (domain.Resource, error) {
	resource, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Resource{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if !found {
		return domain.Resource{}, ErrResourceNotFound
	}

	return resource, nil
}

func (s *ResourceService) ListResources(ctx context.Context) ([]domain.Resource, error) {
	resources, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return resources, nil
}

func (s *ResourceService) UpdateResource(ctx context.Context, id string, updated domain.Resource) (domain.Resource, error) {
	current, err := s.GetResource(ctx, id)
	if err != nil {
		return domain.Resource{}, err
	}

	current.Name = updated.Name
	current.Quantity = updated.Quantity
	current.Available = updated.Available

	if err = s.repo.Save(ctx, current.ID, current); err != nil {
		return domain.Resource{}, fmt.Errorf("s.repo.Save -> %w", err)
	}

	return current, nil
}

func (s *ResourceService) DeleteResource(ctx context.Context, id string) error {
	if _, err := s.GetResource(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
