package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gardenhub/garden-api/internal/domain"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrNotProfileOwner = errors.New("only the owner of the profile can update it")
)

type UserRepository interface {
	FindByID(ctx context.Context, id string) (domain.User, bool, error)
	FindByOwner(ctx context.Context, owner string) (domain.User, bool, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, current, updated domain.User) (domain.User, error)
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) GetUser(ctx context.Context, id string) (domain.User, error) {
	user, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if !found {
		return domain.User{}, ErrUserNotFound
	}

	return user, nil
}

func (s *UserService) GetUserByOwner(ctx context.Context, owner string) (domain.User, error) {
	user, found, err := s.repo.FindByOwner(ctx, owner)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByOwner -> %w", err)
	}
	if !found {
		return domain.User{}, ErrUserNotFound
	}

	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return users, nil
}

// UpdateProfile replaces the mutable profile fields. The lookup runs
// before the ownership check, so an absent id fails with not-found
// regardless of the caller.
func (s *UserService) UpdateProfile(ctx context.Context, callerID, userID string, updated domain.User) (domain.User, error) {
	current, found, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if !found {
		return domain.User{}, ErrUserNotFound
	}

	if current.Owner != callerID {
		return domain.User{}, ErrNotProfileOwner
	}

	next := current
	next.Name = updated.Name
	next.Email = updated.Email
	next.PhoneNumber = updated.PhoneNumber

	saved, err := s.repo.Update(ctx, current, next)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return saved, nil
}
