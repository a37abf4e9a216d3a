package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gardenhub/garden-api/internal/domain"
	"github.com/gardenhub/garden-api/internal/store"
)

var ErrEmailExists = errors.New("email is already in use")

// UserRepository keeps the user store and the email uniqueness index
// consistent: the check-and-claim and the insert happen under one lock,
// and a claim is rolled back when the insert fails.
type UserRepository struct {
	entities[domain.User]

	emails store.EmailSet
	mu     sync.Mutex
}

func NewUserRepository(users store.Store[domain.User], emails store.EmailSet) *UserRepository {
	return &UserRepository{
		entities: entities[domain.User]{store: users},
		emails:   emails,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.emails.Claim(ctx, user.Email); err != nil {
		if errors.Is(err, store.ErrEmailClaimed) {
			return domain.User{}, ErrEmailExists
		}

		return domain.User{}, fmt.Errorf("r.emails.Claim -> %w", err)
	}

	if err := r.store.Insert(ctx, user.ID, user); err != nil {
		if releaseErr := r.emails.Release(ctx, user.Email); releaseErr != nil {
			return domain.User{}, fmt.Errorf("r.emails.Release -> %w", releaseErr)
		}

		return domain.User{}, fmt.Errorf("r.store.Insert -> %w", err)
	}

	return user, nil
}

// Update persists the updated user. When the email changed, the new
// email is claimed before the write and the old claim released after
// it, so the index never drops below the store.
func (r *UserRepository) Update(ctx context.Context, current, updated domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	emailChanged := current.Email != updated.Email
	if emailChanged {
		if err := r.emails.Claim(ctx, updated.Email); err != nil {
			if errors.Is(err, store.ErrEmailClaimed) {
				return domain.User{}, ErrEmailExists
			}

			return domain.User{}, fmt.Errorf("r.emails.Claim -> %w", err)
		}
	}

	if err := r.store.Insert(ctx, updated.ID, updated); err != nil {
		if emailChanged {
			if releaseErr := r.emails.Release(ctx, updated.Email); releaseErr != nil {
				return domain.User{}, fmt.Errorf("r.emails.Release -> %w", releaseErr)
			}
		}

		return domain.User{}, fmt.Errorf("r.store.Insert -> %w", err)
	}

	if emailChanged {
		if err := r.emails.Release(ctx, current.Email); err != nil {
			return domain.User{}, fmt.Errorf("r.emails.Release -> %w", err)
		}
	}

	return updated, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, bool, error) {
	users, err := r.store.Values(ctx)
	if err != nil {
		return domain.User{}, false, fmt.Errorf("r.store.Values -> %w", err)
	}

	for _, user := range users {
		if user.Email == email {
			return user, true, nil
		}
	}

	return domain.User{}, false, nil
}

func (r *UserRepository) FindByOwner(ctx context.Context, owner string) (domain.User, bool, error) {
	users, err := r.store.Values(ctx)
	if err != nil {
		return domain.User{}, false, fmt.Errorf("r.store.Values -> %w", err)
	}

	for _, user := range users {
		if user.Owner == owner {
			return user, true, nil
		}
	}

	return domain.User{}, false, nil
}
