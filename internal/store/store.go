// Package store provides the ordered key-value mappings backing the
// entity repositories. Two implementations exist: an in-memory ordered
// map and a postgres-backed one; both are injected, never global.
package store

import (
	"context"
	"errors"
)

// ErrEmailClaimed is returned by EmailSet.Claim when the email is
// already claimed by another record.
var ErrEmailClaimed = errors.New("email is already claimed")

// Store holds one entity type's records keyed by id.
//
// Insert overwrites any existing value at key. Values returns all
// records in ascending key order; the ordering is a consequence of the
// underlying map, callers must not depend on insertion order. Remove
// is a no-op when the key is absent.
type Store[T any] interface {
	Insert(ctx context.Context, key string, value T) error
	Get(ctx context.Context, key string) (T, bool, error)
	Values(ctx context.Context) ([]T, error)
	Remove(ctx context.Context, key string) error
}

// EmailSet is the uniqueness index over user emails. Claim is atomic
// per key: two concurrent claims of the same email cannot both succeed.
type EmailSet interface {
	Contains(ctx context.Context, email string) (bool, error)
	Claim(ctx context.Context, email string) error
	Release(ctx context.Context, email string) error
}
