package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Gorm is the postgres-backed Store implementation. Rows are keyed by
// the id primary key, so Values ordered by id matches the ordered-map
// contract.
type Gorm[T any] struct {
	db *gorm.DB
}

func NewGorm[T any](db *gorm.DB) *Gorm[T] {
	return &Gorm[T]{
		db: db,
	}
}

func (g *Gorm[T]) Insert(ctx context.Context, _ string, value T) error {
	// Save upserts by primary key, matching the overwrite semantics of
	// the memory store.
	if result := g.db.WithContext(ctx).Save(&value); result.Error != nil {
		return fmt.Errorf("g.db.Save -> %w", result.Error)
	}

	return nil
}

func (g *Gorm[T]) Get(ctx context.Context, key string) (T, bool, error) {
	var value T

	result := g.db.WithContext(ctx).First(&value, "id = ?", key)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			var zero T
			return zero, false, nil
		}

		var zero T
		return zero, false, fmt.Errorf("g.db.First -> %w", result.Error)
	}

	return value, true, nil
}

func (g *Gorm[T]) Values(ctx context.Context) ([]T, error) {
	var values []T

	result := g.db.WithContext(ctx).Order("id").Find(&values)
	if result.Error != nil {
		return nil, fmt.Errorf("g.db.Find -> %w", result.Error)
	}

	return values, nil
}

func (g *Gorm[T]) Remove(ctx context.Context, key string) error {
	var model T

	if result := g.db.WithContext(ctx).Where("id = ?", key).Delete(&model); result.Error != nil {
		return fmt.Errorf("g.db.Delete -> %w", result.Error)
	}

	return nil
}

// EmailClaim is the row type of the persisted uniqueness index.
type EmailClaim struct {
	Email string `gorm:"primaryKey"`
}

// GormEmailSet persists the uniqueness index; the primary key makes
// Claim atomic, with the driver's unique violation mapped back to
// ErrEmailClaimed.
type GormEmailSet struct {
	db *gorm.DB
}

func NewGormEmailSet(db *gorm.DB) *GormEmailSet {
	return &GormEmailSet{
		db: db,
	}
}

func (s *GormEmailSet) Contains(ctx context.Context, email string) (bool, error) {
	var claim EmailClaim

	result := s.db.WithContext(ctx).First(&claim, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("s.db.First -> %w", result.Error)
	}

	return true, nil
}

func (s *GormEmailSet) Claim(ctx context.Context, email string) error {
	result := s.db.WithContext(ctx).Create(&EmailClaim{Email: email})
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrEmailClaimed
		}

		return fmt.Errorf("s.db.Create -> %w", result.Error)
	}

	return nil
}

func (s *GormEmailSet) Release(ctx context.Context, email string) error {
	if result := s.db.WithContext(ctx).Where("email = ?", email).Delete(&EmailClaim{}); result.Error != nil {
		return fmt.Errorf("s.db.Delete -> %w", result.Error)
	}

	return nil
}
