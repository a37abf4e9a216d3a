package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gardenhub/garden-api/internal/domain"
	"github.com/gardenhub/garden-api/internal/repository"
)

// signupUser creates a user through the auth flow so ids and owner are
// assigned the same way production does it.
func signupUser(t *testing.T, repos *repository.Repositories, name, email string) domain.User {
	t.Helper()

	created, err := NewAuthService(repos.Users).Signup(context.Background(), domain.User{
		Name:        name,
		Email:       email,
		PhoneNumber: "+12345678901",
		Password:    "passw0rd",
	})
	require.NoError(t, err)

	return created
}

func TestUserService_GetUser(t *testing.T) {
	ctx := context.Background()
	repos := repository.NewMemory()
	alice := signupUser(t, repos, "Alice", "alice@example.com")

	svc := NewUserService(repos.Users)

	got, err := svc.GetUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.Email, got.Email)

	_, err = svc.GetUser(ctx, "missing-id")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_GetUserByOwner(t *testing.T) {
	ctx := context.Background()
	repos := repository.NewMemory()
	alice := signupUser(t, repos, "Alice", "alice@example.com")

	svc := NewUserService(repos.Users)

	got, err := svc.GetUserByOwner(ctx, alice.Owner)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)
}

func TestUserService_ListUsers(t *testing.T) {
	ctx := context.Background()
	repos := repository.NewMemory()
	signupUser(t, repos, "Alice", "alice@example.com")
	signupUser(t, repos, "Bob", "bob@example.com")

	svc := NewUserService(repos.Users)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	repos := repository.NewMemory()
	alice := signupUser(t, repos, "Alice", "alice@example.com")

	svc := NewUserService(repos.Users)

	updated, err := svc.UpdateProfile(ctx, alice.ID, alice.ID, domain.User{
		Name:        "Alice G.",
		Email:       "alice.g@example.com",
		PhoneNumber: "+19876543210",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice G.", updated.Name)
	assert.Equal(t, "alice.g@example.com", updated.Email)

	// Identity and audit fields survive the update.
	assert.Equal(t, alice.ID, updated.ID)
	assert.Equal(t, alice.Owner, updated.Owner)
	assert.Equal(t, alice.CreatedAt, updated.CreatedAt)

	// The released email is claimable again.
	bob := signupUser(t, repos, "Bob", "alice@example.com")
	assert.NotEmpty(t, bob.ID)
}

func TestUserService_UpdateProfile_NotOwner(t *testing.T) {
	ctx := context.Background()
	repos := repository.NewMemory()
	alice := signupUser(t, repos, "Alice", "alice@example.com")
	bob := signupUser(t, repos, "Bob", "bob@example.com")

	svc := NewUserService(repos.Users)

	_, err := svc.UpdateProfile(ctx, bob.ID, alice.ID, domain.User{
		Name:        "Hijacked",
		Email:       "hijack@example.com",
		PhoneNumber: "+12345678901",
	})
	assert.ErrorIs(t, err, ErrNotProfileOwner)
}

func TestUserService_UpdateProfile_NotFoundBeforeOwnership(t *testing.T) {
	ctx := context.Background()
	repos := repository.NewMemory()
	alice := signupUser(t, repos, "Alice", "alice@example.com")

	svc := NewUserService(repos.Users)

	_, err := svc.UpdateProfile(ctx, alice.ID, "missing-id", domain.User{
		Name:        "Whoever",
		Email:       "whoever@example.com",
		PhoneNumber: "+12345678901",
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_UpdateProfile_EmailTaken(t *testing.T) {
	ctx := context.Background()
	repos := repository.NewMemory()
	alice := signupUser(t, repos, "Alice", "alice@example.com")
	signupUser(t, repos, "Bob", "bob@example.com")

	svc := NewUserService(repos.Users)

	_, err := svc.UpdateProfile(ctx, alice.ID, alice.ID, domain.User{
		Name:        "Alice",
		Email:       "bob@example.com",
		PhoneNumber: "+12345678901",
	})
	assert.ErrorIs(t, err, ErrUserEmailExists)
}

func TestUserService_UpdateProfile_SameEmailIsFine(t *testing.T) {
	ctx := context.Background()
	repos := repository.NewMemory()
	alice := signupUser(t, repos, "Alice", "alice@example.com")

	svc := NewUserService(repos.Users)

	updated, err := svc.UpdateProfile(ctx, alice.ID, alice.ID, domain.User{
		Name:        "Alice Renamed",
		Email:       "alice@example.com",
		PhoneNumber: "+12345678901",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Renamed", updated.Name)
}
