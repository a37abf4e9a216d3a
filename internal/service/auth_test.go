package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gardenhub/garden-api/internal/domain"
	"github.com/gardenhub/garden-api/internal/repository"
)

func newAuthService() *AuthService {
	return NewAuthService(repository.NewMemory().Users)
}

func aliceSignup() domain.User {
	return domain.User{
		Name:        "Alice Gardener",
		Email:       "alice@example.com",
		PhoneNumber: "+12345678901",
		Password:    "passw0rd",
	}
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService()

	created, err := svc.Signup(ctx, aliceSignup())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, created.ID, created.Owner)
	assert.False(t, created.CreatedAt.IsZero())

	// The stored password is a hash, not the plaintext.
	assert.NotEqual(t, "passw0rd", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("passw0rd")))
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService()

	_, err := svc.Signup(ctx, aliceSignup())
	require.NoError(t, err)

	second := aliceSignup()
	second.Name = "Other Alice"

	_, err = svc.Signup(ctx, second)
	assert.ErrorIs(t, err, ErrUserEmailExists)
}

func TestAuthService_Signup_GeneratesUniqueIDs(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService()

	first, err := svc.Signup(ctx, aliceSignup())
	require.NoError(t, err)

	bob := aliceSignup()
	bob.Email = "bob@example.com"
	second, err := svc.Signup(ctx, bob)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService()

	created, err := svc.Signup(ctx, aliceSignup())
	require.NoError(t, err)

	user, err := svc.Login(ctx, "alice@example.com", "passw0rd")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService()

	_, err := svc.Signup(ctx, aliceSignup())
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice@example.com", "wrongpass1")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService()

	_, err := svc.Login(ctx, "nobody@example.com", "passw0rd")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
