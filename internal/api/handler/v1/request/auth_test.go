package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSignupRequest() SignupRequest {
	return SignupRequest{
		Name:            "Alice Gardener",
		Email:           "alice@example.com",
		PhoneNumber:     "+12345678901",
		Password:        "passw0rd",
		ConfirmPassword: "passw0rd",
	}
}

func TestSignupRequest_Validate(t *testing.T) {
	req := validSignupRequest()
	require.NoError(t, req.Validate())
}

func TestSignupRequest_Validate_CollectsAllViolations(t *testing.T) {
	req := SignupRequest{}

	err := req.Validate()
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "name")
	assert.Contains(t, msg, "email")
	assert.Contains(t, msg, "phoneNumber")
	assert.Contains(t, msg, "password")
	assert.Contains(t, msg, "confirmPassword")
}

func TestSignupRequest_Validate_BadEmail(t *testing.T) {
	req := validSignupRequest()
	req.Email = "not-an-email"

	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email='not-an-email' is not in the valid format")
}

func TestSignupRequest_Validate_BadPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
	}{
		{"no plus prefix", "12345678901"},
		{"too short", "+12345"},
		{"letters", "+1234abc8901"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSignupRequest()
			req.PhoneNumber = tt.phone

			err := req.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "is not in the valid format")
		})
	}
}

func TestSignupRequest_Validate_PhoneSeparators(t *testing.T) {
	req := validSignupRequest()
	req.PhoneNumber = "+1 (234) 567-8901"

	require.NoError(t, req.Validate())
}

func TestSignupRequest_Validate_WeakPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"too short", "pass1"},
		{"no digit", "passwords"},
		{"no letter", "123456789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSignupRequest()
			req.Password = tt.password
			req.ConfirmPassword = tt.password

			err := req.Validate()
			assert.ErrorIs(t, err, errInvalidPassword)
		})
	}
}

func TestSignupRequest_Validate_ConfirmPasswordMismatch(t *testing.T) {
	req := validSignupRequest()
	req.ConfirmPassword = "different0ne"

	err := req.Validate()
	assert.ErrorIs(t, err, errConfirmPasswordMismatch)
}

func TestLoginRequest_Validate(t *testing.T) {
	req := LoginRequest{
		Email:    "alice@example.com",
		Password: "passw0rd",
	}
	require.NoError(t, req.Validate())

	req.Email = ""
	assert.Error(t, req.Validate())
}
