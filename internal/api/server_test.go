package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gardenhub/garden-api/internal/api"
	"github.com/gardenhub/garden-api/internal/config"
	"github.com/gardenhub/garden-api/internal/domain"
	"github.com/gardenhub/garden-api/internal/repository"
)

func newTestServer() *api.Server {
	conf := &config.AppConfig{
		API: &config.APIConfig{
			Environment:        "test",
			BaseURL:            "localhost:8080",
			Port:               "8080",
			JWTSigningKey:      "test-signing-key",
			AllowedCORSDomains: []string{"http://localhost:3000"},
		},
		Gin: &config.GinConfig{
			Mode: gin.TestMode,
		},
	}

	return api.NewServer(conf, repository.NewMemory())
}

func doRequest(t *testing.T, s *api.Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp := httptest.NewRecorder()
	s.Router.ServeHTTP(resp, req)

	return resp
}

func decodeBody[T any](t *testing.T, resp *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))

	return out
}

func signupAndLogin(t *testing.T, s *api.Server, name, email string) (domain.User, string) {
	t.Helper()

	resp := doRequest(t, s, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"name":            name,
		"email":           email,
		"phoneNumber":     "+12345678901",
		"password":        "passw0rd",
		"confirmPassword": "passw0rd",
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	user := decodeBody[domain.User](t, resp)

	resp = doRequest(t, s, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    email,
		"password": "passw0rd",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	return user, login.Token
}

func TestHealthcheck(t *testing.T) {
	s := newTestServer()

	resp := doRequest(t, s, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestSignup_Validation(t *testing.T) {
	s := newTestServer()

	resp := doRequest(t, s, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"name":            "",
		"email":           "not-an-email",
		"phoneNumber":     "123",
		"password":        "passw0rd",
		"confirmPassword": "passw0rd",
	})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	body := resp.Body.String()
	assert.Contains(t, body, "invalid payload")
	assert.Contains(t, body, "email='not-an-email' is not in the valid format")
	assert.Contains(t, body, "phoneNumber='123' is not in the valid format")
}

func TestSignup_DuplicateEmail(t *testing.T) {
	s := newTestServer()

	signupAndLogin(t, s, "Alice", "alice@example.com")

	resp := doRequest(t, s, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"name":            "Other Alice",
		"email":           "alice@example.com",
		"phoneNumber":     "+12345678901",
		"password":        "passw0rd",
		"confirmPassword": "passw0rd",
	})
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "already in use")
}

func TestSignup_PasswordNeverSerialized(t *testing.T) {
	s := newTestServer()

	resp := doRequest(t, s, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"name":            "Alice",
		"email":           "alice@example.com",
		"phoneNumber":     "+12345678901",
		"password":        "passw0rd",
		"confirmPassword": "passw0rd",
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	assert.NotContains(t, resp.Body.String(), "password")
}

func TestLogin_WrongCredentials(t *testing.T) {
	s := newTestServer()

	signupAndLogin(t, s, "Alice", "alice@example.com")

	resp := doRequest(t, s, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "wrongpass1",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = doRequest(t, s, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "nobody@example.com",
		"password": "passw0rd",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestMutationsRequireToken(t *testing.T) {
	s := newTestServer()

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/plots"},
		{http.MethodPost, "/api/v1/activities"},
		{http.MethodPost, "/api/v1/resources"},
		{http.MethodPost, "/api/v1/events"},
		{http.MethodPut, "/api/v1/users/some-id"},
		{http.MethodDelete, "/api/v1/plots/some-id"},
	}

	for _, tt := range paths {
		resp := doRequest(t, s, tt.method, tt.path, "", gin.H{})
		assert.Equal(t, http.StatusUnauthorized, resp.Code, "%v %v", tt.method, tt.path)
	}

	resp := doRequest(t, s, http.MethodPost, "/api/v1/plots", "not-a-valid-token", gin.H{})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestPublicReadsNeedNoToken(t *testing.T) {
	s := newTestServer()

	for _, path := range []string{
		"/api/v1/users",
		"/api/v1/plots",
		"/api/v1/activities",
		"/api/v1/resources",
		"/api/v1/events",
	} {
		resp := doRequest(t, s, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, resp.Code, path)
	}
}

func TestGetCurrentUser(t *testing.T) {
	s := newTestServer()
	alice, token := signupAndLogin(t, s, "Alice", "alice@example.com")

	resp := doRequest(t, s, http.MethodGet, "/api/v1/users/me", token, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	got := decodeBody[domain.User](t, resp)
	assert.Equal(t, alice.ID, got.ID)
}

func TestUpdateUser_OwnershipEnforced(t *testing.T) {
	s := newTestServer()
	alice, _ := signupAndLogin(t, s, "Alice", "alice@example.com")
	_, bobToken := signupAndLogin(t, s, "Bob", "bob@example.com")

	resp := doRequest(t, s, http.MethodPut, "/api/v1/users/"+alice.ID, bobToken, gin.H{
		"name":        "Hijacked",
		"email":       "hijack@example.com",
		"phoneNumber": "+12345678901",
	})
	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestPlotLifecycle(t *testing.T) {
	s := newTestServer()
	alice, aliceToken := signupAndLogin(t, s, "Alice", "alice@example.com")
	_, bobToken := signupAndLogin(t, s, "Bob", "bob@example.com")

	// Bob cannot reserve a plot on Alice's behalf.
	resp := doRequest(t, s, http.MethodPost, "/api/v1/plots", bobToken, gin.H{
		"userId":        alice.ID,
		"size":          "10x10",
		"location":      "north corner",
		"reservedUntil": "2026-12-31",
	})
	require.Equal(t, http.StatusForbidden, resp.Code)

	resp = doRequest(t, s, http.MethodPost, "/api/v1/plots", aliceToken, gin.H{
		"userId":        alice.ID,
		"size":          "10x10",
		"location":      "north corner",
		"reservedUntil": "2026-12-31",
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	plot := decodeBody[domain.Plot](t, resp)
	require.NotEmpty(t, plot.ID)

	// An activity against an absent plot is rejected with 404.
	resp = doRequest(t, s, http.MethodPost, "/api/v1/activities", aliceToken, gin.H{
		"plotId":      "cccccccc-cccc-4ccc-8ccc-cccccccccccc",
		"description": "planted tomatoes",
		"date":        "2026-04-01",
	})
	require.Equal(t, http.StatusNotFound, resp.Code)

	resp = doRequest(t, s, http.MethodPost, "/api/v1/activities", aliceToken, gin.H{
		"plotId":      plot.ID,
		"description": "planted tomatoes",
		"date":        "2026-04-01",
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	activity := decodeBody[domain.Activity](t, resp)

	// The plot cannot be removed while the activity references it.
	resp = doRequest(t, s, http.MethodDelete, "/api/v1/plots/"+plot.ID, aliceToken, nil)
	require.Equal(t, http.StatusConflict, resp.Code)

	resp = doRequest(t, s, http.MethodDelete, "/api/v1/activities/"+activity.ID, aliceToken, nil)
	require.Equal(t, http.StatusNoContent, resp.Code)

	resp = doRequest(t, s, http.MethodDelete, "/api/v1/plots/"+plot.ID, aliceToken, nil)
	require.Equal(t, http.StatusNoContent, resp.Code)

	resp = doRequest(t, s, http.MethodGet, "/api/v1/plots/"+plot.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestResourceAndEventLifecycle(t *testing.T) {
	s := newTestServer()
	_, token := signupAndLogin(t, s, "Alice", "alice@example.com")

	resp := doRequest(t, s, http.MethodPost, "/api/v1/resources", token, gin.H{
		"name":      "wheelbarrow",
		"quantity":  2,
		"available": true,
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	resource := decodeBody[domain.Resource](t, resp)

	resp = doRequest(t, s, http.MethodPut, fmt.Sprintf("/api/v1/resources/%v", resource.ID), token, gin.H{
		"name":      "wheelbarrow",
		"quantity":  1,
		"available": false,
	})
	require.Equal(t, http.StatusOK, resp.Code)
	updated := decodeBody[domain.Resource](t, resp)
	assert.Equal(t, uint(1), updated.Quantity)

	resp = doRequest(t, s, http.MethodPost, "/api/v1/events", token, gin.H{
		"title":       "Spring planting day",
		"description": "Bring gloves.",
		"date":        "2026-05-01",
		"location":    "main shed",
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	event := decodeBody[domain.Event](t, resp)

	resp = doRequest(t, s, http.MethodGet, "/api/v1/events/"+event.ID, "", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doRequest(t, s, http.MethodDelete, "/api/v1/events/"+event.ID, token, nil)
	require.Equal(t, http.StatusNoContent, resp.Code)

	resp = doRequest(t, s, http.MethodDelete, "/api/v1/resources/"+resource.ID, token, nil)
	require.Equal(t, http.StatusNoContent, resp.Code)
}

func TestListIsStableAcrossReads(t *testing.T) {
	s := newTestServer()
	alice, token := signupAndLogin(t, s, "Alice", "alice@example.com")

	for i := 0; i < 3; i++ {
		resp := doRequest(t, s, http.MethodPost, "/api/v1/plots", token, gin.H{
			"userId":        alice.ID,
			"size":          fmt.Sprintf("%vx%v", i+1, i+1),
			"location":      fmt.Sprintf("row %v", i+1),
			"reservedUntil": "2026-12-31",
		})
		require.Equal(t, http.StatusCreated, resp.Code)
	}

	first := decodeBody[[]domain.Plot](t, doRequest(t, s, http.MethodGet, "/api/v1/plots", "", nil))
	second := decodeBody[[]domain.Plot](t, doRequest(t, s, http.MethodGet, "/api/v1/plots", "", nil))

	require.Len(t, first, 3)
	assert.Equal(t, first, second)
}
