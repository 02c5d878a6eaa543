package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agora-dev/agora/internal/domain"
	internal_errors "github.com/agora-dev/agora/internal/errors"
	"github.com/agora-dev/agora/internal/middleware"
)

func TestRegisterHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var got domain.Credentials
		auth := &MockAuthService{registerFunc: func(creds domain.Credentials) (string, error) {
			got = creds
			return "token-alice", nil
		}}
		router := newTestRouter(newTestHandler(auth, nil, nil, nil))

		body := `{"username": "alice", "password": "s3cret"}`
		req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, domain.Credentials{Username: "alice", Password: "s3cret"}, got)

		var resp authResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "User created successfully", resp.Message)
		assert.Equal(t, "token-alice", resp.AccessToken)
		assert.Equal(t, "alice", resp.Username)
	})

	t.Run("missing password", func(t *testing.T) {
		router := newTestRouter(newTestHandler(nil, nil, nil, nil))

		req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(`{"username": "alice"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		router := newTestRouter(newTestHandler(nil, nil, nil, nil))

		req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(`{"username": `))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("duplicate username", func(t *testing.T) {
		auth := &MockAuthService{registerFunc: func(creds domain.Credentials) (string, error) {
			return "", internal_errors.DuplicateUsername()
		}}
		router := newTestRouter(newTestHandler(auth, nil, nil, nil))

		body := `{"username": "alice", "password": "s3cret"}`
		req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "already taken")
	})
}

func TestLoginHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		auth := &MockAuthService{loginFunc: func(creds domain.Credentials) (string, error) {
			return "token-" + creds.Username, nil
		}}
		router := newTestRouter(newTestHandler(auth, nil, nil, nil))

		body := `{"username": "bob", "password": "hunter2"}`
		req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp authResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Logged in successfully", resp.Message)
		assert.Equal(t, "token-bob", resp.AccessToken)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		auth := &MockAuthService{loginFunc: func(creds domain.Credentials) (string, error) {
			return "", internal_errors.InvalidCredentials()
		}}
		router := newTestRouter(newTestHandler(auth, nil, nil, nil))

		body := `{"username": "bob", "password": "wrong"}`
		req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestMe(t *testing.T) {
	t.Run("authenticated", func(t *testing.T) {
		router := newTestRouter(newTestHandler(nil, nil, nil, nil))

		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req = req.WithContext(middleware.WithUsername(req.Context(), "alice"))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "alice", resp["username"])
	})

	t.Run("anonymous", func(t *testing.T) {
		router := newTestRouter(newTestHandler(nil, nil, nil, nil))

		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
