package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwoo-dev/tripnote-backend/config"
	"github.com/jwoo-dev/tripnote-backend/routes"
)

func setupTestRouter(t *testing.T, password string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.Set(&config.Config{AppPassword: password})

	router := gin.New()
	routes.SetupRoutes(router)
	return router
}

func doRequest(router *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestHealthCheck(t *testing.T) {
	router := setupTestRouter(t, "hunter2")

	resp := doRequest(router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"ok":true`)
	assert.Contains(t, resp.Body.String(), `"service":"tripnote-api"`)
}

func TestVerifyPassword(t *testing.T) {
	router := setupTestRouter(t, "hunter2")

	resp := doRequest(router, http.MethodPost, "/auth/verify", `{"password":"hunter2"}`, nil)
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = doRequest(router, http.MethodPost, "/auth/verify", `{"password":"wrong"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), `"ok":false`)

	resp = doRequest(router, http.MethodPost, "/auth/verify", `{}`, nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doRequest(router, http.MethodPost, "/auth/verify", `not json`, nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestRequireAuth(t *testing.T) {
	router := setupTestRouter(t, "hunter2")

	// No credential at all
	resp := doRequest(router, http.MethodGet, "/api/trips", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Missing or incorrect password")

	// Wrong credential
	resp = doRequest(router, http.MethodGet, "/api/trips", "", map[string]string{
		"X-App-Password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	// Wrong bearer token
	resp = doRequest(router, http.MethodGet, "/api/trips", "", map[string]string{
		"Authorization": "Bearer wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestRequireAuth_AcceptsEitherHeader(t *testing.T) {
	router := setupTestRouter(t, "hunter2")

	// Flight lookup rejects the missing flight number before touching any
	// backend, so a 400 here proves the gate let the request through.
	resp := doRequest(router, http.MethodGet, "/api/flight-lookup", "", map[string]string{
		"X-App-Password": "hunter2",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doRequest(router, http.MethodGet, "/api/flight-lookup", "", map[string]string{
		"Authorization": "Bearer hunter2",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestRequireAuth_DisabledWithoutSecret(t *testing.T) {
	router := setupTestRouter(t, "")

	resp := doRequest(router, http.MethodGet, "/api/flight-lookup", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	// Verify accepts anything when no secret is configured
	resp = doRequest(router, http.MethodPost, "/auth/verify", `{"password":"anything"}`, nil)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestRouterFallbacks(t *testing.T) {
	router := setupTestRouter(t, "hunter2")

	resp := doRequest(router, http.MethodPut, "/health", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.Code)

	resp = doRequest(router, http.MethodGet, "/no-such-route", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
