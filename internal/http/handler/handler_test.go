package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"llmcorp/internal/service"
)

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func jsonRequest(method, target, body string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func TestRoot(t *testing.T) {
	app := fiber.New()
	app.Get("/", Root())

	// Stateless: the answer never changes between calls.
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody[map[string]any](t, resp)
		assert.Equal(t, map[string]any{"status": "ok", "running": true}, body)
	}
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody[map[string]string](t, resp)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		body := decodeBody[errorPayload](t, resp)
		assert.False(t, body.Success)
		assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
	})

	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestHealthCheck_NoDatabase(t *testing.T) {
	app := fiber.New()
	app.Get("/health", HealthCheck(nil))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouting(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
	})
	RegisterRoutes(app, nil, Services{Chat: service.NewChatService()})

	t.Run("not found route", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/non-existent", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		body := decodeBody[errorPayload](t, resp)
		assert.Equal(t, "NOT_FOUND", body.Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/healthz", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		body := decodeBody[errorPayload](t, resp)
		assert.Equal(t, "METHOD_NOT_ALLOWED", body.Error.Code)
	})

	t.Run("catalog routes are not mounted without services", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/employees", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("swagger document is served", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		raw, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(raw), "/chat/{id}/messages")
	})
}

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/plain", func(c *fiber.Ctx) error { return errors.New("secret internals") })
	app.Get("/too-large", func(c *fiber.Ctx) error { return fiber.ErrRequestEntityTooLarge })
	app.Get("/invalid", func(c *fiber.Ctx) error {
		return &validationError{Fields: []fieldError{{Field: "x", Rule: "required", Message: "x is required"}}}
	})

	t.Run("internal errors are not leaked", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/plain", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		raw, _ := io.ReadAll(resp.Body)
		assert.NotContains(t, string(raw), "secret")
		assert.Contains(t, string(raw), "INTERNAL_ERROR")
	})

	t.Run("fiber status errors keep their code", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/too-large", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
		body := decodeBody[errorPayload](t, resp)
		assert.Equal(t, "PAYLOAD_TOO_LARGE", body.Error.Code)
	})

	t.Run("validation errors carry details", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/invalid", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		body := decodeBody[errorPayload](t, resp)
		require.Len(t, body.Error.Details, 1)
		assert.Equal(t, "x", body.Error.Details[0].Field)
	})
}
