package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tweeter/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp() (*fiber.App, *test.Hook) {
	logger, hook := test.NewNullLogger()
	app := fiber.New()
	app.Use(middleware.RequestLogger(logger))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString(middleware.RequestIDFromContext(c))
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})
	return app, hook
}

func TestRequestLogger_GeneratesID(t *testing.T) {
	app, hook := setupApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	requestID := resp.Header.Get(middleware.RequestIDHeader)
	_, err = uuid.Parse(requestID)
	assert.NoError(t, err, "generated id should be a UUID")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "request handled", entry.Message)
	assert.Equal(t, requestID, entry.Data["request_id"])
	assert.Equal(t, http.StatusOK, entry.Data["status"])
	assert.Equal(t, "/ping", entry.Data["path"])
}

func TestRequestLogger_ReusesCallerID(t *testing.T) {
	app, _ := setupApp()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "  caller-id  ")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "caller-id", resp.Header.Get(middleware.RequestIDHeader))
}

func TestRequestLogger_LogsErrorStatus(t *testing.T) {
	app, hook := setupApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, http.StatusTeapot, entry.Data["status"])
}
