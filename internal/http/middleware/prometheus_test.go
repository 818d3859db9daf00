package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMiddleware(t *testing.T) {
	// Fresh registry per test avoids duplicate registration panics.
	reg := prometheus.NewRegistry()
	mw, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(mw.Handler())

	app.Get("/documents/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/error", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadRequest, "bad request")
	})
	app.Get("/metrics", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	t.Run("counts by route pattern", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest("GET", "/documents/abc", nil))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		count := testutil.ToFloat64(mw.requestCount.WithLabelValues("GET", "/documents/:id", "200"))
		assert.Equal(t, float64(1), count)
	})

	t.Run("records handler error status", func(t *testing.T) {
		app.Test(httptest.NewRequest("GET", "/error", nil))

		count := testutil.ToFloat64(mw.requestCount.WithLabelValues("GET", "/error", "400"))
		assert.Equal(t, float64(1), count)
	})

	t.Run("skips metrics endpoint", func(t *testing.T) {
		app.Test(httptest.NewRequest("GET", "/metrics", nil))

		count := testutil.ToFloat64(mw.requestCount.WithLabelValues("GET", "/metrics", "200"))
		assert.Equal(t, float64(0), count)
	})

	t.Run("times requests", func(t *testing.T) {
		n := testutil.CollectAndCount(mw.requestDuration)
		assert.Greater(t, n, 0)
	})

	t.Run("duplicate registration fails", func(t *testing.T) {
		_, err := NewPrometheusMiddleware(reg)
		assert.Error(t, err)
	})
}
