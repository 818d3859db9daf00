package reporting

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docdash/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(config.ReportingConfig{
		BaseURL:    srv.URL,
		Token:      "secret-token",
		TimeoutSec: 5,
	})
	require.NoError(t, err)
	return c
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := New(config.ReportingConfig{})
	assert.Error(t, err)
}

func TestUploadTrends(t *testing.T) {
	var gotAuth, gotPath, gotPeriod string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotPeriod = r.URL.Query().Get("period")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"trends":[{"date":"2024-01-01","uploads":2,"total_size":3072}]}`))
	})

	trends, err := c.UploadTrends(context.Background(), "7d")

	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, "/api/analytics/upload-trends", gotPath)
	assert.Equal(t, "7d", gotPeriod)
	require.Len(t, trends, 1)
	assert.Equal(t, 2, trends[0].Uploads)
	assert.Equal(t, int64(3072), trends[0].TotalSize)
}

func TestActivity(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"weekdays":[{"label":"Sun","count":1}],"hours":[{"label":"00-02","count":3}]}`))
	})

	weekdays, hours, err := c.Activity(context.Background(), "30d")

	require.NoError(t, err)
	require.Len(t, weekdays, 1)
	assert.Equal(t, "Sun", weekdays[0].Label)
	require.Len(t, hours, 1)
	assert.Equal(t, 3, hours[0].Count)
}

func TestUnauthorizedClearsToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.StorageSummary(context.Background())

	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Empty(t, c.currentToken())
}

func TestStatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	})

	_, err := c.ModelUsage(context.Background(), "7d")

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
	assert.Contains(t, statusErr.Error(), "upstream down")
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, err := c.TypeDistribution(ctx, "7d")
		require.Error(t, err)
		assert.False(t, IsCircuitOpen(err))
	}

	_, err := c.TypeDistribution(ctx, "7d")
	assert.True(t, IsCircuitOpen(err))
}
