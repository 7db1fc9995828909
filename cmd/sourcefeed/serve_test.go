package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sourcefeed/modules/feed"
	"github.com/dmitrymomot/sourcefeed/pkg/logger"
	"github.com/dmitrymomot/sourcefeed/pkg/requestid"
	"github.com/dmitrymomot/sourcefeed/svc/item"
	"github.com/dmitrymomot/sourcefeed/svc/session"
)

func testRouter(checks ...func(context.Context) error) http.Handler {
	reg := prometheus.NewRegistry()
	svc := feed.NewService(session.NewMemoryStore(), item.NewMemoryStore(),
		feed.WithMetrics(feed.NewMetrics(reg)),
	)
	return newRouter(logger.NewNop(), reg, checks, svc)
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRouter(t *testing.T) {
	t.Parallel()

	t.Run("liveness", func(t *testing.T) {
		w := get(testRouter(), "/healthz")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(requestid.Header))
	})

	t.Run("readiness reports failing store", func(t *testing.T) {
		w := get(testRouter(func(context.Context) error { return errors.New("down") }), "/readyz")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("metrics", func(t *testing.T) {
		h := testRouter()
		get(h, "/items")
		w := get(h, "/metrics")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `sourcefeed_visits_total{state="not_welcomed"} 1`)
	})

	t.Run("feed module is mounted", func(t *testing.T) {
		w := get(testRouter(), "/items")
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, feed.WelcomePath, w.Header().Get("Location"))
	})
}

func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	cat, err := loadCatalog("")
	require.NoError(t, err)
	assert.NotEmpty(t, cat.Sources())

	_, err = loadCatalog("does-not-exist.yaml")
	assert.Error(t, err)
}
