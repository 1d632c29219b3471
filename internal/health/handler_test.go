// AngelaMos | 2026
// handler_test.go

package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	err error
}

func (s *stubChecker) Ping(ctx context.Context) error {
	return s.err
}

func serve(h *Handler, path string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	h.RegisterRoutes(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestLiveness(t *testing.T) {
	h := NewHandler(&stubChecker{})

	rec := serve(h, "/livez")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadiness(t *testing.T) {
	h := NewHandler(&stubChecker{})

	rec := serve(h, "/readyz")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ReadinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Checks, 1)
	assert.Equal(t, "database", resp.Checks[0].Name)
	assert.True(t, resp.Checks[0].Healthy)
}

func TestReadinessDegraded(t *testing.T) {
	h := NewHandler(&stubChecker{err: errors.New("connection refused")})

	rec := serve(h, "/readyz")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp ReadinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp.Status)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestShutdownFlipsProbes(t *testing.T) {
	h := NewHandler(&stubChecker{})
	h.SetShutdown(true)

	assert.Equal(t, http.StatusServiceUnavailable, serve(h, "/livez").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(h, "/readyz").Code)
}

func TestNotReady(t *testing.T) {
	h := NewHandler(&stubChecker{})
	h.SetReady(false)

	assert.Equal(t, http.StatusServiceUnavailable, serve(h, "/readyz").Code)

	h.SetReady(true)
	assert.Equal(t, http.StatusOK, serve(h, "/readyz").Code)
}
