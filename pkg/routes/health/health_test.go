package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticProbe bool

func (p staticProbe) Health() bool { return bool(p) }

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealth(t *testing.T) {
	e := echo.New()
	checker := NewChecker("1.2.3")
	checker.RegisterRoutes(e)

	rec := get(e, "/api/v1/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var status HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, "1.2.3", status.Version)

	checker.AddProbe("kafka-consumer", staticProbe(false))
	rec = get(e, "/api/v1/health")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "unhealthy", status.Checks["kafka-consumer"].Status)
}

func TestLiveAndReady(t *testing.T) {
	e := echo.New()
	checker := NewChecker("dev")
	checker.RegisterRoutes(e)

	assert.Equal(t, http.StatusOK, get(e, "/api/v1/health/live").Code)
	assert.Equal(t, http.StatusServiceUnavailable, get(e, "/api/v1/health/ready").Code)

	checker.SetReady(true)
	assert.Equal(t, http.StatusOK, get(e, "/api/v1/health/ready").Code)
}

func TestReady_RequiresProbes(t *testing.T) {
	e := echo.New()
	checker := NewChecker("dev")
	checker.RegisterRoutes(e)
	checker.SetReady(true)

	checker.AddProbe("kafka-consumer", staticProbe(false))
	assert.Equal(t, http.StatusServiceUnavailable, get(e, "/api/v1/health/ready").Code)

	checker.AddProbe("kafka-consumer", staticProbe(true))
	assert.Equal(t, http.StatusOK, get(e, "/api/v1/health/ready").Code)
}

func TestHealth_ListsNormalizers(t *testing.T) {
	e := echo.New()
	NewChecker("dev").RegisterRoutes(e)

	var status HealthStatus
	require.NoError(t, json.Unmarshal(get(e, "/api/v1/health").Body.Bytes(), &status))
	assert.Contains(t, status.Normalizers, "creditor")
}
