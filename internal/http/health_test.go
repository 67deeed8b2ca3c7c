package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundhaus/locale-service/internal/circuitbreaker"
)

func newHealthRouter(h *HealthHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h.Register(router)
	return router
}

func healthBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthHandler_Liveness(t *testing.T) {
	router := newHealthRouter(NewHealthHandler())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", healthBody(t, w)["status"])
}

func TestHealthHandler_Readiness_NoChecks(t *testing.T) {
	router := newHealthRouter(NewHealthHandler())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := healthBody(t, w)
	assert.Equal(t, "ok", body["status"])

	checks := body["checks"].(map[string]interface{})
	assert.Equal(t, "ok", checks["service"])
}

func TestHealthHandler_Readiness_HealthyChecker(t *testing.T) {
	h := NewHealthHandler()
	h.RegisterChecker("mongodb", HealthCheckerFunc(func() error { return nil }))
	router := newHealthRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	checks := healthBody(t, w)["checks"].(map[string]interface{})
	assert.Equal(t, "ok", checks["mongodb"])
}

func TestHealthHandler_Readiness_FailingChecker(t *testing.T) {
	h := NewHealthHandler()
	h.RegisterChecker("mongodb", HealthCheckerFunc(func() error {
		return errors.New("connection refused")
	}))
	router := newHealthRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	body := healthBody(t, w)
	assert.Equal(t, "degraded", body["status"])

	checks := body["checks"].(map[string]interface{})
	assert.Equal(t, "connection refused", checks["mongodb"])
}

func TestHealthHandler_Readiness_CircuitBreakerStates(t *testing.T) {
	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
		Name:             "mongodb-bundles",
	})

	h := NewHealthHandler()
	h.RegisterCircuitBreaker("mongodb_bundles", cb)
	router := newHealthRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	checks := healthBody(t, w)["checks"].(map[string]interface{})
	assert.Equal(t, "closed", checks["mongodb_bundles_circuit"])

	// Trip the breaker and the service reports degraded.
	_ = cb.Execute(req.Context(), func() error { return errors.New("down") })

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/readyz", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	body := healthBody(t, w)
	assert.Equal(t, "degraded", body["status"])
	checks = body["checks"].(map[string]interface{})
	assert.Equal(t, "open", checks["mongodb_bundles_circuit"])
}
