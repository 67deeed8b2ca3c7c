package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeApp_WithoutDatabase(t *testing.T) {
	cfg := testEngineConfig(t)
	cfg.Server.Port = "8080"

	router, cleanup, err := InitializeApp(cfg)
	require.NoError(t, err)
	require.NotNil(t, router)
	require.NotNil(t, cleanup)
	defer cleanup()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInitializeApp_EngineError(t *testing.T) {
	cfg := testEngineConfig(t)
	cfg.Engine.DefaultLocale = "zz"

	router, cleanup, err := InitializeApp(cfg)
	assert.Error(t, err)
	assert.Nil(t, router)
	assert.Nil(t, cleanup)
}
