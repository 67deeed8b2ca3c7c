package app

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	handler := http.NewServeMux()
	server := NewServer(handler, "9090")

	require.NotNil(t, server)
	assert.Equal(t, ":9090", server.httpServer.Addr)
	assert.Equal(t, 15*time.Second, server.httpServer.ReadTimeout)
	assert.Equal(t, 15*time.Second, server.httpServer.WriteTimeout)
	assert.Equal(t, 60*time.Second, server.httpServer.IdleTimeout)
	assert.Equal(t, 1<<20, server.httpServer.MaxHeaderBytes)
	assert.Equal(t, 10*time.Second, server.shutdownTimeout)
}

func TestServer_Shutdown_NotStarted(t *testing.T) {
	server := NewServer(http.NewServeMux(), "9091")
	assert.NoError(t, server.Shutdown())
}

func TestServer_Run_ListenError(t *testing.T) {
	// An unparseable port makes ListenAndServe fail immediately, so Run
	// returns without waiting for a signal.
	server := NewServer(http.NewServeMux(), "not-a-port")
	assert.Error(t, server.Run())
}
