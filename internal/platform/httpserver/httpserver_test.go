package httpserver_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustlink/internal/platform/httpserver"
)

func TestNewSetsTimeouts(t *testing.T) {
	server := httpserver.New(":0", http.NewServeMux())

	assert.Equal(t, ":0", server.Addr)
	assert.Equal(t, 5*time.Second, server.ReadHeaderTimeout)
	assert.Equal(t, 10*time.Second, server.ReadTimeout)
	assert.Equal(t, 15*time.Second, server.WriteTimeout)
	assert.Equal(t, 60*time.Second, server.IdleTimeout)
}

func TestShutdownDrainsIdleServer(t *testing.T) {
	server := httpserver.New(":0", http.NewServeMux())

	require.NoError(t, httpserver.Shutdown(server))
}
