// Package httpserver builds the registry's HTTP server and owns its
// lifecycle timeouts.
package httpserver

import (
	"context"
	"net/http"
	"time"
)

// ShutdownTimeout bounds how long draining in-flight requests may take.
const ShutdownTimeout = 10 * time.Second

// New builds the server. Registry payloads are small (IDs and single
// records), so the write timeout is tight; the read-header timeout guards
// against slow-loris clients.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// Shutdown drains in-flight requests, giving up after ShutdownTimeout.
func Shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return server.Shutdown(ctx)
}
