package httpserver

import (
	"net/http"
	"time"
)

// New builds an HTTP server with timeouts sized for short JSON requests.
// requestTimeout bounds handler time; the write timeout leaves headroom above it.
func New(addr string, handler http.Handler, requestTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      requestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
