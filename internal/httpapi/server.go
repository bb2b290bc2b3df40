package httpapi

import (
	"net/http"
	"time"
)

// NewServer builds an http.Server with the API routes registered.
func NewServer(addr string, h *Handler) *http.Server {
	mux := http.NewServeMux()
	h.Register(mux)

	return &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Minute, // BFS near its depth ceiling can run long
	}
}
