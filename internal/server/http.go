package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/shruti514/semantic-multi-agent-search/internal/config"
	"github.com/shruti514/semantic-multi-agent-search/internal/logger"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

type httpServer struct {
	server *http.Server

	// cancelRequests ends the base context of every request, which stops
	// open search streams.
	cancelRequests context.CancelFunc

	logger *logger.Logger
}

// newHTTPServer builds the HTTP server. No write timeout is set: search
// streams stay open for as long as the pipeline runs.
func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	baseCtx, cancel := context.WithCancel(context.Background())

	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
			BaseContext: func(net.Listener) context.Context {
				return baseCtx
			},
		},
		cancelRequests: cancel,
		logger:         logger,
	}
}

// listenAndServe blocks until the server is shut down. A graceful shutdown
// is not an error.
func (h *httpServer) listenAndServe() error {
	l, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return err
	}
	return h.serve(l)
}

func (h *httpServer) serve(l net.Listener) error {
	h.logger.Info().Str("address", l.Addr().String()).Msg("HTTP server listening")
	if err := h.server.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (h *httpServer) Shutdown() {
	h.cancelRequests()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Msg("HTTP server Shutdown")
	}
}
