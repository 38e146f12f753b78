package catalog

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Server runs the catalog [Handler] until its context is cancelled.
type Server struct {
	http   *http.Server
	logger *zap.Logger
}

func NewServer(address string, handler *Handler, logger *zap.Logger) *Server {
	return &Server{
		http: &http.Server{
			Addr:              address,
			Handler:           handler.Routes(),
			ReadHeaderTimeout: readHeaderTimeout,
			ErrorLog:          zap.NewStdLog(logger),
		},
		logger: logger,
	}
}

// Run listens on the configured address and serves requests.
// It shuts the server down gracefully once ctx is done.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return errors.Wrapf(err, "failed to listen on %s", s.http.Addr)
	}
	return s.Serve(ctx, listener)
}

// Serve is like [Server.Run] but accepts connections on the provided listener.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving catalog", zap.String("address", listener.Addr().String()))
		errCh <- s.http.Serve(listener)
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "server stopped")
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "failed to shut down server")
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "server stopped")
	}
	return nil
}
