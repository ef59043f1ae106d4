package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
)

// listener runs one http.Server with the lifecycle shared by the API and
// metrics servers.
type listener struct {
	logger     *slog.Logger
	name       string
	port       string
	server     *http.Server
	ready      chan struct{}
	inShutdown atomic.Bool
}

func newListener(logger *slog.Logger, name, port string) *listener {
	return &listener{
		logger: logger.With("component", name),
		name:   name,
		port:   port,
		ready:  make(chan struct{}),
	}
}

// start binds the port synchronously so a taken port fails startup, then serves
// in the background.
func (l *listener) start(ctx context.Context, handler http.Handler) error {
	if l.inShutdown.Load() {
		l.logger.InfoContext(ctx, "server is shutting down, skipping start")

		return nil
	}

	addr := net.JoinHostPort("", l.port)
	l.server = &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		MaxHeaderBytes:    maxHeaderBytes,
	}

	lc := &net.ListenConfig{
		KeepAliveConfig: net.KeepAliveConfig{
			Enable: true,
		},
	}

	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s tcp: %w", l.name, err)
	}

	l.logger.InfoContext(ctx, "server listening", "addr", ln.Addr().String())

	go func() {
		close(l.ready)

		if err := l.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.logger.ErrorContext(ctx, "server error", "reason", err)
		}
	}()

	return nil
}

func (l *listener) ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-l.ready:
		if l.inShutdown.Load() {
			return fmt.Errorf("%s is shutting down", l.name)
		}

		return nil
	default:
		return fmt.Errorf("%s is not ready", l.name)
	}
}

func (l *listener) shutdown(ctx context.Context) error {
	if !l.inShutdown.CompareAndSwap(false, true) {
		l.logger.ErrorContext(ctx, "server is already shutting down, skipping shutdown")

		return nil
	}

	if l.server == nil {
		return nil
	}

	l.logger.InfoContext(ctx, "shutting down server")

	if err := l.server.Shutdown(ctx); err != nil {
		l.logger.ErrorContext(ctx, "error shutting down server", "reason", err)

		return fmt.Errorf("%s shutdown: %w", l.name, err)
	}

	l.logger.InfoContext(ctx, "server closed properly")

	return nil
}
