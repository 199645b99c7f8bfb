package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/s2hstudio/insta-widget-backend/internal/widget"
	"github.com/s2hstudio/insta-widget-backend/pkg/config"
	"github.com/s2hstudio/insta-widget-backend/pkg/logger"
	"go.uber.org/fx"
)

// Opts holds dependencies for the HTTP server.
type Opts struct {
	fx.In

	LC     fx.Lifecycle
	Config *config.Config
	Logger logger.Logger
	Widget widget.Service
}

// New creates the widget HTTP server and manages its lifecycle.
func New(opts Opts) (*http.Server, error) {
	log := opts.Logger.WithComponent("HTTPServer")
	handler := NewHandler(opts.Widget, opts.Logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Config.App.Port),
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	opts.LC.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				ln, err := net.Listen("tcp", srv.Addr)
				if err != nil {
					return fmt.Errorf("failed to listen on %s: %w", srv.Addr, err)
				}

				log.Info("Starting server", "addr", srv.Addr)
				go func() {
					if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
						log.Error("Server failed", "error", err)
					}
				}()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				return srv.Shutdown(ctx)
			},
		},
	)

	return srv, nil
}
