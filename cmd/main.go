package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sayed725/express-server/internal/config"
	"github.com/sayed725/express-server/internal/controller"
	"github.com/sayed725/express-server/internal/database"
	"github.com/sayed725/express-server/internal/repository"
	"github.com/sayed725/express-server/internal/routes"
	"github.com/sayed725/express-server/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Error(ctx, "Config load failed", "error", err)
		os.Exit(1)
	}

	pg, err := database.Open(ctx, cfg)
	if err != nil {
		logger.Error(ctx, "Database not available; exiting", "error", err)
		os.Exit(1)
	}
	defer pg.Close()

	// The server must not come up against a schema it could not establish.
	if err := pg.EnsureSchema(ctx); err != nil {
		logger.Error(ctx, "Schema init failed", "error", err)
		os.Exit(1)
	}

	users := controller.NewUsers(repository.NewUsers(pg, cfg.QueryTimeout))
	todos := controller.NewTodos(repository.NewTodos(pg, cfg.QueryTimeout))

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      routes.Router(cfg.JWTSecret, users, todos),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		logger.Info(gctx, "HTTP server listening", "port", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info(ctx, "Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error(ctx, "Server error", "error", err)
		os.Exit(1)
	}
	logger.Info(ctx, "Server stopped")
}
