package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/saulo-duarte/debate-friend/internal/config"
	"github.com/saulo-duarte/debate-friend/internal/container"
	"github.com/saulo-duarte/debate-friend/internal/router"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := container.New(ctx)
	if err != nil {
		log.Fatalf("failed to build container: %v", err)
	}

	srv := &http.Server{
		Addr: ":" + c.Config.Port,
		Handler: router.New(router.RouterConfig{
			DebateHandler: c.DebateContainer.Handler,
			AllowedOrigin: c.Config.AllowedOrigin,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		config.Logger.Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Logger.WithError(err).Fatal("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		config.Logger.WithError(err).Error("graceful shutdown failed")
	}
}
