package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/sefazor/shootbook-backend/internal/config"
	"github.com/sefazor/shootbook-backend/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Config'i yükle
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	zl, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer func() { _ = zl.Sync() }()
	zap.ReplaceGlobals(zl)

	app, cleanup, err := InitializeApp(cfg, zl)
	if err != nil {
		zl.Fatal("failed to initialize application", zap.Error(err))
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		zl.Info("http server listening", zap.String("port", cfg.Port))
		return app.Fiber.Listen(":" + cfg.Port)
	})

	if app.Consumer != nil {
		g.Go(func() error {
			return app.Consumer.Run(gctx)
		})
	}

	// Sinyal gelince ya da bir goroutine hata verince sunucuyu kapat
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return app.Fiber.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		zl.Error("server stopped with error", zap.Error(err))
		return
	}
	zl.Info("server stopped")
}
