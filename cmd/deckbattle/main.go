package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ericogr/deckbattle/internal/api"
	"github.com/ericogr/deckbattle/internal/constants"
	"github.com/ericogr/deckbattle/internal/logging"
	"github.com/ericogr/deckbattle/internal/service"
	"github.com/ericogr/deckbattle/internal/version"

	"github.com/gin-gonic/gin"
)

func main() {
	defer logging.Sync()

	// Configuration path may be provided via DECKBATTLE_CONFIG or defaults
	// to ./deckbattle.yaml; built-in defaults apply when the file is absent.
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = constants.DefaultConfigPath
	}
	cfg := loadConfigOrExit(configPath)
	cat := buildCatalogOrExit(cfg)
	repo := createRepositoryOrExit(cfg.Database.Path)

	svc := service.NewBattleService(cfg, cat, repo)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Background scanner: abandon battles idle longer than the configured
	// timeout. Scan a few times per timeout window.
	scanEvery := cfg.Battle.IdleTimeout / 4
	if scanEvery < time.Second {
		scanEvery = time.Second
	}
	startIdleScanner(ctx, svc, scanEvery)

	router := gin.Default()
	api.RegisterRoutes(router, api.NewBattleHandler(svc))

	srv := &http.Server{Addr: cfg.Server.Address, Handler: router}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logging.Error("graceful shutdown failed", err, nil)
		}
	}()

	v := version.Get()
	logging.Info("Server started", logging.Fields{
		constants.LogFieldAddr: cfg.Server.Address,
		"version":              v.Version,
		"commit":               v.Commit,
	})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logging.Fatal("Failed to start server", err, nil)
	}
}
