package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/vit0-9/cors_inspector/pkg/config"
	"github.com/vit0-9/cors_inspector/pkg/logger"
	"github.com/vit0-9/cors_inspector/pkg/utils"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup happens before exit.
func run() int {
	dotEnvErr := config.LoadDotEnv()
	logger.Setup(config.LogLevel())
	if dotEnvErr != nil {
		logrus.WithError(dotEnvErr).Debug("No .env file loaded, using environment variables from system if set")
	}
	cfg := config.Load()

	utils.LoadMaxMindDBs(cfg.CityDBPath, cfg.ASNDBPath)
	defer utils.CloseMaxMindDBs()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := NewApp(cfg, utils.NewHTTPProber(cfg.ProbeTimeout))
	if err != nil {
		logrus.WithError(err).Error("Failed to initialize application")
		return 1
	}

	ready := make(chan struct{})
	if cfg.OpenBrowser {
		utils.OpenBrowserWhenReady(ctx, ready, cfg.BrowserURL())
	}

	if err := app.Start(ctx, ready); err != nil {
		logrus.WithError(err).Error("Server stopped")
		return 1
	}
	return 0
}
