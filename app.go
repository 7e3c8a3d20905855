package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vit0-9/cors_inspector/handlers"
	"github.com/vit0-9/cors_inspector/pkg/config"
	"github.com/vit0-9/cors_inspector/pkg/logger"
	"github.com/vit0-9/cors_inspector/pkg/utils"
)

const shutdownTimeout = 5 * time.Second

// App encapsulates all the components of the application
type App struct {
	Config          config.Config
	Router          *gin.Engine
	InspectHandlers *handlers.InspectHandlers
}

// NewApp creates and initializes a new application instance
func NewApp(cfg config.Config, prober utils.Prober) (*App, error) {
	tmpl, err := handlers.LoadTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}

	router := gin.New()
	router.Use(logger.RequestLogger(), gin.Recovery())
	router.SetHTMLTemplate(tmpl)

	app := &App{
		Config:          cfg,
		Router:          router,
		InspectHandlers: handlers.NewInspectHandlers(prober, handlers.TemplateName(cfg.Presentation)),
	}

	app.setupRoutes()
	return app, nil
}

// setupRoutes defines all the application routes
func (app *App) setupRoutes() {
	app.Router.GET("/", app.InspectHandlers.InspectHandler)

	// Everything else, including other methods on "/", is a plain 404.
	app.Router.NoRoute(app.InspectHandlers.NotFoundHandler)
}

// Start binds the listener, closes ready once it accepts connections and serves
// until ctx is cancelled.
func (app *App) Start(ctx context.Context, ready chan<- struct{}) error {
	ln, err := net.Listen("tcp", app.Config.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", app.Config.Addr(), err)
	}

	srv := &http.Server{
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logrus.WithField("addr", ln.Addr().String()).Infof("Server running at %s", app.Config.BrowserURL())
	if ready != nil {
		close(ready)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logrus.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
