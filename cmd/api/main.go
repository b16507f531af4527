package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "github.com/iamnithyaramesh/project-manager/internal/adapters/http"
	"github.com/iamnithyaramesh/project-manager/internal/bootstrap"
	"github.com/iamnithyaramesh/project-manager/internal/config"
	"github.com/iamnithyaramesh/project-manager/internal/observability/logging"
	"github.com/iamnithyaramesh/project-manager/internal/observability/metrics"
)

const serviceName = "project-manager-api"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config error", "error", err)
		os.Exit(1)
	}

	logger := logging.NewJSONLogger(serviceName, cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("bootstrap error", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	serverMetrics := metrics.NewHTTPServerMetrics(serviceName)
	router := httpadapter.NewRouter(
		app.IngestUC,
		app.Documents,
		app.Materialize,
		app.Prioritize,
		app.Tasks,
		app.Projects,
		app.Export,
		app.Users,
		httpadapter.RouterOptions{
			ServiceName:    serviceName,
			MaxUploadBytes: cfg.MaxUploadBytes,
			Metrics:        serverMetrics,
		},
	).Handler()

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("api listening", "port", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("api server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("api shutdown error", "error", err)
	}
}
