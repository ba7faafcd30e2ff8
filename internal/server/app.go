package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"chartserver/internal/config"
	"chartserver/internal/handlers"
	"chartserver/internal/metrics"
	"chartserver/internal/services"
)

type App struct {
	server *Server
	probes *Probes
	health *http.Server
}

// NewApp creates the stores, seeds sample data when configured and wires the router.
func NewApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	datasets, err := services.NewDatasetStore(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize dataset store: %w", err)
	}
	charts, err := services.NewChartStore(cfg.ExportsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize chart store: %w", err)
	}
	uploads, err := services.NewCsvUploadService(datasets, cfg.UploadsDir, cfg.MaxFileSize())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize upload service: %w", err)
	}

	if cfg.SeedSampleData {
		if err := Seed(datasets); err != nil {
			return nil, err
		}
	}

	handler := handlers.NewHandler(datasets, charts, uploads, handlers.Options{
		SampleRows: cfg.SampleRows,
		BaseURL:    cfg.PublicBaseURL,
	})
	router := NewRouter(handler, logger, cfg.MaxFileSize())

	app := &App{
		server: New(cfg.Addr(), router),
		probes: NewProbes(cfg.DataDir, cfg.ExportsDir),
	}
	if addr := cfg.HealthAddr(); addr != "" {
		app.health = &http.Server{Addr: addr, Handler: app.probes}
	}
	return app, nil
}

// Seed writes the sample datasets and counts them in the datasets-written metric.
func Seed(datasets *services.DatasetStore) error {
	names, err := services.SeedSampleData(datasets)
	metrics.DatasetsWritten.WithLabelValues("seed").Add(float64(len(names)))
	if err != nil {
		return fmt.Errorf("failed to seed sample data: %w", err)
	}
	zap.S().Infow("Sample datasets written", "datasets", names)
	return nil
}

func (a *App) Start() error {
	if a.health != nil {
		go func() {
			zap.S().Infof("Starting probe server on %s", a.health.Addr)
			if err := a.health.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				zap.S().Errorw("Probe server error", "error", err)
			}
		}()
	}
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	a.probes.MarkShuttingDown()
	err := a.server.Shutdown(ctx)
	if a.health != nil {
		err = errors.Join(err, a.health.Shutdown(ctx))
	}
	return err
}
