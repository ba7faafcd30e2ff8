package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"chartserver/internal/config"
	"chartserver/internal/logger"
	"chartserver/internal/server"
	"chartserver/internal/services"
)

var (
	port       string
	dataDir    string
	uploadsDir string
	exportsDir string
	seed       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chartserver",
		Short: "Serve CSV datasets and chart configurations over REST",
		Long: `chartserver stores tabular datasets as CSV files, exposes them as JSON
under /api and lets callers create, upload and chart them.`,
		RunE:         runServe,
		SilenceUsage: true,
	}
	bindFlags(rootCmd)

	serveCmd := &cobra.Command{
		Use:          "serve",
		Short:        "Start the API server (default)",
		RunE:         runServe,
		SilenceUsage: true,
	}
	bindFlags(serveCmd)

	seedCmd := &cobra.Command{
		Use:          "seed",
		Short:        "Write the sample datasets and exit",
		RunE:         runSeed,
		SilenceUsage: true,
	}
	bindFlags(seedCmd)

	rootCmd.AddCommand(serveCmd, seedCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func bindFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&port, "port", "", "API listen port (overrides PORT)")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "Dataset directory (overrides DATA_DIR)")
	cmd.Flags().StringVar(&uploadsDir, "uploads-dir", "", "Upload staging directory (overrides UPLOADS_DIR)")
	cmd.Flags().StringVar(&exportsDir, "exports-dir", "", "Chart export directory (overrides EXPORTS_DIR)")
	cmd.Flags().BoolVar(&seed, "seed", true, "Write sample datasets on startup (overrides SEED_SAMPLE_DATA)")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Port = port
	}
	if flags.Changed("data-dir") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("uploads-dir") {
		cfg.UploadsDir = uploadsDir
	}
	if flags.Changed("exports-dir") {
		cfg.ExportsDir = exportsDir
	}
	if flags.Changed("seed") {
		cfg.SeedSampleData = seed
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := logger.Init(cfg.LogLevel)
	defer log.Sync()

	if cfg.LogLevel != "DEVELOPMENT" {
		gin.SetMode(gin.ReleaseMode)
	}

	app, err := server.NewApp(cfg, log)
	if err != nil {
		zap.S().Errorw("Failed to initialize app", "error", err)
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			zap.S().Errorw("Server error", "error", err)
		}
		return err
	case sig := <-quit:
		zap.S().Infow("Shutting down server", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := app.Shutdown(ctx); err != nil {
		zap.S().Errorw("Server forced to shutdown", "error", err)
		return err
	}
	zap.S().Info("Server exiting")
	return nil
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := logger.Init(cfg.LogLevel)
	defer log.Sync()

	datasets, err := services.NewDatasetStore(cfg.DataDir)
	if err != nil {
		return err
	}
	return server.Seed(datasets)
}
