// Package main provides the CLI entry point for visitdash.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/ukaji3/visitdash/internal/config"
	"github.com/ukaji3/visitdash/internal/logging"
	"github.com/ukaji3/visitdash/pkg/visitdash"
	"github.com/ukaji3/visitdash/pkg/visitdash/render"
	"github.com/ukaji3/visitdash/pkg/visitdash/server"
	"github.com/ukaji3/visitdash/pkg/visitdash/tui"
	"go.uber.org/zap"
)

var (
	configPath string
	logLevel   string
	listenAddr string
	finderURL  string
	visitsFile string
	logFile    string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "visitdash",
		Short: "Dashboards over sales-visit spreadsheets",
		Long: `visitdash loads sales-visit workbooks and shows them as an address
finder and a visits dashboard, in the browser or in the terminal.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (default: built-in settings)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve both dashboards over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&listenAddr, "listen", "", "Listen address (default from config, :8501)")

	finderCmd := &cobra.Command{
		Use:   "finder",
		Short: "Look up the latest visit to an address in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runFinder,
	}
	finderCmd.Flags().StringVar(&finderURL, "url", "", "Workbook export URL (default from config)")
	finderCmd.Flags().StringVar(&logFile, "log-file", "visitdash.log", "File receiving logs while the terminal UI runs")

	visitsCmd := &cobra.Command{
		Use:   "visits",
		Short: "Explore the commercial visits workbook in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runVisits,
	}
	visitsCmd.Flags().StringVar(&visitsFile, "file", "", "Visits workbook (default from config, visitas.xlsx)")
	visitsCmd.Flags().StringVar(&logFile, "log-file", "visitdash.log", "File receiving logs while the terminal UI runs")

	rootCmd.AddCommand(serveCmd, finderCmd, visitsCmd)
	return rootCmd
}

// loadConfig reads the config file and applies the persistent flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func httpClient(cfg *config.Config) (*http.Client, error) {
	timeout, err := cfg.Timeout()
	if err != nil {
		return nil, err
	}
	return &http.Client{Timeout: timeout}, nil
}

// finderSource prefers the export URL and falls back to a local copy.
func finderSource(cfg *config.Config) visitdash.Source {
	if cfg.Finder.URL != "" {
		return visitdash.Source{URL: cfg.Finder.URL}
	}
	return visitdash.Source{Path: cfg.Finder.Path}
}

func visitsSource(cfg *config.Config) visitdash.Source {
	if cfg.Visits.URL != "" {
		return visitdash.Source{URL: cfg.Visits.URL}
	}
	return visitdash.Source{Path: cfg.Visits.Path}
}

// finderCache reads every regional sheet and tags rows with their region.
func finderCache(cfg *config.Config, client *http.Client, logger *zap.Logger) (*visitdash.Cache, visitdash.Source) {
	src := finderSource(cfg)
	opts := visitdash.Options{
		SheetColumn: cfg.Finder.SheetColumn,
		Range:       cfg.Finder.Range,
		DateColumns: []string{cfg.Finder.TimestampColumn},
		HTTPClient:  client,
		Logger:      logger.Named("finder"),
	}
	return visitdash.NewSourceCache(src, opts), src
}

func visitsCache(cfg *config.Config, client *http.Client, logger *zap.Logger) (*visitdash.Cache, visitdash.Source) {
	src := visitsSource(cfg)
	opts := visitdash.Options{
		Sheet:       cfg.Visits.Sheet,
		Range:       cfg.Visits.Range,
		DateColumns: cfg.Visits.DateColumns,
		HTTPClient:  client,
		Logger:      logger.Named("visits"),
	}
	return visitdash.NewSourceCache(src, opts), src
}

func schemas(cfg *config.Config) (render.Schema, render.FinderSchema) {
	return render.Schema{
			Salesperson:    cfg.Visits.SalespersonColumn,
			Customer:       cfg.Visits.CustomerColumn,
			Status:         cfg.Visits.StatusColumn,
			Date:           cfg.Visits.DateColumn,
			DefaultColumns: cfg.Visits.DefaultColumns,
		}, render.FinderSchema{
			Address:   cfg.Finder.AddressColumn,
			Timestamp: cfg.Finder.TimestampColumn,
		}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if listenAddr != "" {
		cfg.Listen = listenAddr
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	client, err := httpClient(cfg)
	if err != nil {
		return err
	}
	visits, visitsSrc := visitsCache(cfg, client, logger)
	finder, finderSrc := finderCache(cfg, client, logger)
	schema, finderSchema := schemas(cfg)

	handler := server.New(
		server.Dashboard{Cache: visits, Source: visitsSrc.String()},
		server.Dashboard{Cache: finder, Source: finderSrc.String()},
		schema, finderSchema, logger.Named("http"),
	)
	httpServer := &http.Server{
		Addr:              cfg.Listen,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Listen))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}

// tuiLogger keeps log output off the terminal while a UI runs.
func tuiLogger(cfg *config.Config) (*zap.Logger, error) {
	if logFile == "" {
		return zap.NewNop(), nil
	}
	return logging.ToFile(logFile, cfg.Logging.Level)
}

func runFinder(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if finderURL != "" {
		cfg.Finder.URL = finderURL
	}

	logger, err := tuiLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	client, err := httpClient(cfg)
	if err != nil {
		return err
	}
	cache, src := finderCache(cfg, client, logger)
	_, finderSchema := schemas(cfg)
	return tui.RunFinder(cmd.Context(), cache, src.String(), finderSchema)
}

func runVisits(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if visitsFile != "" {
		cfg.Visits.Path = visitsFile
		cfg.Visits.URL = ""
	}

	logger, err := tuiLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	client, err := httpClient(cfg)
	if err != nil {
		return err
	}
	cache, src := visitsCache(cfg, client, logger)
	schema, _ := schemas(cfg)
	return tui.RunVisits(cmd.Context(), cache, src.String(), schema)
}
