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
	"github.com/ukaji3/sheetpreview-go/pkg/preview"
	"github.com/ukaji3/sheetpreview-go/pkg/preview/cache"
	"github.com/ukaji3/sheetpreview-go/pkg/preview/config"
	"golang.org/x/text/language"
)

var (
	configPath string
	listenAddr string
	rootDir    string
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve previews of workbooks in a directory over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML configuration file")
	cmd.Flags().StringVar(&listenAddr, "addr", "", "Listen address (overrides config)")
	cmd.Flags().StringVar(&rootDir, "root", "", "Directory holding <id>.xlsx documents (overrides config)")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if listenAddr != "" {
		cfg.Listen = listenAddr
	}
	if rootDir != "" {
		cfg.Root = rootDir
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		return fmt.Errorf("invalid locale %q: %w", cfg.Locale, err)
	}

	c := cache.New(cache.Options{
		MaxEntries: cfg.Cache.MaxEntries,
		MaxBytes:   cfg.Cache.MaxBytes,
		TTL:        cfg.Cache.TTL,
	})
	svc := preview.NewService(preview.DirProvider{Root: cfg.Root}, c, preview.Options{
		DefaultRows: cfg.Limits.DefaultRows,
		DefaultCols: cfg.Limits.DefaultCols,
		RowCeiling:  cfg.Limits.MaxRows,
		ColCeiling:  cfg.Limits.MaxCols,
		Locale:      tag,
		DateLayout:  cfg.DateLayout,
		Logger:      logger,
	})

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           preview.NewHandler(svc, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving previews", "addr", cfg.Listen, "root", cfg.Root)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
