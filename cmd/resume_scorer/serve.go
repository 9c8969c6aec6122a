package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-scorer/internal/db"
	"github.com/jonathan/resume-scorer/internal/fetch"
	"github.com/jonathan/resume-scorer/internal/server"
	"github.com/jonathan/resume-scorer/internal/server/ratelimit"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the analyze, match and rank endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	log, err := newLogger(cfg, "stdout")
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	analyzer, closeGrammar, err := newAnalyzer(ctx, cfg, log)
	defer func() { _ = closeGrammar() }()
	if err != nil {
		return err
	}

	rl := cfg.RateLimit
	opts := server.Options{
		Addr:     cfg.Address(),
		Analyzer: analyzer,
		Documents: fetch.DocumentOptions{
			LocalDir: cfg.Storage.LocalDir,
			BaseURL:  cfg.Storage.BaseURL,
		},
		CallbackBaseURL: cfg.CallbackBaseURL,
		CallbackTimeout: cfg.CallbackTimeout,
		RateLimit:       ratelimit.NewConfig(rl.Enabled, rl.DefaultLimit, rl.DefaultWindow, rl.Whitelist, rl.Blacklist),
		Logger:          log,
		Version:         version,
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer database.Close()
		if err := database.EnsureSchema(ctx); err != nil {
			return err
		}
		opts.Store = database
		log.Info("persistence enabled")
	}

	if cfg.AuthEnabled() {
		jwtCfg, err := cfg.JWT()
		if err != nil {
			return err
		}
		opts.JWT = jwtCfg
		log.Info("service token auth enabled")
	}

	if err := server.New(opts).Start(ctx); err != nil {
		log.Error("server failed", zap.Error(err))
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
