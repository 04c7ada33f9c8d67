package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sahanperera/postgen/internal/app"
	"github.com/sahanperera/postgen/internal/config"
	"github.com/sahanperera/postgen/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the generation API over HTTP",
	Long: `Start the HTTP API the hosted form talks to.

Endpoints:
  GET  /healthz       liveness and corpus size
  GET  /api/tags      available topics
  POST /api/generate  {"topic","length","language"} -> {"post"}`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := cfg.ValidateForServe(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	slog.Info("corpus loaded", "posts", len(a.Corpus), "provider", cfg.Provider)

	return server.New(a).Run(cfg.ServeAddr)
}
