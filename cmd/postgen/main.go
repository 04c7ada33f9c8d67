package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "postgen",
	Short: "A few-shot LinkedIn post generator",
	Long: `Postgen generates short LinkedIn posts by combining a topic, length
and language selection with few-shot examples from a curated corpus,
delegating the text generation to an external LLM provider.`,
}

func init() {
	// Load .env file if present
	_ = godotenv.Load()

	// Set up logging
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
