package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/sahanperera/postgen/internal/config"
	"github.com/sahanperera/postgen/internal/history"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent generations",
	Long:  `Display recently generated posts and per-topic totals from the history database.`,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Number of recent generations to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cfg.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH is required for history")
	}

	store, err := history.NewStore(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("open history database: %w", err)
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	recent, err := store.ListRecent(ctx, historyLimit)
	if err != nil {
		return fmt.Errorf("list generations: %w", err)
	}

	if len(recent) == 0 {
		fmt.Println("No generations recorded yet.")
		return nil
	}

	fmt.Println("=== Recent Generations ===")
	fmt.Println()
	for _, g := range recent {
		fmt.Printf("[%s] %s | %s | %s | %s\n",
			g.CreatedAt.Format("2006-01-02 15:04"), g.Topic, g.LengthBucket, g.Language, g.Provider)
		fmt.Printf("  %s\n\n", firstLine(g.Output))
	}

	counts, err := store.CountByTopic(ctx)
	if err != nil {
		return fmt.Errorf("count by topic: %w", err)
	}

	fmt.Println("By topic:")
	for _, tc := range counts {
		fmt.Printf("  %s: %d\n", tc.Topic, tc.Count)
	}

	return nil
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	if len(line) > 100 {
		line = line[:97] + "..."
	}
	return line
}
