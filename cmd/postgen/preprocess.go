package main

import (
	"context"
	"fmt"

	"github.com/sahanperera/postgen/internal/config"
	"github.com/sahanperera/postgen/internal/normalizer"
	"github.com/sahanperera/postgen/internal/preprocess"
	"github.com/spf13/cobra"
)

var preprocessCmd = &cobra.Command{
	Use:   "preprocess",
	Short: "Run the one-shot corpus preprocessing batch",
	Long: `Clean every raw post, derive line count, language and tags, and
replace the processed corpus wholesale. Records that fail normalization are
appended to the error log and skipped.

Examples:
  postgen preprocess
  RAW_CORPUS_PATH=data/raw_posts.json postgen preprocess`,
	RunE: runPreprocess,
}

func init() {
	rootCmd.AddCommand(preprocessCmd)
}

func runPreprocess(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := cfg.ValidateForPreprocess(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	pp := preprocess.New(preprocess.Config{
		Normalizer:   normalizer.New(nil),
		RawPath:      cfg.RawCorpusPath,
		OutPath:      cfg.CorpusPath,
		ErrorLogPath: cfg.ErrorLogPath,
	})

	result, err := pp.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Processed %d/%d posts (%d skipped)\n", result.Processed, result.Total, result.Skipped)
	if result.Skipped > 0 {
		fmt.Printf("Skip reasons logged to %s\n", cfg.ErrorLogPath)
	}

	return nil
}
