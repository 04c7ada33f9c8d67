package main

import (
	"context"
	"fmt"

	"github.com/sahanperera/postgen/internal/app"
	"github.com/sahanperera/postgen/internal/config"
	"github.com/spf13/cobra"
)

var (
	generateTopic    string
	generateLength   string
	generateLanguage string
	generateDryRun   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a post",
	Long: `Select few-shot examples for the requested topic and length, compose
the prompt and call the configured generation provider.

Examples:
  postgen generate --topic "Mental Health" --length Medium
  postgen generate --topic "Job Search" --length Short --language SinhalaEnglishMix
  postgen generate --topic Motivation --length Long --dry-run   # print the prompt only`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateTopic, "topic", "", "Topic to generate a post about")
	generateCmd.Flags().StringVar(&generateLength, "length", "Medium", "Desired length: Short, Medium or Long")
	generateCmd.Flags().StringVar(&generateLanguage, "language", "English", "Output language: English or SinhalaEnglishMix")
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "Print the composed prompt without calling the provider")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if !generateDryRun {
		if err := cfg.ValidateForGeneration(); err != nil {
			return fmt.Errorf("validate config: %w", err)
		}
	}

	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	req, err := a.NewRequest(generateTopic, generateLength, generateLanguage)
	if err != nil {
		return err
	}

	if generateDryRun {
		result := a.DryRun(req)
		fmt.Println("=== Prompt ===")
		fmt.Println()
		fmt.Println(result.Prompt)
		fmt.Printf("(%d examples, provider not called)\n", result.ExampleCount)
		return nil
	}

	result, err := a.Generate(ctx, req)
	if err != nil {
		return err
	}

	fmt.Println("=== Generated Post ===")
	fmt.Println()
	fmt.Println(result.Post)
	fmt.Println()
	fmt.Printf("Topic: %s | Length: %s | Language: %s | Examples used: %d\n",
		req.Topic, req.Bucket, req.Language, result.ExampleCount)

	return nil
}
