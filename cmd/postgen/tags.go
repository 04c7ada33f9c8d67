package main

import (
	"fmt"

	"github.com/sahanperera/postgen/internal/config"
	"github.com/sahanperera/postgen/internal/corpus"
	"github.com/sahanperera/postgen/internal/normalizer"
	"github.com/spf13/cobra"
)

var tagsFromCorpus bool

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the available topics",
	Long: `List the topics a generation request may use. By default this is the
controlled vocabulary; --corpus lists the tags actually present in the
processed corpus instead.`,
	RunE: runTags,
}

func init() {
	tagsCmd.Flags().BoolVar(&tagsFromCorpus, "corpus", false, "List tags present in the processed corpus")
	rootCmd.AddCommand(tagsCmd)
}

func runTags(cmd *cobra.Command, args []string) error {
	if !tagsFromCorpus {
		for _, tag := range normalizer.DefaultVocabulary().Tags() {
			fmt.Println(tag)
		}
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	posts, err := corpus.LoadProcessed(cfg.CorpusPath)
	if err != nil {
		return err
	}

	for _, tag := range corpus.Tags(posts) {
		fmt.Println(tag)
	}
	return nil
}
