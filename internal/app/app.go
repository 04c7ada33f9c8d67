package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sahanperera/postgen/internal/config"
	"github.com/sahanperera/postgen/internal/corpus"
	"github.com/sahanperera/postgen/internal/generation"
	"github.com/sahanperera/postgen/internal/history"
	"github.com/sahanperera/postgen/internal/normalizer"
	"github.com/sahanperera/postgen/internal/prompt"
	"github.com/sahanperera/postgen/internal/selector"
)

// App is the main application container holding all dependencies. The corpus
// is loaded once here and threaded through as a read-only value; nothing else
// holds corpus state.
type App struct {
	Config  *config.Config
	Corpus  []corpus.ProcessedPost
	Vocab   normalizer.Vocabulary
	Client  generation.Client
	History *history.Store
}

// Result is the outcome of one generation.
type Result struct {
	Post         string
	Prompt       string
	ExampleCount int
}

// New creates an application instance with all dependencies wired up.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	posts, err := corpus.LoadProcessed(cfg.CorpusPath)
	if err != nil {
		return nil, err
	}

	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}

	a := &App{
		Config: cfg,
		Corpus: posts,
		Vocab:  normalizer.DefaultVocabulary(),
		Client: client,
	}

	// History is a convenience record, not part of the generation contract;
	// run without it rather than failing.
	if cfg.DatabasePath != "" {
		store, err := history.NewStore(ctx, cfg.DatabasePath)
		if err != nil {
			slog.Warn("history disabled", "error", err)
		} else if err := store.Migrate(ctx); err != nil {
			slog.Warn("history disabled", "error", err)
			store.Close()
		} else {
			a.History = store
		}
	}

	return a, nil
}

// NewClient builds the generation client the configuration selects.
func NewClient(cfg *config.Config) (generation.Client, error) {
	switch cfg.Provider {
	case "anthropic", "":
		return generation.NewAnthropicClient(generation.AnthropicConfig{
			APIKey: cfg.AnthropicAPIKey,
			Model:  cfg.Model,
		}), nil
	case "openai":
		return generation.NewOpenAIClient(generation.OpenAIConfig{
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.Model,
			BaseURL: cfg.OpenAIBaseURL,
		})
	case "mock":
		return &generation.Mock{}, nil
	}
	return nil, fmt.Errorf("invalid PROVIDER: %s", cfg.Provider)
}

// Topics returns the enumerated topic list requests validate against.
func (a *App) Topics() []string {
	return a.Vocab.Tags()
}

// NewRequest validates user-facing parameters into a generation request.
func (a *App) NewRequest(topic, length, language string) (prompt.Request, error) {
	return prompt.NewRequest(topic, length, language, a.Topics())
}

// DryRun selects examples and builds the prompt without calling the
// provider.
func (a *App) DryRun(req prompt.Request) Result {
	examples := selector.SelectExamples(a.Corpus, req.Topic, req.Bucket, a.Config.MaxExamples)
	p := prompt.Build(prompt.Context{Request: req, Examples: examples})
	return Result{Prompt: p, ExampleCount: len(examples)}
}

// Generate runs the pipeline for one request: select examples, build the
// prompt, call the provider, strip any leaked reasoning and record history.
func (a *App) Generate(ctx context.Context, req prompt.Request) (Result, error) {
	examples := selector.SelectExamples(a.Corpus, req.Topic, req.Bucket, a.Config.MaxExamples)

	p := prompt.Build(prompt.Context{Request: req, Examples: examples})

	slog.Debug("generating post",
		"topic", req.Topic,
		"bucket", req.Bucket,
		"language", req.Language,
		"examples", len(examples),
	)

	raw, err := a.Client.Generate(ctx, p)
	if err != nil {
		return Result{}, err
	}

	post := generation.StripReasoning(raw)

	if a.History != nil {
		_, err := a.History.Record(ctx, history.Generation{
			Topic:        req.Topic,
			LengthBucket: string(req.Bucket),
			Language:     string(req.Language),
			Provider:     a.Config.Provider,
			Model:        a.Config.Model,
			PromptHash:   history.PromptHash(p),
			ExampleCount: len(examples),
			Output:       post,
		})
		if err != nil {
			slog.Warn("failed to record generation", "error", err)
		}
	}

	return Result{Post: post, Prompt: p, ExampleCount: len(examples)}, nil
}

// Close releases held resources.
func (a *App) Close() error {
	if a.History != nil {
		return a.History.Close()
	}
	return nil
}
