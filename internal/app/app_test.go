package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahanperera/postgen/internal/config"
	"github.com/sahanperera/postgen/internal/corpus"
	"github.com/sahanperera/postgen/internal/generation"
	"github.com/sahanperera/postgen/internal/normalizer"
)

func newTestApp(client generation.Client) *App {
	return &App{
		Config: &config.Config{Provider: "mock", MaxExamples: 2},
		Corpus: []corpus.ProcessedPost{
			{Text: "Mid-week slump? Breathe.\nYou are doing fine.\nSix lines though.\nFour.\nFive.\nSix.", LineCount: 6, Language: corpus.LanguageEnglish, Tags: []string{"Mental Health"}},
			{Text: "Job hunting tip: follow up.", LineCount: 1, Language: corpus.LanguageEnglish, Tags: []string{"Job Search"}},
		},
		Vocab:  normalizer.DefaultVocabulary(),
		Client: client,
	}
}

func TestNewClient(t *testing.T) {
	t.Run("anthropic", func(t *testing.T) {
		client, err := NewClient(&config.Config{Provider: "anthropic", AnthropicAPIKey: "k"})
		require.NoError(t, err)
		assert.IsType(t, &generation.AnthropicClient{}, client)
	})

	t.Run("openai", func(t *testing.T) {
		client, err := NewClient(&config.Config{Provider: "openai", OpenAIAPIKey: "k"})
		require.NoError(t, err)
		assert.IsType(t, &generation.OpenAIClient{}, client)
	})

	t.Run("mock", func(t *testing.T) {
		client, err := NewClient(&config.Config{Provider: "mock"})
		require.NoError(t, err)
		assert.IsType(t, &generation.Mock{}, client)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewClient(&config.Config{Provider: "abacus"})
		assert.Error(t, err)
	})
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("medium mental health scenario", func(t *testing.T) {
		a := newTestApp(&generation.Mock{Response: "A calm, supportive post."})

		req, err := a.NewRequest("Mental Health", "Medium", "English")
		require.NoError(t, err)

		result, err := a.Generate(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, "A calm, supportive post.", result.Post)
		assert.Equal(t, 1, result.ExampleCount)
		// The matching corpus post is embedded verbatim in the prompt
		assert.Contains(t, result.Prompt, "Mid-week slump? Breathe.")
		assert.Contains(t, result.Prompt, "Topic: Mental Health")
		assert.Contains(t, result.Prompt, "6 to 10 lines")
	})

	t.Run("propagates generation errors", func(t *testing.T) {
		a := newTestApp(&generation.Mock{Err: assert.AnError})

		req, err := a.NewRequest("Job Search", "Short", "English")
		require.NoError(t, err)

		_, err = a.Generate(ctx, req)
		var genErr *generation.Error
		assert.ErrorAs(t, err, &genErr)
	})

	t.Run("dry run never calls the provider", func(t *testing.T) {
		a := newTestApp(&generation.Mock{Err: assert.AnError})

		req, err := a.NewRequest("Job Search", "Short", "English")
		require.NoError(t, err)

		result := a.DryRun(req)
		assert.Contains(t, result.Prompt, "Topic: Job Search")
		assert.Equal(t, 1, result.ExampleCount)
	})

	t.Run("request validation rejects bad input", func(t *testing.T) {
		a := newTestApp(&generation.Mock{})

		_, err := a.NewRequest("Not A Topic", "Short", "English")
		assert.Error(t, err)

		_, err = a.NewRequest("Job Search", "Tiny", "English")
		assert.Error(t, err)
	})
}
