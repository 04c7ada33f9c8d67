package preprocess

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahanperera/postgen/internal/corpus"
)

func writeRaw(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "raw.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("processes all valid posts in order", func(t *testing.T) {
		dir := t.TempDir()
		rawPath := writeRaw(t, dir, `[
			{"text": "First post about my job search.\nDay two."},
			{"text": "Second post, staying motivated."}
		]`)
		outPath := filepath.Join(dir, "processed.json")

		pp := New(Config{RawPath: rawPath, OutPath: outPath})
		result, err := pp.Run(ctx)
		require.NoError(t, err)

		assert.Equal(t, 2, result.Total)
		assert.Equal(t, 2, result.Processed)
		assert.Equal(t, 0, result.Skipped)

		posts, err := corpus.LoadProcessed(outPath)
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Contains(t, posts[0].Text, "First post")
		assert.Contains(t, posts[1].Text, "Second post")
	})

	t.Run("skips bad records without aborting", func(t *testing.T) {
		dir := t.TempDir()
		rawPath := writeRaw(t, dir, `[
			{"text": "Good post number one."},
			{"text": ""},
			{"text": "Good post number two."}
		]`)
		outPath := filepath.Join(dir, "processed.json")
		logPath := filepath.Join(dir, "errors.log")

		pp := New(Config{RawPath: rawPath, OutPath: outPath, ErrorLogPath: logPath})
		result, err := pp.Run(ctx)
		require.NoError(t, err)

		assert.Equal(t, 3, result.Total)
		assert.Equal(t, 2, result.Processed)
		assert.Equal(t, 1, result.Skipped)

		// Survivors keep their relative order
		posts, err := corpus.LoadProcessed(outPath)
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Contains(t, posts[0].Text, "number one")
		assert.Contains(t, posts[1].Text, "number two")

		// The failure is recorded with the record's index
		logData, err := os.ReadFile(logPath)
		require.NoError(t, err)
		assert.Contains(t, string(logData), "post 1:")
		assert.Contains(t, string(logData), "empty text")
	})

	t.Run("error log is append-only across runs", func(t *testing.T) {
		dir := t.TempDir()
		rawPath := writeRaw(t, dir, `[{"text": "ok"}, {"text": ""}]`)
		logPath := filepath.Join(dir, "errors.log")

		pp := New(Config{RawPath: rawPath, OutPath: filepath.Join(dir, "out.json"), ErrorLogPath: logPath})

		_, err := pp.Run(ctx)
		require.NoError(t, err)
		_, err = pp.Run(ctx)
		require.NoError(t, err)

		logData, err := os.ReadFile(logPath)
		require.NoError(t, err)
		assert.Equal(t, 2, strings.Count(string(logData), "post 1:"))
	})

	t.Run("reruns produce byte-identical output", func(t *testing.T) {
		dir := t.TempDir()
		rawPath := writeRaw(t, dir, `[
			{"text": "Stress විභාගය hard, but we keep going."},
			{"text": "Networking wins jobs."}
		]`)
		outPath := filepath.Join(dir, "processed.json")

		pp := New(Config{RawPath: rawPath, OutPath: outPath})

		_, err := pp.Run(ctx)
		require.NoError(t, err)
		first, err := os.ReadFile(outPath)
		require.NoError(t, err)

		_, err = pp.Run(ctx)
		require.NoError(t, err)
		second, err := os.ReadFile(outPath)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("fails when nothing survives", func(t *testing.T) {
		dir := t.TempDir()
		rawPath := writeRaw(t, dir, `[{"text": ""}, {"text": "\u0000"}]`)

		pp := New(Config{RawPath: rawPath, OutPath: filepath.Join(dir, "out.json")})
		_, err := pp.Run(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no posts survived")
	})

	t.Run("missing raw corpus is a load error", func(t *testing.T) {
		dir := t.TempDir()
		pp := New(Config{RawPath: filepath.Join(dir, "missing.json"), OutPath: filepath.Join(dir, "out.json")})

		_, err := pp.Run(ctx)
		var loadErr *corpus.LoadError
		assert.ErrorAs(t, err, &loadErr)
	})
}
