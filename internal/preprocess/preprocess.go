package preprocess

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/sahanperera/postgen/internal/corpus"
	"github.com/sahanperera/postgen/internal/normalizer"
)

// Preprocessor runs the one-shot ETL pass over the raw corpus.
type Preprocessor struct {
	norm         *normalizer.Normalizer
	rawPath      string
	outPath      string
	errorLogPath string
}

// Config holds configuration for the preprocessor.
type Config struct {
	Normalizer   *normalizer.Normalizer
	RawPath      string
	OutPath      string
	ErrorLogPath string
}

// Result summarizes one batch run.
type Result struct {
	Total     int
	Processed int
	Skipped   int
}

// New creates a preprocessor.
func New(cfg Config) *Preprocessor {
	norm := cfg.Normalizer
	if norm == nil {
		norm = normalizer.New(nil)
	}
	return &Preprocessor{
		norm:         norm,
		rawPath:      cfg.RawPath,
		outPath:      cfg.OutPath,
		errorLogPath: cfg.ErrorLogPath,
	}
}

// Run normalizes every raw post and replaces the processed corpus wholesale.
// Records that fail normalization are logged to the error log and skipped;
// successes keep their relative input order. Reruns on identical raw input
// produce byte-identical output.
func (p *Preprocessor) Run(ctx context.Context) (Result, error) {
	rawPosts, err := corpus.LoadRaw(p.rawPath)
	if err != nil {
		return Result{}, err
	}

	slog.Info("starting corpus preprocessing",
		"raw", p.rawPath,
		"posts", len(rawPosts),
	)

	result := Result{Total: len(rawPosts)}
	processed := make([]corpus.ProcessedPost, 0, len(rawPosts))

	for i, raw := range rawPosts {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		post, err := p.norm.Normalize(raw.Text)
		if err != nil {
			slog.Warn("skipping post", "index", i, "error", err)
			if logErr := p.logFailure(i, err); logErr != nil {
				slog.Error("failed to record skip", "index", i, "error", logErr)
			}
			result.Skipped++
			continue
		}

		processed = append(processed, post)
		result.Processed++
	}

	if len(processed) == 0 {
		return result, fmt.Errorf("no posts survived preprocessing (%d raw, %d skipped)", result.Total, result.Skipped)
	}

	if err := corpus.SaveProcessed(p.outPath, processed); err != nil {
		return result, err
	}

	slog.Info("preprocessing complete",
		"processed", result.Processed,
		"skipped", result.Skipped,
		"out", p.outPath,
	)

	return result, nil
}

// logFailure appends one line per skipped record to the error log, for
// out-of-band inspection.
func (p *Preprocessor) logFailure(index int, cause error) error {
	if p.errorLogPath == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(p.errorLogPath), 0755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(p.errorLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open error log: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("%s post %d: %v\n", time.Now().UTC().Format(time.RFC3339), index, cause)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write error log: %w", err)
	}

	return nil
}
