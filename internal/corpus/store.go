package corpus

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LoadError means the persisted corpus could not be read or failed schema
// validation. It is fatal to any operation needing the corpus.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load corpus %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// LoadRaw reads the raw corpus file: a JSON array of {"text": ...} objects.
func LoadRaw(path string) ([]RawPost, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var posts []RawPost
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("parse JSON: %w", err)}
	}

	return posts, nil
}

// LoadProcessed reads the processed corpus file and validates every record
// against the schema. A single invalid record fails the whole load; a corrupt
// corpus must be caught at startup, not deep inside selection.
func LoadProcessed(path string) ([]ProcessedPost, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var posts []ProcessedPost
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("parse JSON: %w", err)}
	}

	for i := range posts {
		if err := posts[i].Validate(); err != nil {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("post %d: %w", i, err)}
		}
	}

	return posts, nil
}

// SaveProcessed writes the processed corpus wholesale, replacing any previous
// file. The encoding is stable so identical input always produces identical
// bytes on disk.
func SaveProcessed(path string, posts []ProcessedPost) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create corpus directory: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(posts); err != nil {
		return fmt.Errorf("encode corpus: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write corpus: %w", err)
	}

	return nil
}

// Tags returns the distinct tags present in the corpus, in first-seen order.
func Tags(posts []ProcessedPost) []string {
	seen := make(map[string]bool)
	var tags []string
	for i := range posts {
		for _, tag := range posts[i].Tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	return tags
}
