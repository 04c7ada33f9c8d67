package history

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sahanperera/postgen/internal/history/migrations"
	_ "modernc.org/sqlite"
)

// Store keeps a record of generated posts in SQLite.
type Store struct {
	*sql.DB
}

// Generation is one recorded generation.
type Generation struct {
	ID           int64
	Topic        string
	LengthBucket string
	Language     string
	Provider     string
	Model        string
	PromptHash   string
	ExampleCount int
	Output       string
	CreatedAt    time.Time
}

// TopicCount is a per-topic generation total.
type TopicCount struct {
	Topic string
	Count int64
}

// NewStore opens (and if needed creates) the history database.
func NewStore(ctx context.Context, dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite doesn't handle concurrent writes well
	sqlDB.SetMaxOpenConns(1)

	if _, err := sqlDB.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := sqlDB.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	return &Store{DB: sqlDB}, nil
}

// Migrate runs all pending migrations.
func (s *Store) Migrate(ctx context.Context) error {
	slog.Debug("running history migrations")

	_, err := s.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	rows, err := s.QueryContext(ctx, "SELECT version FROM schema_migrations ORDER BY version")
	if err != nil {
		return fmt.Errorf("query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return fmt.Errorf("scan migration: %w", err)
		}
		applied[version] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate migrations: %w", err)
	}

	entries, err := fs.ReadDir(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	for _, file := range files {
		if applied[file] {
			continue
		}

		slog.Info("applying migration", "file", file)

		content, err := fs.ReadFile(migrations.FS, file)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}

		if _, err := s.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("apply migration %s: %w", file, err)
		}

		if _, err := s.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES (?)", file); err != nil {
			return fmt.Errorf("record migration %s: %w", file, err)
		}
	}

	return nil
}

// Record stores one generation.
func (s *Store) Record(ctx context.Context, g Generation) (int64, error) {
	res, err := s.ExecContext(ctx, `
		INSERT INTO generations (topic, length_bucket, language, provider, model, prompt_hash, example_count, output)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		g.Topic, g.LengthBucket, g.Language, g.Provider, g.Model, g.PromptHash, g.ExampleCount, g.Output,
	)
	if err != nil {
		return 0, fmt.Errorf("insert generation: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// ListRecent returns the most recent generations, newest first.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]Generation, error) {
	rows, err := s.QueryContext(ctx, `
		SELECT id, topic, length_bucket, language, provider, model, prompt_hash, example_count, output, created_at
		FROM generations
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query generations: %w", err)
	}
	defer rows.Close()

	var out []Generation
	for rows.Next() {
		var g Generation
		if err := rows.Scan(&g.ID, &g.Topic, &g.LengthBucket, &g.Language, &g.Provider,
			&g.Model, &g.PromptHash, &g.ExampleCount, &g.Output, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan generation: %w", err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate generations: %w", err)
	}

	return out, nil
}

// CountByTopic returns per-topic generation totals, highest first.
func (s *Store) CountByTopic(ctx context.Context) ([]TopicCount, error) {
	rows, err := s.QueryContext(ctx, `
		SELECT topic, COUNT(*) AS count
		FROM generations
		GROUP BY topic
		ORDER BY count DESC, topic`,
	)
	if err != nil {
		return nil, fmt.Errorf("query topic counts: %w", err)
	}
	defer rows.Close()

	var out []TopicCount
	for rows.Next() {
		var tc TopicCount
		if err := rows.Scan(&tc.Topic, &tc.Count); err != nil {
			return nil, fmt.Errorf("scan topic count: %w", err)
		}
		out = append(out, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate topic counts: %w", err)
	}

	return out, nil
}

// PromptHash fingerprints a prompt for the history record without storing the
// full prompt text.
func PromptHash(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}
