// Package sqlite is a file-backed cache driver. Entries survive restarts,
// which makes it the persistent option when no redis server is available.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

var ErrNotFound = errors.New("sqlite: key not found")

type Config struct {
	// Path is the database file; it is created when missing.
	Path string `mapstructure:"path"`
}

type entry struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}

type Cache struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewCache(cfg *Config) (*Cache, error) {
	if cfg == nil || cfg.Path == "" {
		return nil, errors.New("sqlite cache path is required")
	}

	db, err := sqlx.Connect("sqlite", fmt.Sprintf("%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.Path))
	if err != nil {
		return nil, fmt.Errorf("connecting to sqlite cache %s : %w", cfg.Path, err)
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(string(goose.DialectSQLite3)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("setting dialect for migrations : %w", err)
	}
	if err := goose.Up(db.DB, "migrations"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("applying migration : %w", err)
	}

	c := &Cache{db: db, now: time.Now}
	// rows that expired while the process was down are never read again
	if _, err := c.PurgeExpired(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return c, nil
}

func (c *Cache) Get(ctx context.Context, key string) (interface{}, error) {
	var value string
	query := `SELECT value FROM cache_entry WHERE key = ? AND (expires_at IS NULL OR expires_at > ?)`
	err := c.db.GetContext(ctx, &value, query, key, c.now().UnixNano())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("getting key %s : %w", key, err)
	}
	return value, nil
}

// Set stores string or []byte values. A non-positive expiration keeps the
// entry until it is deleted.
func (c *Cache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	var text string
	switch v := value.(type) {
	case string:
		text = v
	case []byte:
		text = string(v)
	default:
		return fmt.Errorf("unsupported value type %T for key %s", value, key)
	}

	var expiresAt sql.NullInt64
	if expiration > 0 {
		expiresAt = sql.NullInt64{Int64: c.now().Add(expiration).UnixNano(), Valid: true}
	}

	query := `
		INSERT INTO cache_entry (key, value, expires_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at`
	if _, err := c.db.ExecContext(ctx, query, key, text, expiresAt); err != nil {
		return fmt.Errorf("setting key %s : %w", key, err)
	}
	return nil
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM cache_entry WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting key %s : %w", key, err)
	}
	return nil
}

// GetByPattern relies on GLOB, which shares the '*' '?' and '[...]' syntax
// of the other drivers' patterns.
func (c *Cache) GetByPattern(ctx context.Context, pattern string) (map[string]interface{}, error) {
	var entries []entry
	query := `SELECT key, value FROM cache_entry WHERE key GLOB ? AND (expires_at IS NULL OR expires_at > ?)`
	if err := c.db.SelectContext(ctx, &entries, query, pattern, c.now().UnixNano()); err != nil {
		return nil, fmt.Errorf("listing keys matching %s : %w", pattern, err)
	}

	result := make(map[string]interface{}, len(entries))
	for _, e := range entries {
		result[e.Key] = e.Value
	}
	return result, nil
}

// PurgeExpired removes entries whose expiration has passed. NewCache runs it
// once on open.
func (c *Cache) PurgeExpired(ctx context.Context) (int64, error) {
	res, err := c.db.ExecContext(ctx, `DELETE FROM cache_entry WHERE expires_at IS NOT NULL AND expires_at <= ?`, c.now().UnixNano())
	if err != nil {
		return 0, fmt.Errorf("purging expired entries : %w", err)
	}
	return res.RowsAffected()
}

func (c *Cache) Close() error {
	if err := c.db.Close(); err != nil {
		return fmt.Errorf("closing sqlite cache : %w", err)
	}
	return nil
}
