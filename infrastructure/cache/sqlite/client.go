// ABOUTME: SQLite-based cache implementation for persistent caching
// ABOUTME: Provides a file-based cache that survives application restarts

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// ErrCacheMiss is returned when the key is absent or expired
var ErrCacheMiss = errors.New("key not found")

// cleanupInterval is how often expired rows are purged
const cleanupInterval = 5 * time.Minute

// SQLiteCache implements the Cache interface on a local SQLite file
type SQLiteCache struct {
	db       *sql.DB
	filePath string
}

// NewSQLiteCache opens (or creates) a cache database at filePath
func NewSQLiteCache(filePath string) (*SQLiteCache, error) {
	if filePath == "" {
		filePath = "tweets-cache.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	c := &SQLiteCache{
		db:       db,
		filePath: filePath,
	}

	if err := c.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	go c.cleanupRoutine()

	return c, nil
}

// initSchema creates the cache table if it doesn't exist.
// expiry is a unix timestamp; 0 means the entry never expires.
func (c *SQLiteCache) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS tweet_cache (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			expiry INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_tweet_cache_expiry ON tweet_cache(expiry);
	`

	_, err := c.db.Exec(query)
	return err
}

// Get retrieves a value from the cache
func (c *SQLiteCache) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("key cannot be empty")
	}

	var value []byte

	query := "SELECT value FROM tweet_cache WHERE key = ? AND (expiry = 0 OR expiry > ?)"
	err := c.db.QueryRowContext(ctx, query, key, time.Now().Unix()).Scan(&value)

	if err == sql.ErrNoRows {
		return nil, ErrCacheMiss
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get value: %w", err)
	}

	return value, nil
}

// Set stores a value in the cache. A zero ttl stores it without expiry.
func (c *SQLiteCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	var expiry int64
	if ttl > 0 {
		expiry = time.Now().Add(ttl).Unix()
	}

	query := "INSERT OR REPLACE INTO tweet_cache (key, value, expiry) VALUES (?, ?, ?)"

	if _, err := c.db.ExecContext(ctx, query, key, value, expiry); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}

	return nil
}

// Delete removes a value from the cache
func (c *SQLiteCache) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	query := "DELETE FROM tweet_cache WHERE key = ?"

	if _, err := c.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}

	return nil
}

// cleanupRoutine periodically removes expired entries
func (c *SQLiteCache) cleanupRoutine() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		_, _ = c.db.Exec("DELETE FROM tweet_cache WHERE expiry != 0 AND expiry <= ?", time.Now().Unix())
	}
}

// Close closes the database connection
func (c *SQLiteCache) Close() error {
	return c.db.Close()
}
