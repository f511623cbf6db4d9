package dictionary

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `CREATE TABLE IF NOT EXISTS glosses (
	word       TEXT PRIMARY KEY,
	gloss      TEXT NOT NULL,
	fetched_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

// SQLiteCache is a Cache backed by a sqlite database file
type SQLiteCache struct {
	db *sql.DB
}

// OpenSQLiteCache opens (creating if needed) the gloss cache at path
func OpenSQLiteCache(path string) (*SQLiteCache, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open gloss cache: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create gloss table: %w", err)
	}

	return &SQLiteCache{db: db}, nil
}

func (c *SQLiteCache) Get(word string) (string, bool, error) {
	var gloss string
	err := c.db.QueryRow(`SELECT gloss FROM glosses WHERE word = ?`, word).Scan(&gloss)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query gloss: %w", err)
	}
	return gloss, true, nil
}

func (c *SQLiteCache) Put(word, gloss string) error {
	_, err := c.db.Exec(`INSERT OR REPLACE INTO glosses (word, gloss) VALUES (?, ?)`, word, gloss)
	if err != nil {
		return fmt.Errorf("store gloss: %w", err)
	}
	return nil
}

func (c *SQLiteCache) Close() error {
	return c.db.Close()
}
