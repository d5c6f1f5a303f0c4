package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/tursodatabase/go-libsql"

	"github.com/footworks/footyscope/apperr"
)

// SQLStore keeps the key-value table in a single-file sqlite database.
// Use "file:./footyscope.db" for a real device store or ":memory:" in tests.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(dsn string) (*SQLStore, error) {
	db, err := sql.Open("libsql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}

	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, apperr.Storage("get", err)
	}
	return value, true, nil
}

func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return apperr.Storage("set", err)
	}
	return nil
}

func (s *SQLStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return apperr.Storage("remove", err)
	}
	return nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
