package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS documents (
	collection TEXT NOT NULL,
	id TEXT NOT NULL,
	data TEXT NOT NULL,
	updated_at INTEGER NOT NULL,
	PRIMARY KEY (collection, id)
)`

// SQLite is a Store backed by a SQLite database.
type SQLite struct {
	sqlDB *sql.DB
}

// OpenSQLite opens the SQLite database at dsn.
// An empty dsn opens a private in-memory database.
func OpenSQLite(ctx context.Context, dsn string) (*SQLite, error) {
	if strings.TrimSpace(dsn) == "" {
		dsn = ":memory:"
	}

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	// NOTE: every connection to ":memory:" is a new, empty database.
	if strings.Contains(dsn, ":memory:") {
		sqlDB.SetMaxOpenConns(1)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := sqlDB.ExecContext(ctx, sqliteSchema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create documents table: %w", err)
	}

	return &SQLite{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *SQLite) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}

	return s.sqlDB.Close()
}

// Get returns one Document, or ErrNotFound.
func (s *SQLite) Get(ctx context.Context, collection, id string) (Document, error) {
	if err := check(collection, id); err != nil {
		return Document{}, err
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT data, updated_at FROM documents WHERE collection = ? AND id = ?`,
		collection,
		id,
	)

	doc := Document{Collection: collection, ID: id}
	var data string
	var updatedAt int64
	if err := row.Scan(&data, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, fmt.Errorf("%w: %s/%s", ErrNotFound, collection, id)
		}

		return Document{}, fmt.Errorf("get document: %w", err)
	}

	if err := json.Unmarshal([]byte(data), &doc.Data); err != nil {
		return Document{}, fmt.Errorf("decode document: %w", err)
	}

	doc.UpdatedAt = fromMillis(updatedAt)
	return doc, nil
}

// List returns the Documents in the collection ordered by ID.
func (s *SQLite) List(ctx context.Context, collection string) ([]Document, error) {
	if err := check(collection, "*"); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, data, updated_at FROM documents WHERE collection = ? ORDER BY id`,
		collection,
	)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	docs := make([]Document, 0)
	for rows.Next() {
		doc := Document{Collection: collection}
		var data string
		var updatedAt int64
		if err := rows.Scan(&doc.ID, &data, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}

		if err := json.Unmarshal([]byte(data), &doc.Data); err != nil {
			return nil, fmt.Errorf("decode document %s: %w", doc.ID, err)
		}

		doc.UpdatedAt = fromMillis(updatedAt)
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	return docs, nil
}

// Put inserts or replaces a Document.
// A zero UpdatedAt is set to the current time.
func (s *SQLite) Put(ctx context.Context, doc Document) error {
	if err := check(doc.Collection, doc.ID); err != nil {
		return err
	}

	data, err := json.Marshal(doc.Data)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	if doc.UpdatedAt.IsZero() {
		doc.UpdatedAt = time.Now()
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO documents (collection, id, data, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT (collection, id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		doc.Collection,
		doc.ID,
		string(data),
		toMillis(doc.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put document: %w", err)
	}

	return nil
}

// Delete removes a Document, or returns ErrNotFound.
func (s *SQLite) Delete(ctx context.Context, collection, id string) error {
	if err := check(collection, id); err != nil {
		return err
	}

	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM documents WHERE collection = ? AND id = ?`, collection, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}

	if n == 0 {
		return fmt.Errorf("%w: %s/%s", ErrNotFound, collection, id)
	}

	return nil
}
