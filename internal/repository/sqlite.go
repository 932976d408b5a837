// Package repository provides SQLite-backed persistence for documents.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/quillnote/quill/internal/domain"
)

// DocumentStore defines the persistence operations for documents.
type DocumentStore interface {
	ListDocuments(ctx context.Context) ([]domain.Document, error)
	CreateDocument(ctx context.Context, doc *domain.Document) error
	GetDocument(ctx context.Context, documentID string) (*domain.Document, error)
	UpdateDocument(ctx context.Context, documentID string, patch domain.DocumentPatch) (*domain.Document, error)
	Close() error
}

// SQLiteStore implements DocumentStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// Ensure SQLiteStore implements DocumentStore interface.
var _ DocumentStore = (*SQLiteStore)(nil)

// NewSQLiteStore creates a new SQLite store.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection to avoid schema/data disappearing across goroutines.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			document_id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			blocks TEXT,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_documents_updated ON documents(updated_at)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ListDocuments returns all documents, most recently updated first.
func (s *SQLiteStore) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT document_id, title, blocks, created_at, updated_at
		 FROM documents ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	return docs, rows.Err()
}

// CreateDocument inserts a new document.
func (s *SQLiteStore) CreateDocument(ctx context.Context, doc *domain.Document) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (document_id, title, blocks, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		doc.DocumentID, doc.Title, nullableJSON(doc.Blocks), doc.CreatedAt, doc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

// GetDocument returns the document with the given id, or nil if absent.
func (s *SQLiteStore) GetDocument(ctx context.Context, documentID string) (*domain.Document, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT document_id, title, blocks, created_at, updated_at
		 FROM documents WHERE document_id = ?`, documentID)

	doc, err := scanDocument(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// UpdateDocument applies a partial update and returns the stored result,
// or nil if the document does not exist.
func (s *SQLiteStore) UpdateDocument(ctx context.Context, documentID string, patch domain.DocumentPatch) (*domain.Document, error) {
	existing, err := s.GetDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	if patch.Title != nil {
		existing.Title = *patch.Title
	}
	if patch.Blocks != nil {
		existing.Blocks = patch.Blocks
	}
	existing.UpdatedAt = time.Now()

	_, err = s.db.ExecContext(ctx,
		`UPDATE documents SET title = ?, blocks = ?, updated_at = ? WHERE document_id = ?`,
		existing.Title, nullableJSON(existing.Blocks), existing.UpdatedAt, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to update document: %w", err)
	}
	return existing, nil
}

// rowScanner matches both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDocument(row rowScanner) (*domain.Document, error) {
	var doc domain.Document
	var blocks sql.NullString
	if err := row.Scan(&doc.DocumentID, &doc.Title, &blocks, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan document: %w", err)
	}
	if blocks.Valid && blocks.String != "" {
		doc.Blocks = []byte(blocks.String)
	}
	return &doc, nil
}

func nullableJSON(raw []byte) interface{} {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}
