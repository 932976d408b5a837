package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/quillnote/quill/internal/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}

func TestSQLiteStoreDocumentLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	defer store.Close()

	now := time.Now()
	doc := &domain.Document{
		DocumentID: "doc_1",
		Title:      "Meeting notes",
		Blocks:     json.RawMessage(`[{"type":"paragraph","text":"hello"}]`),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := store.CreateDocument(ctx, doc); err != nil {
		t.Fatalf("CreateDocument failed: %v", err)
	}

	got, err := store.GetDocument(ctx, "doc_1")
	if err != nil {
		t.Fatalf("GetDocument failed: %v", err)
	}
	if got == nil || got.Title != "Meeting notes" {
		t.Fatalf("unexpected document: %+v", got)
	}
	if string(got.Blocks) != `[{"type":"paragraph","text":"hello"}]` {
		t.Fatalf("unexpected blocks: %s", got.Blocks)
	}

	docs, err := store.ListDocuments(ctx)
	if err != nil {
		t.Fatalf("ListDocuments failed: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}

	newTitle := "Updated notes"
	updated, err := store.UpdateDocument(ctx, "doc_1", domain.DocumentPatch{
		Title:  &newTitle,
		Blocks: json.RawMessage(`[{"type":"heading","text":"hi"}]`),
	})
	if err != nil {
		t.Fatalf("UpdateDocument failed: %v", err)
	}
	if updated == nil || updated.Title != "Updated notes" {
		t.Fatalf("unexpected updated document: %+v", updated)
	}
	if string(updated.Blocks) != `[{"type":"heading","text":"hi"}]` {
		t.Fatalf("unexpected updated blocks: %s", updated.Blocks)
	}
}

func TestSQLiteStoreGetMissingDocument(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	defer store.Close()

	got, err := store.GetDocument(ctx, "doc_missing")
	if err != nil {
		t.Fatalf("GetDocument failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing document, got %+v", got)
	}

	updated, err := store.UpdateDocument(ctx, "doc_missing", domain.DocumentPatch{})
	if err != nil {
		t.Fatalf("UpdateDocument failed: %v", err)
	}
	if updated != nil {
		t.Fatalf("expected nil for missing document, got %+v", updated)
	}
}

func TestSQLiteStorePartialUpdate(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	defer store.Close()

	now := time.Now()
	doc := &domain.Document{
		DocumentID: "doc_2",
		Title:      "Original",
		Blocks:     json.RawMessage(`["a"]`),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := store.CreateDocument(ctx, doc); err != nil {
		t.Fatalf("CreateDocument failed: %v", err)
	}

	// Title-only patch leaves blocks untouched.
	newTitle := "Renamed"
	updated, err := store.UpdateDocument(ctx, "doc_2", domain.DocumentPatch{Title: &newTitle})
	if err != nil {
		t.Fatalf("UpdateDocument failed: %v", err)
	}
	if updated.Title != "Renamed" || string(updated.Blocks) != `["a"]` {
		t.Fatalf("unexpected document after patch: %+v", updated)
	}
}
