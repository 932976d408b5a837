package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quillnote/quill/internal/domain"
)

// ListDocuments returns all stored documents.
func (s *Service) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	docs, err := s.documents.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}

// CreateDocument stores a new document with the given title and initial
// blocks and returns it.
func (s *Service) CreateDocument(ctx context.Context, title string, blocks json.RawMessage) (*domain.Document, error) {
	now := time.Now()
	doc := &domain.Document{
		DocumentID: "doc_" + uuid.New().String()[:8],
		Title:      title,
		Blocks:     blocks,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.documents.CreateDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	return doc, nil
}

// GetDocument returns the document with the given id, or nil if absent.
func (s *Service) GetDocument(ctx context.Context, documentID string) (*domain.Document, error) {
	doc, err := s.documents.GetDocument(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return doc, nil
}

// UpdateDocument applies a partial update to a document and returns the
// stored result, or nil if the document does not exist.
func (s *Service) UpdateDocument(ctx context.Context, documentID string, patch domain.DocumentPatch) (*domain.Document, error) {
	doc, err := s.documents.UpdateDocument(ctx, documentID, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update document: %w", err)
	}
	return doc, nil
}
