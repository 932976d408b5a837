package v1

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/quillnote/quill/internal/domain"
)

// createDocumentRequest is the body of POST /api/documents.
type createDocumentRequest struct {
	Title  string          `json:"title"`
	Blocks json.RawMessage `json:"blocks,omitempty"`
}

// ListDocuments returns all documents.
// GET /api/documents
func (h *Handler) ListDocuments(c echo.Context) error {
	docs, err := h.service.ListDocuments(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	return c.JSON(http.StatusOK, docs)
}

// CreateDocument creates a new document.
// POST /api/documents
func (h *Handler) CreateDocument(c echo.Context) error {
	var req createDocumentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "title is required"})
	}

	doc, err := h.service.CreateDocument(c.Request().Context(), req.Title, req.Blocks)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, doc)
}

// GetDocument retrieves a single document.
// GET /api/documents/:document_id
func (h *Handler) GetDocument(c echo.Context) error {
	documentID := c.Param("document_id")

	doc, err := h.service.GetDocument(c.Request().Context(), documentID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if doc == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "document not found"})
	}
	return c.JSON(http.StatusOK, doc)
}

// UpdateDocument applies a partial update to a document.
// PUT /api/documents/:document_id
func (h *Handler) UpdateDocument(c echo.Context) error {
	documentID := c.Param("document_id")

	var patch domain.DocumentPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	doc, err := h.service.UpdateDocument(c.Request().Context(), documentID, patch)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if doc == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "document not found"})
	}
	return c.JSON(http.StatusOK, doc)
}
