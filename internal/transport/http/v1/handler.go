// Package v1 provides HTTP handlers for the assistant server.
package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/quillnote/quill/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Processing pipeline
	e.POST("/api/process", h.ProcessText)

	// Document API
	e.GET("/api/documents", h.ListDocuments)
	e.POST("/api/documents", h.CreateDocument)
	e.GET("/api/documents/:document_id", h.GetDocument)
	e.PUT("/api/documents/:document_id", h.UpdateDocument)

	// Speech API
	e.POST("/api/speech", h.Synthesize)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}
