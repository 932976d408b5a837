package toolserver

import (
	"context"

	"github.com/quillnote/quill/internal/domain"
)

// ToolServerClient defines the interface for tool server operations.
type ToolServerClient interface {
	// FetchTools retrieves the current tool catalog.
	FetchTools(ctx context.Context) ([]domain.ToolDefinition, error)

	// RunTools dispatches tool calls and returns the resulting messages.
	RunTools(ctx context.Context, calls []domain.ToolCall) ([]domain.Message, error)
}

// Ensure Client implements ToolServerClient interface.
var _ ToolServerClient = (*Client)(nil)
