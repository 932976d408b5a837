package llm

import (
	"context"

	"github.com/quillnote/quill/internal/domain"
)

// CompletionClient defines the interface for completion operations.
type CompletionClient interface {
	// Complete sends a conversation plus tool catalog to the completion
	// service and returns the model's response.
	Complete(ctx context.Context, messages []domain.Message, tools []domain.ToolDefinition) (*domain.CompletionResult, error)
}

// Ensure Client implements CompletionClient interface.
var _ CompletionClient = (*Client)(nil)
