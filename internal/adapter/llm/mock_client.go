package llm

import (
	"context"
	"fmt"

	"github.com/quillnote/quill/internal/domain"
)

// MockClient is a mock implementation of CompletionClient for local
// development without an API key.
type MockClient struct{}

// NewMockClient creates a new mock completion client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Ensure MockClient implements CompletionClient interface.
var _ CompletionClient = (*MockClient)(nil)

// Complete returns a canned response derived from the last user message.
// It never requests tool calls.
func (m *MockClient) Complete(ctx context.Context, messages []domain.Message, tools []domain.ToolDefinition) (*domain.CompletionResult, error) {
	var lastUserMessage string
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == domain.RoleUser {
			lastUserMessage = messages[i].Content
			break
		}
	}

	if lastUserMessage == "" {
		return &domain.CompletionResult{Content: "[MOCK] This is a mock response from the completion client."}, nil
	}

	return &domain.CompletionResult{
		Content: fmt.Sprintf("[MOCK] Received your message: %q. This is a mock response.", truncate(lastUserMessage, 100)),
	}, nil
}

// truncate truncates a string to the given length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
