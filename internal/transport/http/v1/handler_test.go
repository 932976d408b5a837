package v1

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quillnote/quill/internal/adapter/tts"
	"github.com/quillnote/quill/internal/config"
	"github.com/quillnote/quill/internal/domain"
	"github.com/quillnote/quill/internal/policy"
	"github.com/quillnote/quill/internal/repository"
	"github.com/quillnote/quill/internal/service"
)

// stubCompletionClient replays canned completion results.
type stubCompletionClient struct {
	results []*domain.CompletionResult
	errs    []error
	calls   int
}

func (s *stubCompletionClient) Complete(ctx context.Context, messages []domain.Message, tools []domain.ToolDefinition) (*domain.CompletionResult, error) {
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return nil, s.errs[i]
	}
	if i < len(s.results) {
		return s.results[i], nil
	}
	return &domain.CompletionResult{Content: "default"}, nil
}

// stubToolServer serves a fixed catalog and tool results.
type stubToolServer struct {
	tools      []domain.ToolDefinition
	fetchErr   error
	runResult  []domain.Message
	runErr     error
	fetchCalls int
	runCalls   int
}

func (s *stubToolServer) FetchTools(ctx context.Context) ([]domain.ToolDefinition, error) {
	s.fetchCalls++
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	return s.tools, nil
}

func (s *stubToolServer) RunTools(ctx context.Context, calls []domain.ToolCall) ([]domain.Message, error) {
	s.runCalls++
	if s.runErr != nil {
		return nil, s.runErr
	}
	return s.runResult, nil
}

// newTestHandler builds a handler backed by stub collaborators, an
// in-memory document store, and the default policy.
func newTestHandler(t *testing.T, llmClient *stubCompletionClient, toolClient *stubToolServer, ttsClient *tts.Client) (*Handler, *repository.SQLiteStore) {
	t.Helper()

	store, err := repository.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	engine, err := policy.NewEngine(context.Background(), policy.DefaultPolicy)
	require.NoError(t, err)

	svc := service.New(config.Load(), llmClient, toolClient, ttsClient, store, engine)
	return NewHandler(svc), store
}
