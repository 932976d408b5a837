// Package service implements the request-processing pipeline and the
// supporting document and speech services.
package service

import (
	"github.com/quillnote/quill/internal/adapter/llm"
	"github.com/quillnote/quill/internal/adapter/toolserver"
	"github.com/quillnote/quill/internal/adapter/tts"
	"github.com/quillnote/quill/internal/config"
	"github.com/quillnote/quill/internal/policy"
	"github.com/quillnote/quill/internal/repository"
)

// Service wires the process-wide clients and stores. All fields are set
// once at startup and never mutated afterwards, so a single Service is
// safe for concurrent use by many in-flight requests.
type Service struct {
	llmClient    llm.CompletionClient
	toolClient   toolserver.ToolServerClient
	ttsClient    *tts.Client
	documents    repository.DocumentStore
	policyEngine *policy.Engine
	config       *config.Config
}

// New creates a new service.
func New(cfg *config.Config, llmClient llm.CompletionClient, toolClient toolserver.ToolServerClient, ttsClient *tts.Client, documents repository.DocumentStore, policyEngine *policy.Engine) *Service {
	return &Service{
		llmClient:    llmClient,
		toolClient:   toolClient,
		ttsClient:    ttsClient,
		documents:    documents,
		policyEngine: policyEngine,
		config:       cfg,
	}
}
