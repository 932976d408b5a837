package llm

import (
	"log"
	"os"
	"time"
)

const (
	// EnvQuillMode is the environment variable name for mode selection.
	EnvQuillMode = "QUILL_MODE"
	// ModeMock indicates mock mode should be used.
	ModeMock = "MOCK"
)

// NewCompletionClient creates a completion client based on the QUILL_MODE
// environment variable. If QUILL_MODE=MOCK, returns a MockClient;
// otherwise returns a real Client.
func NewCompletionClient(baseURL, apiKey, model string, timeout time.Duration) CompletionClient {
	mode := os.Getenv(EnvQuillMode)

	if mode == ModeMock {
		log.Println("QUILL_MODE=MOCK detected, using mock completion client")
		return NewMockClient()
	}

	return NewClient(baseURL, apiKey, model, timeout)
}
