// Package toolserver provides the client for the tool-execution service.
package toolserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/quillnote/quill/internal/domain"
)

// Client calls the tool server over HTTP. It is safe for concurrent use
// by multiple in-flight requests.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new tool server client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// toolListResponse is the body of GET /tools.
type toolListResponse struct {
	Tools []domain.ToolDefinition `json:"tools"`
}

// runToolsRequest is the body of POST /run-tools.
type runToolsRequest struct {
	ToolCalls []domain.ToolCall `json:"tool_calls"`
}

// runToolsResponse is the body returned by POST /run-tools.
type runToolsResponse struct {
	Messages []domain.Message `json:"messages"`
}

// FetchTools retrieves the current tool catalog. There is no partial
// success: either the full catalog is returned or the call fails.
func (c *Client) FetchTools(ctx context.Context) ([]domain.ToolDefinition, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/tools", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tool server error [%d]: %s", resp.StatusCode, string(respBody))
	}

	var result toolListResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return result.Tools, nil
}

// RunTools dispatches the given tool calls to the tool server and
// returns the execution output as conversation messages, one per call.
// A zero-length call list short-circuits to an empty result without a
// network round trip.
func (c *Client) RunTools(ctx context.Context, calls []domain.ToolCall) ([]domain.Message, error) {
	if len(calls) == 0 {
		return nil, nil
	}

	body, err := json.Marshal(runToolsRequest{ToolCalls: calls})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/run-tools", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tool server error [%d]: %s", resp.StatusCode, string(respBody))
	}

	var result runToolsResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return result.Messages, nil
}
