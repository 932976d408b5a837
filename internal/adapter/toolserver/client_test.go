package toolserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/quillnote/quill/internal/domain"
)

func TestClientFetchTools(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tools" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"tools":[{"name":"weather.query","description":"query weather","inputSchema":{"type":"object"}}]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	tools, err := client.FetchTools(context.Background())
	if err != nil {
		t.Fatalf("FetchTools failed: %v", err)
	}
	if len(tools) != 1 || tools[0].Name != "weather.query" {
		t.Fatalf("unexpected tools: %+v", tools)
	}
}

func TestClientFetchToolsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, "tool server down")
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.FetchTools(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestClientFetchToolsMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not json")
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.FetchTools(context.Background())
	if err == nil {
		t.Fatalf("expected error for malformed body")
	}
}

func TestClientRunTools(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/run-tools" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		var req runToolsRequest
		if err := json.Unmarshal(body, &req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if len(req.ToolCalls) != 1 || req.ToolCalls[0].Name != "weather.query" {
			t.Fatalf("unexpected tool calls: %+v", req.ToolCalls)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"messages":[{"role":"tool","content":"{\"weather\":\"Sunny\"}","tool_call_id":"tc_1"}]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	messages, err := client.RunTools(context.Background(), []domain.ToolCall{
		{ID: "tc_1", Name: "weather.query", Args: json.RawMessage(`{"city":"Beijing"}`)},
	})
	if err != nil {
		t.Fatalf("RunTools failed: %v", err)
	}
	if len(messages) != 1 || messages[0].ToolCallID != "tc_1" || messages[0].Role != domain.RoleTool {
		t.Fatalf("unexpected messages: %+v", messages)
	}
}

func TestClientRunToolsEmptyShortcut(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("no network call expected for empty tool calls")
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	messages, err := client.RunTools(context.Background(), nil)
	if err != nil {
		t.Fatalf("RunTools failed: %v", err)
	}
	if len(messages) != 0 {
		t.Fatalf("expected empty messages, got %+v", messages)
	}
}

func TestClientRunToolsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, "execution failed")
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.RunTools(context.Background(), []domain.ToolCall{
		{ID: "tc_1", Name: "weather.query"},
	})
	if err == nil {
		t.Fatalf("expected error")
	}
}
