package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/quillnote/quill/internal/adapter/llm"
	"github.com/quillnote/quill/internal/adapter/toolserver"
	"github.com/quillnote/quill/internal/adapter/tts"
	"github.com/quillnote/quill/internal/config"
	"github.com/quillnote/quill/internal/policy"
	"github.com/quillnote/quill/internal/repository"
	"github.com/quillnote/quill/internal/service"
	transport "github.com/quillnote/quill/internal/transport/http"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log.Printf("Starting assistant server...")
	log.Printf("HTTP Port: %d", cfg.HTTPPort)
	log.Printf("Database: %s", cfg.DatabaseURL)
	log.Printf("Tool Server URL: %s", cfg.ToolServerURL)
	log.Printf("Model: %s", cfg.Model)

	// Initialize document store
	store, err := repository.NewSQLiteStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer store.Close()

	// Initialize clients (one instance each, reused across requests)
	llmClient := llm.NewCompletionClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.Model, cfg.LLMTimeout)
	toolClient := toolserver.NewClient(cfg.ToolServerURL, cfg.ToolTimeout)
	ttsClient := tts.NewClient(cfg.TTSBaseURL, cfg.TTSAPIKey, cfg.TTSTimeout)

	// Initialize policy engine
	ctx := context.Background()
	policyEngine, err := policy.NewEngine(ctx, policy.DefaultPolicy)
	if err != nil {
		log.Fatalf("Failed to initialize policy engine: %v", err)
	}

	// Initialize service
	svc := service.New(cfg, llmClient, toolClient, ttsClient, store, policyEngine)

	// Create HTTP server
	server := transport.NewServer(svc)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Assistant server started on port %d", cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down assistant server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("Assistant server stopped")
}
