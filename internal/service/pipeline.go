package service

import (
	"context"
	"log"

	"github.com/quillnote/quill/internal/domain"
	"github.com/quillnote/quill/internal/trace"
)

// Span names for the four pipeline stages.
const (
	spanFetchTools        = "fetch_tools"
	spanInitialCompletion = "initial_completion"
	spanRunTools          = "run_tools"
	spanFinalCompletion   = "final_completion"
)

// fallbackAnswer is returned when the final completion carries no content.
const fallbackAnswer = "No response generated."

// Process runs the four-stage pipeline for one user message: fetch the
// tool catalog, ask the model for a draft, execute any requested tools,
// then ask the model for the final answer with the tool results folded
// into the conversation. Stages run strictly in order; the first failure
// aborts the rest and is returned as a stage-tagged error.
//
// The second completion pass always runs, even when the draft requested
// no tools, so the model can restate or finalize its answer.
func (s *Service) Process(ctx context.Context, tr *trace.Trace, text string) (string, error) {
	conversation := []domain.Message{
		{Role: domain.RoleUser, Content: text},
	}

	tr.StartSpan(spanFetchTools)
	tools, err := s.toolClient.FetchTools(ctx)
	d := tr.EndSpan(spanFetchTools)
	if err != nil {
		log.Printf("ERROR: [%s] tool catalog fetch failed after %s: %v", tr.RequestID, d, err)
		return "", domain.NewStageError(domain.StageCatalog, err)
	}
	log.Printf("INFO: [%s] fetched %d tools in %s", tr.RequestID, len(tools), d)

	tr.StartSpan(spanInitialCompletion)
	draft, err := s.llmClient.Complete(ctx, conversation, tools)
	d = tr.EndSpan(spanInitialCompletion)
	if err != nil {
		log.Printf("ERROR: [%s] initial completion failed after %s: %v", tr.RequestID, d, err)
		return "", domain.NewStageError(domain.StageInitialCompletion, err)
	}
	log.Printf("INFO: [%s] initial completion done in %s (%d tool calls)", tr.RequestID, d, len(draft.ToolCalls))

	tr.StartSpan(spanRunTools)
	toolMessages, err := s.executeTools(ctx, tr.RequestID, draft)
	d = tr.EndSpan(spanRunTools)
	if err != nil {
		log.Printf("ERROR: [%s] tool execution failed after %s: %v", tr.RequestID, d, err)
		return "", domain.NewStageError(domain.StageToolExecution, err)
	}
	log.Printf("INFO: [%s] tool execution done in %s (%d result messages)", tr.RequestID, d, len(toolMessages))

	// Tool result messages must follow the assistant message that
	// requested them; with no tool calls the conversation stays as the
	// caller sent it.
	if len(toolMessages) > 0 {
		conversation = append(conversation, domain.Message{
			Role:      domain.RoleAssistant,
			Content:   draft.Content,
			ToolCalls: draft.ToolCalls,
		})
		conversation = append(conversation, toolMessages...)
	}

	tr.StartSpan(spanFinalCompletion)
	final, err := s.llmClient.Complete(ctx, conversation, tools)
	d = tr.EndSpan(spanFinalCompletion)
	if err != nil {
		log.Printf("ERROR: [%s] final completion failed after %s: %v", tr.RequestID, d, err)
		return "", domain.NewStageError(domain.StageFinalCompletion, err)
	}
	log.Printf("INFO: [%s] final completion done in %s", tr.RequestID, d)

	answer := final.Content
	if answer == "" {
		answer = fallbackAnswer
	}
	return answer, nil
}
