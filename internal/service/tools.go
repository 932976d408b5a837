package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/quillnote/quill/internal/domain"
	"github.com/quillnote/quill/internal/policy"
)

// executeTools runs the tool calls requested by a completion pass. Calls
// the policy blocks are answered locally with a blocked result message;
// the rest are dispatched to the tool server in one batch. The returned
// messages preserve the order of the requested calls. No tool calls
// means no network round trip and an empty result.
func (s *Service) executeTools(ctx context.Context, requestID string, draft *domain.CompletionResult) ([]domain.Message, error) {
	if len(draft.ToolCalls) == 0 {
		return nil, nil
	}

	allowed := make([]domain.ToolCall, 0, len(draft.ToolCalls))
	blocked := make(map[string]string)
	for _, tc := range draft.ToolCalls {
		decision, reason, err := s.policyEngine.Evaluate(ctx, policyInput(tc))
		if err != nil {
			return nil, fmt.Errorf("policy evaluation failed: %w", err)
		}
		if decision == policy.DecisionBlock {
			log.Printf("WARN: [%s] tool call %s (%s) blocked by policy: %s", requestID, tc.ID, tc.Name, reason)
			blocked[tc.ID] = reason
			continue
		}
		allowed = append(allowed, tc)
	}

	byID := make(map[string]domain.Message)
	if len(allowed) > 0 {
		msgs, err := s.toolClient.RunTools(ctx, allowed)
		if err != nil {
			return nil, err
		}
		for _, m := range msgs {
			byID[m.ToolCallID] = m
		}
	}

	out := make([]domain.Message, 0, len(draft.ToolCalls))
	for _, tc := range draft.ToolCalls {
		if reason, ok := blocked[tc.ID]; ok {
			content := "Tool call blocked by policy"
			if reason != "" {
				content += ": " + reason
			}
			out = append(out, domain.Message{
				Role:       domain.RoleTool,
				Content:    content,
				ToolCallID: tc.ID,
			})
			continue
		}
		if m, ok := byID[tc.ID]; ok {
			out = append(out, m)
			continue
		}
		// The tool server folds individual failures into result messages,
		// so a missing result means the batch response was incomplete.
		return nil, fmt.Errorf("tool server returned no result for call %s (%s)", tc.ID, tc.Name)
	}
	return out, nil
}

// policyInput builds the OPA input document for one tool call.
func policyInput(tc domain.ToolCall) map[string]interface{} {
	input := map[string]interface{}{
		"tool_name": tc.Name,
		"args":      map[string]interface{}{},
	}
	if len(tc.Args) > 0 {
		var argsMap map[string]interface{}
		if err := json.Unmarshal(tc.Args, &argsMap); err == nil {
			input["args"] = argsMap
		}
	}
	return input
}
