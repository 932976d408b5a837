package service

import (
	"context"
	"fmt"
)

// Synthesize renders text as audio. An empty voice id falls back to the
// deployment's default voice.
func (s *Service) Synthesize(ctx context.Context, text, voiceID string) ([]byte, error) {
	if voiceID == "" {
		voiceID = s.config.DefaultVoiceID
	}
	audio, err := s.ttsClient.Synthesize(ctx, text, voiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize speech: %w", err)
	}
	return audio, nil
}
