package v1

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

// speechRequest is the body of POST /api/speech.
type speechRequest struct {
	Text    string `json:"text"`
	VoiceID string `json:"voiceId,omitempty"`
}

// Synthesize renders text as audio.
// POST /api/speech
func (h *Handler) Synthesize(c echo.Context) error {
	var req speechRequest
	if err := c.Bind(&req); err != nil || req.Text == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No text provided"})
	}

	audio, err := h.service.Synthesize(c.Request().Context(), req.Text, req.VoiceID)
	if err != nil {
		log.Printf("ERROR: speech synthesis failed: %v", err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}

	return c.Blob(http.StatusOK, "audio/mpeg", audio)
}
