package v1

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/quillnote/quill/internal/trace"
)

// processRequest is the body of POST /api/process.
type processRequest struct {
	Text string `json:"text"`
}

// processResponse is the success envelope.
type processResponse struct {
	Response       string `json:"response"`
	RequestID      string `json:"requestId"`
	ProcessingTime int64  `json:"processingTime"`
}

// processErrorResponse is the pipeline failure envelope.
type processErrorResponse struct {
	Error          string `json:"error"`
	RequestID      string `json:"requestId"`
	ProcessingTime int64  `json:"processingTime"`
}

// validationErrorResponse is the envelope for requests rejected before
// the pipeline starts.
type validationErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId"`
}

// ProcessText handles the processing pipeline endpoint.
// POST /api/process
func (h *Handler) ProcessText(c echo.Context) error {
	tr := trace.New()

	var req processRequest
	if err := c.Bind(&req); err != nil || req.Text == "" {
		log.Printf("WARN: [%s] rejected request with no text after %dms", tr.RequestID, tr.ElapsedMs())
		return c.JSON(http.StatusBadRequest, validationErrorResponse{
			Error:     "No text provided",
			RequestID: tr.RequestID,
		})
	}

	answer, err := h.service.Process(c.Request().Context(), tr, req.Text)
	elapsed := tr.ElapsedMs()
	if err != nil {
		log.Printf("ERROR: [%s] pipeline failed after %dms: %v", tr.RequestID, elapsed, err)
		return c.JSON(http.StatusInternalServerError, processErrorResponse{
			Error:          "Processing failed: " + err.Error(),
			RequestID:      tr.RequestID,
			ProcessingTime: elapsed,
		})
	}

	log.Printf("INFO: [%s] pipeline completed in %dms", tr.RequestID, elapsed)
	return c.JSON(http.StatusOK, processResponse{
		Response:       answer,
		RequestID:      tr.RequestID,
		ProcessingTime: elapsed,
	})
}
