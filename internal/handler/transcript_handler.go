package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/osJerome/fireflies-service/pkg/fireflies"
	"github.com/osJerome/fireflies-service/pkg/llm"
	"github.com/osJerome/fireflies-service/pkg/transcript"
)

type TranscriptStore interface {
	Users() (json.RawMessage, error)
	Transcripts(userID string) (json.RawMessage, error)
	Transcript(transcriptID string) (json.RawMessage, error)
}

type InfoExtractor interface {
	ExtractCandidateInfo(transcript string) (*llm.CandidateInfo, error)
}

type SheetExtractor interface {
	ExtractCheatSheet(transcript string) (*llm.CheatSheet, error)
}

type TranscriptHandler struct {
	store            TranscriptStore
	info             InfoExtractor
	sheet            SheetExtractor
	apiKeyConfigured bool
}

func NewTranscriptHandler(store TranscriptStore, info InfoExtractor, sheet SheetExtractor, apiKeyConfigured bool) *TranscriptHandler {
	return &TranscriptHandler{
		store:            store,
		info:             info,
		sheet:            sheet,
		apiKeyConfigured: apiKeyConfigured,
	}
}

func (h *TranscriptHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthCheckResponse{APIKeyConfigured: h.apiKeyConfigured})
}

func (h *TranscriptHandler) GetUsers(c *gin.Context) {
	raw, err := h.store.Users()
	if err != nil {
		slog.Error("error fetching users", "error", err)
		writeProviderError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", raw)
}

func (h *TranscriptHandler) GetTranscriptions(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is missing in the payload"})
		return
	}

	raw, err := h.store.Transcripts(req.UserID)
	if err != nil {
		slog.Error("error fetching transcriptions", "error", err, "user_id", req.UserID)
		writeProviderError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", raw)
}

func (h *TranscriptHandler) GetTranscriptMessages(c *gin.Context) {
	var req TranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "transcriptId is missing in the payload"})
		return
	}

	raw, err := h.store.Transcript(req.TranscriptID)
	if err != nil {
		slog.Error("error fetching transcript messages", "error", err, "transcript_id", req.TranscriptID)
		writeProviderError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", raw)
}

func (h *TranscriptHandler) ParseTranscript(c *gin.Context) {
	parsed, ok := h.fetchAndParse(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, ParsedTranscriptResponse{ParsedTranscript: parsed})
}

func (h *TranscriptHandler) ExtractInformation(c *gin.Context) {
	parsed, ok := h.fetchAndParse(c)
	if !ok {
		return
	}

	info, err := h.info.ExtractCandidateInfo(parsed)
	if err != nil {
		slog.Error("error extracting candidate information", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"extractedInformation": info})
}

func (h *TranscriptHandler) ExtractCheatSheet(c *gin.Context) {
	parsed, ok := h.fetchAndParse(c)
	if !ok {
		return
	}

	sheet, err := h.sheet.ExtractCheatSheet(parsed)
	if err != nil {
		slog.Error("error extracting cheat sheet", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"extractedCheatSheet": sheet})
}

// fetchAndParse binds the transcript id, fetches the provider payload, and
// parses it. It writes the error response itself and reports success in ok.
func (h *TranscriptHandler) fetchAndParse(c *gin.Context) (parsed string, ok bool) {
	var req TranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "transcriptId is missing in the payload"})
		return "", false
	}

	raw, err := h.store.Transcript(req.TranscriptID)
	if err != nil {
		slog.Error("error fetching transcript", "error", err, "transcript_id", req.TranscriptID)
		writeProviderError(c, err)
		return "", false
	}

	parsed, err = transcript.Parse(raw)
	if err != nil {
		slog.Error("error parsing transcript", "error", err, "transcript_id", req.TranscriptID)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return "", false
	}

	return parsed, true
}

// writeProviderError passes the provider's status and detail through when
// available, falling back to a plain 500 for transport failures.
func writeProviderError(c *gin.Context, err error) {
	var apiErr *fireflies.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.StatusCode, gin.H{"error": apiErr.Body})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
