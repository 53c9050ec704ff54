package handler

type UserRequest struct {
	UserID string `json:"userId" binding:"required"`
}

type TranscriptRequest struct {
	TranscriptID string `json:"transcriptId" binding:"required"`
}

type HealthCheckResponse struct {
	APIKeyConfigured bool `json:"apiKeyConfigured"`
}

type ParsedTranscriptResponse struct {
	ParsedTranscript string `json:"parsedTranscript"`
}
