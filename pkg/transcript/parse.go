package transcript

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed reports a provider payload that is missing the sentence list
// or required sentence fields.
var ErrMalformed = errors.New("malformed transcript payload")

// Sentence is one speaker-attributed utterance as returned by the provider.
// Order within the payload is the provider's speaking order.
type Sentence struct {
	Index       int      `json:"index"`
	SpeakerName *string  `json:"speaker_name"`
	SpeakerID   string   `json:"speaker_id"`
	Text        *string  `json:"text"`
	RawText     string   `json:"raw_text"`
	StartTime   *float64 `json:"start_time"`
	EndTime     *float64 `json:"end_time"`
}

type payload struct {
	Data struct {
		Transcript struct {
			Sentences []Sentence `json:"sentences"`
		} `json:"transcript"`
	} `json:"data"`
}

// Parse converts the raw provider payload into a readable transcript, one
// "speaker: text" line per sentence, preserving the provider's ordering.
func Parse(raw []byte) (string, error) {
	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	sentences := p.Data.Transcript.Sentences
	if sentences == nil {
		return "", fmt.Errorf("%w: missing data.transcript.sentences", ErrMalformed)
	}

	var sb strings.Builder
	for i, s := range sentences {
		if s.SpeakerName == nil {
			return "", fmt.Errorf("%w: sentence %d missing speaker_name", ErrMalformed, i)
		}
		if s.Text == nil {
			return "", fmt.Errorf("%w: sentence %d missing text", ErrMalformed, i)
		}
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(*s.SpeakerName)
		sb.WriteString(": ")
		sb.WriteString(*s.Text)
	}

	return sb.String(), nil
}
