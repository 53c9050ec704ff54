package fireflies

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const transcriptQuery = `query Transcript($transcriptId: String!) {
    transcript(id: $transcriptId) {
        sentences {
            index
            speaker_name
            speaker_id
            text
            raw_text
            start_time
            end_time
        }
    }
}`

// APIError carries the provider's status code and response body so callers
// can pass both through unchanged.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("fireflies API error: status %d: %s", e.StatusCode, e.Body)
}

type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Users fetches the workspace user list.
func (c *Client) Users() (json.RawMessage, error) {
	return c.query("{ users { name user_id } }", nil)
}

// Transcripts fetches the transcript list for one user.
func (c *Client) Transcripts(userID string) (json.RawMessage, error) {
	query := "query Transcripts($userId: String) { transcripts(user_id: $userId) { title id } }"
	return c.query(query, map[string]string{"userId": userID})
}

// Transcript fetches the sentence payload for one transcript. The body is
// returned unmodified for the transcript parser to consume.
func (c *Client) Transcript(transcriptID string) (json.RawMessage, error) {
	return c.query(transcriptQuery, map[string]string{"transcriptId": transcriptID})
}

func (c *Client) query(query string, variables map[string]string) (json.RawMessage, error) {
	payload := map[string]interface{}{"query": query}
	if variables != nil {
		payload["variables"] = variables
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("fireflies encode: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("fireflies request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fireflies fetch: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fireflies read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	return respBody, nil
}
