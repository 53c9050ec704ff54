package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/osJerome/fireflies-service/pkg/cost"
	"github.com/osJerome/fireflies-service/pkg/taxonomy"
)

const extractionSystemPrompt = "You are an assistant that extracts structured information from transcripts."

type OpenAIClient struct {
	client  *openai.Client
	model   string
	tracker CostTracker
	tax     *taxonomy.Taxonomy
}

func NewOpenAIClient(apiKey, model string, tracker CostTracker, tax *taxonomy.Taxonomy) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{
		client:  &client,
		model:   model,
		tracker: tracker,
		tax:     tax,
	}
}

// ExtractCandidateInfo runs one schema-constrained completion that populates
// the candidate profile from a parsed transcript. Single attempt, no retries.
func (c *OpenAIClient) ExtractCandidateInfo(transcript string) (*CandidateInfo, error) {
	userPrompt := fmt.Sprintf("Extract the candidate information in JSON format: %s", transcript)

	content, usage, err := c.complete(userPrompt, "candidate_info", candidateInfoSchema)
	if err != nil {
		return nil, &ExtractionError{Stage: "candidate information", Cause: err}
	}

	info, err := parseCandidateInfo(content)
	if err != nil {
		return nil, &ExtractionError{Stage: "candidate information", Cause: err}
	}

	if _, err := c.tracker.Track(usage, c.model); err != nil {
		return nil, &ExtractionError{Stage: "candidate information", Cause: err}
	}

	return info, nil
}

// ExtractCheatSheet runs one schema-constrained completion that evaluates
// every catalogue question against a parsed transcript.
func (c *OpenAIClient) ExtractCheatSheet(transcript string) (*CheatSheet, error) {
	userPrompt := buildCheatSheetPrompt(transcript, c.tax)

	content, usage, err := c.complete(userPrompt, "cheat_sheet", cheatSheetSchema)
	if err != nil {
		return nil, &ExtractionError{Stage: "cheat sheet", Cause: err}
	}

	sheet, err := parseCheatSheet(content, c.tax)
	if err != nil {
		return nil, &ExtractionError{Stage: "cheat sheet", Cause: err}
	}

	if _, err := c.tracker.Track(usage, c.model); err != nil {
		return nil, &ExtractionError{Stage: "cheat sheet", Cause: err}
	}

	return sheet, nil
}

func (c *OpenAIClient) complete(userPrompt, schemaName string, schema interface{}) (string, cost.Usage, error) {
	resp, err := c.client.Chat.Completions.New(context.Background(), openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(extractionSystemPrompt),
			openai.UserMessage(userPrompt),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   schemaName,
					Schema: schema,
				},
			},
		},
	})

	if err != nil {
		return "", cost.Usage{}, fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", cost.Usage{}, fmt.Errorf("no response from openai")
	}

	usage := cost.Usage{
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		CachedTokens:     resp.Usage.PromptTokensDetails.CachedTokens,
	}

	return resp.Choices[0].Message.Content, usage, nil
}

func parseCandidateInfo(content string) (*CandidateInfo, error) {
	var info CandidateInfo
	if err := json.Unmarshal([]byte(cleanJSONResponse(content)), &info); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w, content: %s", err, content)
	}
	info.Normalize()
	return &info, nil
}

func parseCheatSheet(content string, tax *taxonomy.Taxonomy) (*CheatSheet, error) {
	var sheet CheatSheet
	if err := json.Unmarshal([]byte(cleanJSONResponse(content)), &sheet); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w, content: %s", err, content)
	}
	if err := sheet.Validate(tax); err != nil {
		return nil, fmt.Errorf("response does not match question catalogue: %w", err)
	}
	return &sheet, nil
}

func buildCheatSheetPrompt(transcript string, tax *taxonomy.Taxonomy) string {
	return fmt.Sprintf(`Given the following transcript of an interview, evaluate each question in the categories below:
- Determine if the question was answered in the transcript.
- If answered, provide a brief summary of the answer.
- If not answered, set the summary to null.

Transcript:
%s

Questions to evaluate:

%s
Extract the information in JSON format matching the cheat sheet structure.
Ensure that all category and subcategory names exactly match the names given above.`, transcript, tax.Render())
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
