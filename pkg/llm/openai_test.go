package llm

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/osJerome/fireflies-service/pkg/taxonomy"
)

func loadTaxonomy(t *testing.T) *taxonomy.Taxonomy {
	t.Helper()
	tax, err := taxonomy.Load()
	if err != nil {
		t.Fatalf("load taxonomy: %v", err)
	}
	return tax
}

// sheetFromTaxonomy builds a cheat sheet that mirrors the catalogue exactly.
func sheetFromTaxonomy(tax *taxonomy.Taxonomy) *CheatSheet {
	var sheet CheatSheet
	for _, mc := range tax.MainCategories {
		eval := MainCategoryEvaluation{MainCategory: mc.Name}
		for _, sc := range mc.Subcategories {
			cat := CategoryEvaluation{CategoryName: sc.Name}
			for _, q := range sc.Questions {
				cat.Questions = append(cat.Questions, QuestionWithAnswer{Question: q})
			}
			eval.Subcategories = append(eval.Subcategories, cat)
		}
		sheet.Evaluations = append(sheet.Evaluations, eval)
	}
	return &sheet
}

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain JSON unchanged",
			input: `{"value":"test"}`,
			want:  `{"value":"test"}`,
		},
		{
			name:  "strips json fenced block",
			input: "```json\n{\"value\":\"test\"}\n```",
			want:  `{"value":"test"}`,
		},
		{
			name:  "strips plain fenced block",
			input: "```\n{\"value\":\"test\"}\n```",
			want:  `{"value":"test"}`,
		},
		{
			name:  "strips surrounding prose",
			input: "Here you go: {\"value\":\"test\"} hope that helps",
			want:  `{"value":"test"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleanJSONResponse(tt.input)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseCandidateInfo(t *testing.T) {
	content := `{
		"name": {"value": "Jane Doe", "snippet": "My name is Jane Doe."},
		"position": {"value": null, "snippet": null},
		"age": {"value": null, "snippet": "stray snippet without a value"},
		"pitched_jobs": [
			{"Front Office Manager at Grand Hotel": {"value": "interested", "snippet": "That sounds great."}}
		]
	}`

	info, err := parseCandidateInfo(content)

	assert.Equal(t, nil, err)
	assert.Equal(t, "Jane Doe", *info.Name.Value)
	assert.Equal(t, "My name is Jane Doe.", *info.Name.Snippet)

	// Null value forces a null snippet.
	if info.Age.Snippet != nil {
		t.Errorf("age snippet = %q, want nil", *info.Age.Snippet)
	}

	assert.Equal(t, 1, len(info.PitchedJobs))
	if info.AdditionalInfo == nil {
		t.Error("additional_info is nil, want empty list")
	}
	assert.Equal(t, 0, len(info.AdditionalInfo))
}

func TestParseCandidateInfoFencedOutput(t *testing.T) {
	content := "```json\n{\"name\": {\"value\": \"Jane\", \"snippet\": \"Jane here.\"}}\n```"

	info, err := parseCandidateInfo(content)

	assert.Equal(t, nil, err)
	assert.Equal(t, "Jane", *info.Name.Value)
}

func TestParseCandidateInfoInvalidJSON(t *testing.T) {
	_, err := parseCandidateInfo("not json at all")
	assert.NotEqual(t, nil, err)
}

func TestParseCheatSheetValid(t *testing.T) {
	tax := loadTaxonomy(t)
	body, err := json.Marshal(sheetFromTaxonomy(tax))
	assert.Equal(t, nil, err)

	sheet, err := parseCheatSheet(string(body), tax)

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(sheet.Evaluations))
}

func TestParseCheatSheetMissingQuestion(t *testing.T) {
	tax := loadTaxonomy(t)
	sheet := sheetFromTaxonomy(tax)
	qs := sheet.Evaluations[0].Subcategories[0].Questions
	sheet.Evaluations[0].Subcategories[0].Questions = qs[:len(qs)-1]
	body, _ := json.Marshal(sheet)

	_, err := parseCheatSheet(string(body), tax)
	assert.NotEqual(t, nil, err)
}

func TestParseCheatSheetRenamedCategory(t *testing.T) {
	tax := loadTaxonomy(t)
	sheet := sheetFromTaxonomy(tax)
	sheet.Evaluations[0].MainCategory = "Industry Questions"
	body, _ := json.Marshal(sheet)

	_, err := parseCheatSheet(string(body), tax)
	assert.NotEqual(t, nil, err)
}

func TestParseCheatSheetExtraQuestion(t *testing.T) {
	tax := loadTaxonomy(t)
	sheet := sheetFromTaxonomy(tax)
	sheet.Evaluations[0].Subcategories[0].Questions = append(
		sheet.Evaluations[0].Subcategories[0].Questions,
		QuestionWithAnswer{Question: "An invented question?"},
	)
	body, _ := json.Marshal(sheet)

	_, err := parseCheatSheet(string(body), tax)
	assert.NotEqual(t, nil, err)
}

func TestBuildCheatSheetPrompt(t *testing.T) {
	tax := loadTaxonomy(t)
	transcript := "Speaker1: Hello\nSpeaker2: Hi there"

	prompt := buildCheatSheetPrompt(transcript, tax)

	assert.Equal(t, true, strings.Contains(prompt, transcript))
	for _, tr := range tax.Triples() {
		assert.Equal(t, true, strings.Contains(prompt, tr.Question))
	}
}
