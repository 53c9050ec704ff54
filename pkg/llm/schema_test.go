package llm

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/assert/v2"
)

func schemaProperties(t *testing.T, schema interface{}) map[string]json.RawMessage {
	t.Helper()
	body, err := json.Marshal(schema)
	if err != nil {
		t.Fatalf("marshal schema: %v", err)
	}
	var parsed struct {
		Properties map[string]json.RawMessage `json:"properties"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("unmarshal schema: %v", err)
	}
	return parsed.Properties
}

func TestCandidateInfoSchemaCoversEveryAttribute(t *testing.T) {
	props := schemaProperties(t, candidateInfoSchema)

	want := []string{
		"name", "position", "age",
		"desired_salary", "current_salary",
		"desired_position", "desired_company", "desired_location",
		"personality_assessment", "date_of_birth", "basic_summary",
		"pitched_jobs", "notice_period", "contact_preference", "additional_info",
	}

	assert.Equal(t, len(want), len(props))
	for _, key := range want {
		if _, ok := props[key]; !ok {
			t.Errorf("schema missing property %q", key)
		}
	}
}

func TestCheatSheetSchemaShape(t *testing.T) {
	props := schemaProperties(t, cheatSheetSchema)

	if _, ok := props["evaluations"]; !ok {
		t.Error("schema missing property \"evaluations\"")
	}
}
