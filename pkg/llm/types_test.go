package llm

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func snippetOnly(s string) FieldWithSnippet {
	return FieldWithSnippet{Snippet: &s}
}

func TestNormalizeDropsOrphanSnippets(t *testing.T) {
	info := CandidateInfo{
		Name:          snippetOnly("..."),
		Age:           snippetOnly("..."),
		DesiredSalary: snippetOnly("..."),
		NoticePeriod:  snippetOnly("..."),
	}

	info.Normalize()

	for i, f := range info.fields() {
		if f.Snippet != nil {
			t.Errorf("field %d kept snippet %q without a value", i, *f.Snippet)
		}
	}
}

func TestNormalizeKeepsSnippetWithValue(t *testing.T) {
	value := "Jane Doe"
	snippet := "My name is Jane Doe."
	info := CandidateInfo{Name: FieldWithSnippet{Value: &value, Snippet: &snippet}}

	info.Normalize()

	assert.Equal(t, "Jane Doe", *info.Name.Value)
	assert.Equal(t, "My name is Jane Doe.", *info.Name.Snippet)
}

func TestNormalizeListDefaults(t *testing.T) {
	var info CandidateInfo

	info.Normalize()

	if info.PitchedJobs == nil {
		t.Error("pitched_jobs is nil, want empty list")
	}
	if info.AdditionalInfo == nil {
		t.Error("additional_info is nil, want empty list")
	}
}

func TestNormalizeListEntries(t *testing.T) {
	info := CandidateInfo{
		PitchedJobs: []map[string]FieldWithSnippet{
			{"Night Manager at Grand Hotel": snippetOnly("stray")},
		},
	}

	info.Normalize()

	entry := info.PitchedJobs[0]["Night Manager at Grand Hotel"]
	if entry.Snippet != nil {
		t.Errorf("entry kept snippet %q without a value", *entry.Snippet)
	}
}
