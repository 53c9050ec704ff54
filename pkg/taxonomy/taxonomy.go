// Package taxonomy holds the static interview-question catalogue used by the
// cheat-sheet extraction. The questions live in an embedded data file so the
// catalogue can change without touching extraction logic; it is loaded once
// at startup and read-only afterwards.
package taxonomy

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed questions.json
var questionsJSON []byte

type Subcategory struct {
	Name      string   `json:"name"`
	Questions []string `json:"questions"`
}

type MainCategory struct {
	Name          string        `json:"name"`
	Subcategories []Subcategory `json:"subcategories"`
}

type Taxonomy struct {
	MainCategories []MainCategory `json:"main_categories"`
}

// Triple identifies one question by its position in the taxonomy.
type Triple struct {
	MainCategory string
	Subcategory  string
	Question     string
}

// Load parses the embedded question catalogue.
func Load() (*Taxonomy, error) {
	var t Taxonomy
	if err := json.Unmarshal(questionsJSON, &t); err != nil {
		return nil, fmt.Errorf("parse embedded question catalogue: %w", err)
	}
	if len(t.MainCategories) == 0 {
		return nil, fmt.Errorf("embedded question catalogue is empty")
	}
	return &t, nil
}

// Triples returns every (main category, subcategory, question) tuple in
// catalogue order.
func (t *Taxonomy) Triples() []Triple {
	var triples []Triple
	for _, mc := range t.MainCategories {
		for _, sc := range mc.Subcategories {
			for _, q := range sc.Questions {
				triples = append(triples, Triple{
					MainCategory: mc.Name,
					Subcategory:  sc.Name,
					Question:     q,
				})
			}
		}
	}
	return triples
}

// Render serializes the catalogue for embedding in an extraction prompt.
func (t *Taxonomy) Render() string {
	var sb strings.Builder
	for _, mc := range t.MainCategories {
		sb.WriteString(mc.Name)
		sb.WriteString(":\n")
		for _, sc := range mc.Subcategories {
			sb.WriteString("  ")
			sb.WriteString(sc.Name)
			sb.WriteString(":\n")
			for _, q := range sc.Questions {
				sb.WriteString("    - ")
				sb.WriteString(q)
				sb.WriteString("\n")
			}
		}
	}
	return sb.String()
}
