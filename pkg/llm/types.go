package llm

import (
	"fmt"

	"github.com/osJerome/fireflies-service/pkg/cost"
	"github.com/osJerome/fireflies-service/pkg/taxonomy"
)

// CostTracker records the billing cost of one completion call.
type CostTracker interface {
	Track(usage cost.Usage, model string) (float64, error)
}

// ExtractionError reports a failed extraction call: a provider error, an
// unparseable response, or output that fails validation.
type ExtractionError struct {
	Stage string
	Cause error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s extraction failed: %v", e.Stage, e.Cause)
}

func (e *ExtractionError) Unwrap() error { return e.Cause }

// FieldWithSnippet pairs an extracted value with the transcript snippet it
// was pulled from. Both are null when the transcript has no such content; a
// snippet without a value is dropped during normalization.
type FieldWithSnippet struct {
	Value   *string `json:"value" jsonschema_description:"The extracted value from the transcript. If the value is not available, it will be null."`
	Snippet *string `json:"snippet" jsonschema_description:"The snippet of the transcript from which the value was extracted and a sentence before and after that for more context. If no snippet is available, it will be null."`
}

// CandidateInfo is the structured candidate profile extracted from one
// interview transcript.
type CandidateInfo struct {
	Name                  FieldWithSnippet              `json:"name" jsonschema_description:"The full name of the candidate, including both first and last name. If not available, return null."`
	Position              FieldWithSnippet              `json:"position" jsonschema_description:"The current or most recent position of the candidate. If no position is mentioned, return null."`
	Age                   FieldWithSnippet              `json:"age" jsonschema_description:"The age of the candidate. If the age is not provided or cannot be determined, return null."`
	DesiredSalary         FieldWithSnippet              `json:"desired_salary" jsonschema_description:"The salary amount the candidate desires for their next position. If no desired salary is mentioned, return null."`
	CurrentSalary         FieldWithSnippet              `json:"current_salary" jsonschema_description:"The current salary of the candidate. If no current salary is mentioned, return null."`
	DesiredPosition       FieldWithSnippet              `json:"desired_position" jsonschema_description:"The job position or role the candidate is aiming for. If not mentioned, return null."`
	DesiredCompany        FieldWithSnippet              `json:"desired_company" jsonschema_description:"The company or industry the candidate wants to work in. If no company or industry is mentioned, return null."`
	DesiredLocation       FieldWithSnippet              `json:"desired_location" jsonschema_description:"The location where the candidate prefers to work. If not mentioned, return null."`
	PersonalityAssessment FieldWithSnippet              `json:"personality_assessment" jsonschema_description:"An assessment of the candidate's personality based on the interview."`
	DateOfBirth           FieldWithSnippet              `json:"date_of_birth" jsonschema_description:"The date of birth of the candidate. If not provided, return null."`
	BasicSummary          FieldWithSnippet              `json:"basic_summary" jsonschema_description:"A concise summary of the candidate based on the interview. If no summary is available, return null."`
	PitchedJobs           []map[string]FieldWithSnippet `json:"pitched_jobs" jsonschema_description:"A list of jobs pitched during the interview along with candidate interest. If no jobs are mentioned, return an empty list."`
	NoticePeriod          FieldWithSnippet              `json:"notice_period" jsonschema_description:"The candidate's notice period or availability to start a new job. If no notice period is mentioned, return null."`
	ContactPreference     FieldWithSnippet              `json:"contact_preference" jsonschema_description:"The candidate's preferred method of contact. If no contact preference is mentioned, return null."`
	AdditionalInfo        []map[string]FieldWithSnippet `json:"additional_info" jsonschema_description:"Other relevant information extracted from the interview. If no additional info is available, return an empty list."`
}

// fields returns every fixed-shape attribute for uniform normalization.
func (ci *CandidateInfo) fields() []*FieldWithSnippet {
	return []*FieldWithSnippet{
		&ci.Name, &ci.Position, &ci.Age,
		&ci.DesiredSalary, &ci.CurrentSalary,
		&ci.DesiredPosition, &ci.DesiredCompany, &ci.DesiredLocation,
		&ci.PersonalityAssessment, &ci.DateOfBirth, &ci.BasicSummary,
		&ci.NoticePeriod, &ci.ContactPreference,
	}
}

// Normalize enforces the output contract on parsed model output: a snippet
// with no value is dropped, and the list attributes are never nil.
func (ci *CandidateInfo) Normalize() {
	for _, f := range ci.fields() {
		f.normalize()
	}
	ci.PitchedJobs = normalizeEntryList(ci.PitchedJobs)
	ci.AdditionalInfo = normalizeEntryList(ci.AdditionalInfo)
}

func (f *FieldWithSnippet) normalize() {
	if f.Value == nil {
		f.Snippet = nil
	}
}

func normalizeEntryList(entries []map[string]FieldWithSnippet) []map[string]FieldWithSnippet {
	if entries == nil {
		return []map[string]FieldWithSnippet{}
	}
	for _, entry := range entries {
		for key, f := range entry {
			f.normalize()
			entry[key] = f
		}
	}
	return entries
}

// QuestionWithAnswer is the evaluation of one interview question.
type QuestionWithAnswer struct {
	Question      string  `json:"question" jsonschema_description:"The interview question being evaluated."`
	IsAnswered    bool    `json:"is_answered" jsonschema_description:"A boolean indicating whether the question was answered in the transcript."`
	AnswerSummary *string `json:"answer_summary" jsonschema_description:"A brief summary of the answer, if available. Otherwise, null."`
}

// CategoryEvaluation groups question evaluations under one subcategory.
type CategoryEvaluation struct {
	CategoryName string               `json:"category_name" jsonschema_description:"The name of the question subcategory, exactly as given."`
	Questions    []QuestionWithAnswer `json:"questions" jsonschema_description:"List of questions and their evaluations for this category."`
}

// MainCategoryEvaluation groups subcategories under one main category.
type MainCategoryEvaluation struct {
	MainCategory  string               `json:"main_category" jsonschema_description:"The main category name, exactly as given."`
	Subcategories []CategoryEvaluation `json:"subcategories" jsonschema_description:"List of subcategories and their question evaluations."`
}

// CheatSheet is the taxonomy-aligned report of question coverage for one
// interview transcript.
type CheatSheet struct {
	Evaluations []MainCategoryEvaluation `json:"evaluations" jsonschema_description:"List of main categories with their subcategories and question evaluations."`
}

// Validate checks that the sheet mirrors the question catalogue exactly:
// same categories, same subcategories, same questions, same order.
func (cs *CheatSheet) Validate(tax *taxonomy.Taxonomy) error {
	want := tax.Triples()

	var got []taxonomy.Triple
	for _, mc := range cs.Evaluations {
		for _, sc := range mc.Subcategories {
			for _, q := range sc.Questions {
				got = append(got, taxonomy.Triple{
					MainCategory: mc.MainCategory,
					Subcategory:  sc.CategoryName,
					Question:     q.Question,
				})
			}
		}
	}

	if len(got) != len(want) {
		return fmt.Errorf("cheat sheet covers %d questions, catalogue has %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("cheat sheet entry %d is %+v, want %+v", i, got[i], want[i])
		}
	}
	return nil
}
