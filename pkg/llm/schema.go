package llm

import "github.com/invopop/jsonschema"

// generateSchema reflects a response type into the JSON schema attached to
// the completion request. References are inlined because the provider's
// structured-output parser does not resolve $ref.
func generateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}

var (
	candidateInfoSchema = generateSchema[CandidateInfo]()
	cheatSheetSchema    = generateSchema[CheatSheet]()
)
