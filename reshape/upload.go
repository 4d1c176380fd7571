// ABOUTME: Import-file parsing and validation
// ABOUTME: Validates uploaded research JSON against a schema before any draft state is touched
package reshape

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/harperreed/beacon/models"
)

// uploadSchema is the structural contract for import files. Only
// company_profile and competitors are required; prompt groups and the
// descriptive fields are accepted without deep validation.
const uploadSchema = `{
	"type": "object",
	"required": ["company_profile", "competitors"],
	"properties": {
		"company_profile": {
			"type": "object",
			"required": ["company_name", "website"],
			"properties": {
				"company_name": {"type": "string", "minLength": 1},
				"website": {"type": "string", "format": "uri"}
			}
		},
		"competitors": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["company_name"],
				"properties": {
					"company_name": {"type": "string"},
					"domain": {"type": "string"}
				}
			}
		},
		"biased_prompts": {"type": "object"},
		"blind_prompts": {"type": "object"},
		"description": {"type": "string"},
		"industry": {"type": "string"}
	}
}`

// uploadFile mirrors the import document. The prompt groups use the export
// tool's historical names: "biased" maps to branded, "blind" to neutral.
type uploadFile struct {
	CompanyProfile models.CompanyProfile            `json:"company_profile"`
	Competitors    []models.ResearchCompetitor      `json:"competitors"`
	BiasedPrompts  map[string]models.PromptCategory `json:"biased_prompts,omitempty"`
	BlindPrompts   map[string]models.PromptCategory `json:"blind_prompts,omitempty"`
	Description    string                           `json:"description,omitempty"`
	Industry       string                           `json:"industry,omitempty"`
}

// ParseUpload validates raw import-file bytes and converts them into the
// research result shape consumed by Ingest. Malformed JSON or a schema
// violation returns an error before anything else happens; there is no
// partial acceptance.
func ParseUpload(data []byte) (*models.ResearchResult, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(uploadSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid import file: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			msgs[i] = desc.String()
		}
		return nil, fmt.Errorf("import file failed validation: %s", strings.Join(msgs, "; "))
	}

	var file uploadFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid import file: %w", err)
	}

	return &models.ResearchResult{
		CompanyProfile: file.CompanyProfile,
		Competitors:    file.Competitors,
		BrandedPrompts: file.BiasedPrompts,
		NeutralPrompts: file.BlindPrompts,
		Industry:       file.Industry,
		Description:    file.Description,
	}, nil
}
