// ABOUTME: Synonym MCP tool handler
// ABOUTME: Implements generate_synonyms over the deterministic synonym generator
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/beacon/synonyms"
)

type SynonymHandlers struct{}

func NewSynonymHandlers() *SynonymHandlers {
	return &SynonymHandlers{}
}

type GenerateSynonymsInput struct {
	Name string `json:"name" jsonschema:"Brand or competitor name (required)"`
	URL  string `json:"url,omitempty" jsonschema:"Website URL for domain-based variants"`
}

type GenerateSynonymsOutput struct {
	Synonyms []string `json:"synonyms"`
}

func (h *SynonymHandlers) GenerateSynonyms(_ context.Context, request *mcp.CallToolRequest, input GenerateSynonymsInput) (*mcp.CallToolResult, GenerateSynonymsOutput, error) {
	if input.Name == "" {
		return nil, GenerateSynonymsOutput{}, fmt.Errorf("name is required")
	}
	return nil, GenerateSynonymsOutput{Synonyms: synonyms.Generate(input.Name, input.URL)}, nil
}
