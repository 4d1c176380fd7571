// ABOUTME: Tests for the onboarding data models
// ABOUTME: Validates competitor removal ordering, pristine detection, and tolerant category decoding
package models

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveCompetitorPreservesOrder(t *testing.T) {
	draft := WizardDraft{
		Competitors: []CompetitorEntry{
			NewCompetitorEntry("Alpha", "alpha.com"),
			NewCompetitorEntry("Bravo", "bravo.com"),
			NewCompetitorEntry("Charlie", "charlie.com"),
		},
	}

	removed := draft.RemoveCompetitor("Bravo")
	require.True(t, removed)
	require.Len(t, draft.Competitors, 2)
	assert.Equal(t, "Alpha", draft.Competitors[0].Name)
	assert.Equal(t, "Charlie", draft.Competitors[1].Name)

	// Removing a name that isn't there is a no-op.
	assert.False(t, draft.RemoveCompetitor("Bravo"))
	assert.Len(t, draft.Competitors, 2)
}

func TestCompetitorDisplayNameDualKeys(t *testing.T) {
	// Entries built locally always carry both keys.
	c := NewCompetitorEntry("Acme", "acme.com")
	assert.Equal(t, "Acme", c.Name)
	assert.Equal(t, "Acme", c.CompanyName)

	// Entries decoded from older backends may only carry company_name.
	legacy := CompetitorEntry{CompanyName: "Initech"}
	assert.Equal(t, "Initech", legacy.DisplayName())
}

func TestSessionPristine(t *testing.T) {
	s := &WizardSession{}
	assert.True(t, s.Pristine())

	s.Draft.BrandName = "  "
	assert.True(t, s.Pristine())

	s.Draft.BrandName = "Acme"
	assert.False(t, s.Pristine())

	s = &WizardSession{}
	s.Draft.Topics = append(s.Draft.Topics, TopicEntry{ID: uuid.New(), Name: "Pricing"})
	assert.False(t, s.Pristine())
}

func TestQueryCountSkipsEmptyTopics(t *testing.T) {
	draft := WizardDraft{
		Topics: []TopicEntry{
			{ID: uuid.New(), Name: "Pricing", Queries: []string{"a", "b"}},
			{ID: uuid.New(), Name: "Empty"},
			{ID: uuid.New(), Name: "Support", Queries: []string{"c"}},
		},
	}
	assert.Equal(t, 3, draft.QueryCount())
}

func TestPromptCategoryTolerantDecoding(t *testing.T) {
	raw := []byte(`{
		"use_cases": [{"prompt": "best beach holidays", "category": "use_cases"}],
		"total_prompts": 17,
		"notes": "not an array"
	}`)

	var groups map[string]PromptCategory
	require.NoError(t, json.Unmarshal(raw, &groups))

	assert.True(t, groups["use_cases"].IsArray)
	require.Len(t, groups["use_cases"].Entries, 1)
	assert.Equal(t, "best beach holidays", groups["use_cases"].Entries[0].Prompt)

	// Scalar siblings decode to empty non-array categories instead of failing.
	assert.False(t, groups["total_prompts"].IsArray)
	assert.Empty(t, groups["total_prompts"].Entries)
	assert.False(t, groups["notes"].IsArray)
}
