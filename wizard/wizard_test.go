// ABOUTME: Tests for the wizard step flow
// ABOUTME: Drives the bubbletea model directly with key and completion messages against a fake backend
package wizard

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/beacon/api"
	"github.com/harperreed/beacon/charm"
	"github.com/harperreed/beacon/models"
	"github.com/harperreed/beacon/session"
)

type fakeBackend struct {
	researchResult *models.ResearchResult
	researchErr    error
	createResult   *api.CreateBrandResult
	createErr      error
	lastPayload    models.SubmissionPayload
	createCalls    int
}

func (f *fakeBackend) Research(_ context.Context, _ api.ResearchRequest) (*models.ResearchResult, error) {
	return f.researchResult, f.researchErr
}

func (f *fakeBackend) CreateBrand(_ context.Context, payload models.SubmissionPayload) (*api.CreateBrandResult, error) {
	f.createCalls++
	f.lastPayload = payload
	return f.createResult, f.createErr
}

func newTestWizard(t *testing.T, flavor session.Flavor, backend Backend) (Model, *session.Store) {
	t.Helper()
	client := charm.NewTestClient(t)
	store := session.NewStore(client, flavor, nil)
	return NewModel(store, backend, nil, flavor), store
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func keyEnter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }

func asModel(t *testing.T, m tea.Model) Model {
	t.Helper()
	wm, ok := m.(Model)
	require.True(t, ok)
	return wm
}

func seededDraft() models.WizardDraft {
	return models.WizardDraft{
		BrandName:  "On The Beach",
		WebsiteURL: "https://www.onthebeach.co.uk",
		Competitors: []models.CompetitorEntry{
			models.NewCompetitorEntry("Jet2holidays", "jet2holidays.com"),
			models.NewCompetitorEntry("loveholidays", ""),
		},
		Topics: []models.TopicEntry{
			{
				ID:             uuid.New(),
				Key:            "beach_holidays",
				Name:           "Beach Holidays",
				Classification: models.ClassificationNeutral,
				Queries:        []string{"best beach holiday deals", "cheap package holidays"},
			},
		},
	}
}

func TestResearchFlavorStartsAtInput(t *testing.T) {
	m, _ := newTestWizard(t, session.FlavorResearch, &fakeBackend{})
	assert.Equal(t, StepInput, m.step)
	assert.Len(t, m.inputs, 3)
}

func TestImportFlavorStartsAtBrand(t *testing.T) {
	m, _ := newTestWizard(t, session.FlavorImport, &fakeBackend{})
	assert.Equal(t, StepBrand, m.step)
	assert.NotContains(t, m.stepOrder(), StepInput)
}

func TestAdvanceFollowsStepOrder(t *testing.T) {
	m, _ := newTestWizard(t, session.FlavorResearch, &fakeBackend{})
	m.goTo(StepBrand)
	m.advance()
	assert.Equal(t, StepCompetitors, m.step)
	m.advance()
	assert.Equal(t, StepQueries, m.step)
	m.goBack()
	assert.Equal(t, StepCompetitors, m.step)
}

func TestBackFromFirstStepStays(t *testing.T) {
	m, _ := newTestWizard(t, session.FlavorResearch, &fakeBackend{})
	m.goBack()
	assert.Equal(t, StepInput, m.step)
}

func TestResumeRewindsResearchToInput(t *testing.T) {
	client := charm.NewTestClient(t)
	store := session.NewStore(client, session.FlavorResearch, nil)
	require.NoError(t, store.Save(&models.WizardSession{
		CurrentStep: "research",
		Draft:       seededDraft(),
	}))

	m := NewModel(store, &fakeBackend{}, nil, session.FlavorResearch)
	assert.Equal(t, StepInput, m.step)
	assert.Equal(t, "On The Beach", m.draft.BrandName)
	assert.Len(t, m.draft.Competitors, 2)
}

func TestResearchDoneMergesResultAndSeedsSynonyms(t *testing.T) {
	m, _ := newTestWizard(t, session.FlavorResearch, &fakeBackend{})
	m.draft.BrandName = "On The Beach Group plc"
	m.draft.WebsiteURL = "https://www.onthebeach.co.uk"
	m.researching = true
	m.researchSeq = 1
	m.step = StepResearch

	result := &models.ResearchResult{
		Industry: "Travel",
		Competitors: []models.ResearchCompetitor{
			{Name: "Jet2holidays", Domain: "jet2holidays.com"},
		},
		NeutralPrompts: map[string]models.PromptCategory{
			"beach_holidays": {IsArray: true, Entries: []models.PromptEntry{
				{Prompt: "best beach holidays"},
			}},
		},
	}

	next, _ := m.Update(researchDoneMsg{seq: 1, result: result})
	got := asModel(t, next)

	assert.Equal(t, StepBrand, got.step)
	assert.False(t, got.researching)
	assert.Equal(t, "Travel", got.draft.Industry)
	require.Len(t, got.draft.Competitors, 1)
	require.Len(t, got.draft.Topics, 1)
	assert.Contains(t, got.enrichment.BrandSynonyms, "OTB")
	assert.Contains(t, got.enrichment.BrandSynonyms, "onthebeach.co.uk")
}

func TestStaleResearchCompletionIsDropped(t *testing.T) {
	m, _ := newTestWizard(t, session.FlavorResearch, &fakeBackend{})
	m.researching = true
	m.researchSeq = 2
	m.step = StepResearch

	next, _ := m.Update(researchDoneMsg{seq: 1, result: &models.ResearchResult{Industry: "Stale"}})
	got := asModel(t, next)

	assert.Equal(t, StepResearch, got.step)
	assert.True(t, got.researching)
	assert.Empty(t, got.draft.Industry)
}

func TestResearchErrorReturnsToInput(t *testing.T) {
	m, _ := newTestWizard(t, session.FlavorResearch, &fakeBackend{})
	m.draft.BrandName = "Acme"
	m.researching = true
	m.researchSeq = 1
	m.step = StepResearch

	next, _ := m.Update(researchDoneMsg{seq: 1, err: &api.APIError{Message: "rate limited"}})
	got := asModel(t, next)

	assert.Equal(t, StepInput, got.step)
	assert.Contains(t, got.errMsg, "rate limited")
	assert.Equal(t, "Acme", got.draft.BrandName, "draft survives a failed research call")
}

func TestCompetitorRemovalRequiresConfirmation(t *testing.T) {
	m, _ := newTestWizard(t, session.FlavorResearch, &fakeBackend{})
	m.draft = seededDraft()
	m.goTo(StepCompetitors)

	// Decline keeps the list intact.
	next, _ := m.Update(keyRune('d'))
	got := asModel(t, next)
	assert.Equal(t, "Jet2holidays", got.pendingRemove)
	next, _ = got.Update(keyRune('n'))
	got = asModel(t, next)
	assert.Len(t, got.draft.Competitors, 2)

	// Confirm removes, preserving the order of the rest.
	next, _ = got.Update(keyRune('d'))
	next, _ = asModel(t, next).Update(keyRune('y'))
	got = asModel(t, next)
	require.Len(t, got.draft.Competitors, 1)
	assert.Equal(t, "loveholidays", got.draft.Competitors[0].DisplayName())
}

func TestAddCompetitorRejectsDuplicate(t *testing.T) {
	m, _ := newTestWizard(t, session.FlavorResearch, &fakeBackend{})
	m.draft = seededDraft()
	m.goTo(StepCompetitors)

	next, _ := m.Update(keyRune('a'))
	got := asModel(t, next)
	require.True(t, got.adding)

	for _, r := range "jet2holidays" {
		next, _ = got.Update(keyRune(r))
		got = asModel(t, next)
	}
	next, _ = got.Update(keyEnter())
	got = asModel(t, next)

	assert.Len(t, got.draft.Competitors, 2)
	assert.NotEmpty(t, got.errMsg)
}

func TestQueriesStepRequiresAQueryToAdvance(t *testing.T) {
	m, _ := newTestWizard(t, session.FlavorResearch, &fakeBackend{})
	m.draft = seededDraft()
	m.draft.Topics[0].Queries = nil
	m.goTo(StepQueries)

	next, _ := m.Update(keyEnter())
	got := asModel(t, next)
	assert.Equal(t, StepQueries, got.step)
	assert.NotEmpty(t, got.errMsg)
}

func TestCollectorsRequireAtLeastOne(t *testing.T) {
	m, _ := newTestWizard(t, session.FlavorResearch, &fakeBackend{})
	m.draft = seededDraft()
	m.goTo(StepCollectors)
	for c := range m.collectors {
		m.collectors[c] = false
	}

	next, _ := m.Update(keyEnter())
	got := asModel(t, next)
	assert.Equal(t, StepCollectors, got.step)
	assert.NotEmpty(t, got.errMsg)
}

func TestSubmitFailureKeepsDraftAndAllowsRetry(t *testing.T) {
	backend := &fakeBackend{createErr: &api.APIError{Message: "duplicate brand"}}
	m, store := newTestWizard(t, session.FlavorResearch, backend)
	m.draft = seededDraft()
	m.goTo(StepComplete)

	next, cmd := m.Update(keyEnter())
	got := asModel(t, next)
	require.True(t, got.submitting)
	require.NotNil(t, cmd)

	next, _ = got.Update(submitDoneMsg{err: backend.createErr})
	got = asModel(t, next)

	assert.False(t, got.submitting)
	assert.Equal(t, "duplicate brand", got.serverErr)
	assert.Equal(t, "On The Beach", got.draft.BrandName)
	assert.NotNil(t, store.Load(), "failed submission keeps the persisted draft")

	// Retry issues a fresh submission with the same draft.
	next, cmd = got.Update(keyRune('r'))
	got = asModel(t, next)
	assert.True(t, got.submitting)
	assert.NotNil(t, cmd)
}

func TestSubmitSuccessClearsSessionAndStopsPersisting(t *testing.T) {
	backend := &fakeBackend{createResult: &api.CreateBrandResult{
		Brand:      models.Brand{ID: "brand-1", Name: "On The Beach"},
		ArtifactID: "artifact-1",
	}}
	m, store := newTestWizard(t, session.FlavorResearch, backend)
	m.draft = seededDraft()
	m.goTo(StepComplete)
	m.persist()
	require.NotNil(t, store.Load())

	next, _ := m.Update(keyEnter())
	got := asModel(t, next)
	next, _ = got.Update(submitDoneMsg{result: backend.createResult})
	got = asModel(t, next)

	require.NotNil(t, got.submitted)
	assert.Equal(t, "brand-1", got.submitted.Brand.ID)
	assert.Nil(t, store.Load(), "successful submission clears the slot")

	// Keys after success must not resurrect the cleared draft.
	next, _ = got.Update(keyRune('x'))
	_ = asModel(t, next)
	assert.Nil(t, store.Load())
}

func TestSubmissionPayloadUsesSelectedCollectors(t *testing.T) {
	backend := &fakeBackend{createResult: &api.CreateBrandResult{Brand: models.Brand{ID: "b"}}}
	m, _ := newTestWizard(t, session.FlavorResearch, backend)
	m.draft = seededDraft()
	m.collectors[models.CollectorGemini] = false
	m.collectors[models.CollectorPerplexity] = false
	m.goTo(StepComplete)

	next, cmd := m.Update(keyEnter())
	_ = asModel(t, next)
	require.NotNil(t, cmd)

	// The submit command is batched with the spinner tick; run the batch
	// members synchronously to reach the backend call.
	if batch, ok := cmd().(tea.BatchMsg); ok {
		for _, c := range batch {
			if c != nil {
				c()
			}
		}
	}

	assert.Equal(t, 1, backend.createCalls)
	assert.Equal(t, []string{"chatgpt", "claude"}, backend.lastPayload.Collectors)
	assert.False(t, backend.lastPayload.Metadata.AutoCollect)
}

func TestStartOverConfirmResetsModel(t *testing.T) {
	m, store := newTestWizard(t, session.FlavorResearch, &fakeBackend{})
	m.draft = seededDraft()
	m.goTo(StepQueries)
	m.persist()
	require.NotNil(t, store.Load())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	got := asModel(t, next)
	require.True(t, got.pendingStartOver)

	next, _ = got.Update(keyRune('y'))
	got = asModel(t, next)

	assert.Equal(t, StepInput, got.step)
	assert.Empty(t, got.draft.BrandName)
	assert.Nil(t, store.Load())
}

func TestStartOverDeclinedKeepsEverything(t *testing.T) {
	m, store := newTestWizard(t, session.FlavorResearch, &fakeBackend{})
	m.draft = seededDraft()
	m.goTo(StepQueries)
	m.persist()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	next, _ = asModel(t, next).Update(keyRune('n'))
	got := asModel(t, next)

	assert.Equal(t, StepQueries, got.step)
	assert.Equal(t, "On The Beach", got.draft.BrandName)
	assert.NotNil(t, store.Load())
}

func TestDeleteAfterCrossingStepsDoesNotPanic(t *testing.T) {
	m, _ := newTestWizard(t, session.FlavorResearch, &fakeBackend{})
	m.draft = seededDraft()
	m.draft.Topics[0].Queries = append(m.draft.Topics[0].Queries, "family friendly beach resorts")
	m.enrichment.BrandSynonyms = []string{"OTB"}
	m.goTo(StepQueries)

	// Walk the query cursor to the last of three entries, advance through
	// collectors into enrichment (one brand synonym), then delete there.
	var next tea.Model = m
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyDown}, {Type: tea.KeyDown},
		{Type: tea.KeyEnter}, {Type: tea.KeyEnter},
		keyRune('d'),
	} {
		next, _ = next.Update(msg)
	}
	got := asModel(t, next)

	assert.Equal(t, StepEnrichment, got.step)
	assert.Empty(t, got.enrichment.BrandSynonyms)
}

func TestDeleteQueryAfterReturningFromEnrichment(t *testing.T) {
	m, _ := newTestWizard(t, session.FlavorResearch, &fakeBackend{})
	m.draft = seededDraft()
	m.enrichment.BrandSynonyms = []string{"OTB", "onthebeach", "on the beach", "OnTheBeach"}
	m.goTo(StepEnrichment)

	// Move deep into the synonym list, back out to queries (two entries),
	// then delete a query.
	var next tea.Model = m
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown},
		{Type: tea.KeyEsc}, {Type: tea.KeyEsc},
		keyRune('d'),
	} {
		next, _ = next.Update(msg)
	}
	got := asModel(t, next)

	assert.Equal(t, StepQueries, got.step)
	assert.Len(t, got.draft.Topics[0].Queries, 1)
}

func TestImportResumeKeepsSavedDraft(t *testing.T) {
	client := charm.NewTestClient(t)
	store := session.NewStore(client, session.FlavorImport, nil)

	saved := seededDraft()
	saved.BrandName = "Edited Brand"
	require.NoError(t, store.Save(&models.WizardSession{
		CurrentStep: string(StepQueries),
		Draft:       saved,
	}))

	m := NewModel(store, &fakeBackend{}, nil, session.FlavorImport)
	require.True(t, m.Resumed())

	res := &models.ResearchResult{
		CompanyProfile: models.CompanyProfile{CompanyName: "File Brand", Website: "https://file.test"},
	}
	m.SeedFromImport(res, nil, nil)

	// The saved session wins over the file seed.
	assert.Equal(t, "Edited Brand", m.draft.BrandName)
	assert.Equal(t, StepQueries, m.step)
	assert.Len(t, m.draft.Competitors, 2)

	// Start-over discards the saved draft and falls back to the file.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	next, _ = asModel(t, next).Update(keyRune('y'))
	got := asModel(t, next)

	assert.Equal(t, "File Brand", got.draft.BrandName)
	assert.Equal(t, StepBrand, got.step)
	assert.Nil(t, store.Load())
}

func TestSeedFromImport(t *testing.T) {
	m, _ := newTestWizard(t, session.FlavorImport, &fakeBackend{})

	res := &models.ResearchResult{
		CompanyProfile: models.CompanyProfile{CompanyName: "Acme", Website: "https://acme.test"},
		Industry:       "Tools",
	}
	competitors := []models.CompetitorEntry{models.NewCompetitorEntry("Initech", "")}
	topics := []models.TopicEntry{{ID: uuid.New(), Key: "anvils", Name: "Anvils", Classification: models.ClassificationNeutral, Queries: []string{"best anvil"}}}

	m.SeedFromImport(res, competitors, topics)

	assert.Equal(t, StepBrand, m.step)
	assert.Equal(t, "Acme", m.draft.BrandName)
	assert.Equal(t, "https://acme.test", m.draft.WebsiteURL)
	assert.Len(t, m.draft.Competitors, 1)
	assert.NotEmpty(t, m.enrichment.BrandSynonyms)
}
