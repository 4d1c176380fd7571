// ABOUTME: Step flow topology for both wizard flavors
// ABOUTME: Owns forward/back transitions, the stepper index, and per-step form setup
package wizard

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/harperreed/beacon/models"
	"github.com/harperreed/beacon/session"
	"github.com/harperreed/beacon/synonyms"
)

// stepOrder is the visible step sequence per flavor. Research has no slot of
// its own: it shares input's stepper position.
func (m Model) stepOrder() []Step {
	if m.flavor == session.FlavorImport {
		return []Step{StepBrand, StepCompetitors, StepQueries, StepCollectors, StepEnrichment, StepComplete}
	}
	return []Step{StepInput, StepBrand, StepCompetitors, StepQueries, StepCollectors, StepEnrichment, StepComplete}
}

// stepIndex maps the current step onto the stepper.
func (m Model) stepIndex() int {
	current := m.step
	if current == StepResearch {
		current = StepInput
	}
	for i, s := range m.stepOrder() {
		if s == current {
			return i
		}
	}
	return 0
}

var stepTitles = map[Step]string{
	StepInput:       "Brand",
	StepResearch:    "Brand",
	StepBrand:       "Details",
	StepCompetitors: "Competitors",
	StepQueries:     "Queries",
	StepCollectors:  "Assistants",
	StepEnrichment:  "Enrichment",
	StepComplete:    "Review",
}

func (m Model) renderStepper() string {
	var parts []string
	active := m.stepIndex()
	for i, s := range m.stepOrder() {
		label := stepTitles[s]
		if i == active {
			parts = append(parts, stepActiveStyle.Render("● "+label))
		} else {
			parts = append(parts, stepInactiveStyle.Render("○ "+label))
		}
	}
	return strings.Join(parts, stepInactiveStyle.Render(" — "))
}

// goTo transitions to a step and rebuilds its form state. Steps themselves
// never decide topology; they call advance/goBack with their outcome.
// Item cursors reset because queries and enrichment share them and their
// lists have unrelated lengths.
func (m *Model) goTo(step Step) {
	m.step = step
	m.errMsg = ""
	m.adding = false
	m.renaming = false
	m.pendingRemove = ""
	m.queryIndex = 0
	m.sectionIndex = 0
	m.initStepInputs()
}

// advance moves one step forward in the flavor's sequence.
func (m *Model) advance() {
	order := m.stepOrder()
	idx := m.stepIndex()
	if idx < len(order)-1 {
		m.goTo(order[idx+1])
	}
}

// goBack moves one step backward. The first step has no back transition.
func (m *Model) goBack() {
	order := m.stepOrder()
	idx := m.stepIndex()
	if idx > 0 {
		m.goTo(order[idx-1])
	}
}

// initStepInputs rebuilds the text inputs for the current step.
func (m *Model) initStepInputs() {
	m.focusIndex = 0
	switch m.step {
	case StepInput:
		inputs := make([]textinput.Model, 3)

		inputs[0] = textinput.New()
		inputs[0].Placeholder = "Brand name"
		inputs[0].CharLimit = 100
		inputs[0].SetValue(m.draft.BrandName)

		inputs[1] = textinput.New()
		inputs[1].Placeholder = "Website URL"
		inputs[1].CharLimit = 200
		inputs[1].SetValue(m.draft.WebsiteURL)

		inputs[2] = textinput.New()
		inputs[2].Placeholder = "Country (optional, e.g. GB)"
		inputs[2].CharLimit = 2
		inputs[2].SetValue(m.draft.Country)

		m.inputs = inputs

	case StepBrand:
		inputs := make([]textinput.Model, 2)

		inputs[0] = textinput.New()
		inputs[0].Placeholder = "Industry"
		inputs[0].CharLimit = 100
		inputs[0].SetValue(m.draft.Industry)

		inputs[1] = textinput.New()
		inputs[1].Placeholder = "Description"
		inputs[1].CharLimit = 500
		inputs[1].SetValue(m.draft.Description)

		m.inputs = inputs

	default:
		// List steps create their inputs on demand when adding/renaming.
		m.inputs = nil
	}
	m.updateFormFocus()
}

func (m *Model) updateFormFocus() {
	for i := range m.inputs {
		if i == m.focusIndex {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

// newEntryInput returns a single focused input for inline add/rename.
func newEntryInput(placeholder, value string) []textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 200
	in.SetValue(value)
	in.Focus()
	return []textinput.Model{in}
}

// seedBrandSynonyms fills the brand synonym list from the generator unless
// the user already has entries.
func (m *Model) seedBrandSynonyms() {
	if len(m.enrichment.BrandSynonyms) > 0 {
		return
	}
	m.enrichment.BrandSynonyms = synonyms.Generate(m.draft.BrandName, m.draft.WebsiteURL)
}

// mergeResearch folds a research result into the draft. The name and URL the
// user typed win over what the backend echoed back.
func (m *Model) mergeResearch(res *models.ResearchResult, competitors []models.CompetitorEntry, topics []models.TopicEntry) {
	if m.draft.Industry == "" {
		m.draft.Industry = res.Industry
	}
	if m.draft.Description == "" {
		m.draft.Description = res.Description
	}
	m.draft.Competitors = competitors
	m.draft.Topics = topics
	m.seedBrandSynonyms()
}
