// ABOUTME: Onboarding wizard built on bubbletea
// ABOUTME: Drives the step flow, mirrors every change to the session store, and submits the final payload
package wizard

import (
	"context"
	"database/sql"
	"log"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/beacon/api"
	"github.com/harperreed/beacon/models"
	"github.com/harperreed/beacon/session"
)

// Step names the wizard states. Stored as strings in the persisted session.
type Step string

const (
	StepInput       Step = "input"
	StepResearch    Step = "research"
	StepBrand       Step = "brand"
	StepCompetitors Step = "competitors"
	StepQueries     Step = "queries"
	StepCollectors  Step = "collectors"
	StepEnrichment  Step = "enrichment"
	StepComplete    Step = "complete"
)

// Backend is the slice of the API client the wizard needs. Kept narrow so
// tests can substitute a fake.
type Backend interface {
	Research(ctx context.Context, req api.ResearchRequest) (*models.ResearchResult, error)
	CreateBrand(ctx context.Context, payload models.SubmissionPayload) (*api.CreateBrandResult, error)
}

// researchDoneMsg carries the result of the research call. seq identifies the
// request; completions from a cancelled call carry a stale seq and are dropped.
type researchDoneMsg struct {
	seq    int
	result *models.ResearchResult
	err    error
}

// submitDoneMsg carries the result of the create-brand call.
type submitDoneMsg struct {
	result *api.CreateBrandResult
	err    error
}

// Model is the wizard's bubbletea model.
type Model struct {
	flavor  session.Flavor
	store   *session.Store
	backend Backend
	history *sql.DB // submission log; nil disables recording

	step       Step
	draft      models.WizardDraft
	enrichment models.EnrichmentState
	collectors map[string]bool

	// Form state, rebuilt whenever the step changes.
	inputs     []textinput.Model
	focusIndex int

	// List cursors.
	compIndex    int
	topicIndex   int
	queryIndex   int
	sectionIndex int
	collIndex    int

	// Inline edit state for list steps.
	adding   bool
	renaming bool

	// Pending destructive actions awaiting a y/n keypress.
	pendingRemove    string
	pendingStartOver bool

	// restored marks a model hydrated from a saved session. A restored draft
	// outranks an import seed; start-over is the way to discard it.
	restored bool
	seed     *importSeed

	// Async call state. Each call is gated by its flag; the sequence number
	// lets us drop completions the user already navigated away from.
	researching bool
	researchSeq int
	submitting  bool
	submitted   *api.CreateBrandResult

	errMsg    string
	serverErr string

	spin   spinner.Model
	width  int
	height int
}

// NewModel creates a wizard model for one flavor, restoring any persisted
// session. A session saved mid-research resumes at input.
func NewModel(store *session.Store, backend Backend, history *sql.DB, flavor session.Flavor) Model {
	store.RewriteStep(string(StepResearch), string(StepInput))

	m := Model{
		flavor:     flavor,
		store:      store,
		backend:    backend,
		history:    history,
		step:       StepInput,
		enrichment: models.NewEnrichmentState(),
		collectors: make(map[string]bool),
		spin:       spinner.New(spinner.WithSpinner(spinner.Dot)),
		width:      80,
		height:     24,
	}
	for _, c := range models.DefaultCollectors() {
		m.collectors[c] = true
	}
	if flavor == session.FlavorImport {
		m.step = StepBrand
	}

	if sess := store.Load(); sess != nil {
		m.restored = true
		m.draft = sess.Draft
		if sess.Enrichment.CompetitorSynonyms != nil {
			m.enrichment = sess.Enrichment
		}
		if len(sess.Collectors) > 0 {
			m.collectors = make(map[string]bool)
			for _, c := range sess.Collectors {
				m.collectors[c] = true
			}
		}
		if sess.CurrentStep != "" {
			m.step = Step(sess.CurrentStep)
		}
	}

	m.initStepInputs()
	return m
}

// importSeed is the parsed import file, kept so start-over can re-seed.
type importSeed struct {
	res         *models.ResearchResult
	competitors []models.CompetitorEntry
	topics      []models.TopicEntry
}

// SeedFromImport preloads the draft from a validated import file. Used by the
// import flavor before the program starts. A restored session wins over the
// seed: the user's earlier edits are kept, and start-over discards them in
// favor of the file.
func (m *Model) SeedFromImport(res *models.ResearchResult, competitors []models.CompetitorEntry, topics []models.TopicEntry) {
	m.seed = &importSeed{res: res, competitors: competitors, topics: topics}
	if m.restored {
		return
	}
	m.draft.BrandName = res.CompanyProfile.CompanyName
	m.draft.WebsiteURL = res.CompanyProfile.Website
	m.draft.Industry = res.Industry
	m.draft.Description = res.Description
	m.draft.Competitors = competitors
	m.draft.Topics = topics
	m.seedBrandSynonyms()
	m.step = StepBrand
	m.initStepInputs()
}

// Resumed reports whether the model was hydrated from a saved session.
func (m Model) Resumed() bool {
	return m.restored
}

func (m Model) Init() tea.Cmd {
	if m.researching || m.submitting {
		return m.spin.Tick
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.researching && !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case researchDoneMsg:
		return m.handleResearchDone(msg)

	case submitDoneMsg:
		return m.handleSubmitDone(msg)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Start-over is available on every step except a completed submission.
	if m.pendingStartOver {
		return m.handleStartOverKeys(msg)
	}
	if msg.String() == "ctrl+r" && m.submitted == nil {
		m.pendingStartOver = true
		return m, nil
	}

	var next tea.Model
	var cmd tea.Cmd
	switch m.step {
	case StepInput:
		next, cmd = m.handleInputKeys(msg)
	case StepResearch:
		next, cmd = m.handleResearchKeys(msg)
	case StepBrand:
		next, cmd = m.handleBrandKeys(msg)
	case StepCompetitors:
		next, cmd = m.handleCompetitorKeys(msg)
	case StepQueries:
		next, cmd = m.handleQueryKeys(msg)
	case StepCollectors:
		next, cmd = m.handleCollectorKeys(msg)
	case StepEnrichment:
		next, cmd = m.handleEnrichmentKeys(msg)
	case StepComplete:
		next, cmd = m.handleCompleteKeys(msg)
	default:
		return m, nil
	}

	if updated, ok := next.(Model); ok {
		updated.persist()
		return updated, cmd
	}
	return next, cmd
}

func (m Model) View() string {
	var body string
	switch m.step {
	case StepInput:
		body = m.renderInputView()
	case StepResearch:
		body = m.renderResearchView()
	case StepBrand:
		body = m.renderBrandView()
	case StepCompetitors:
		body = m.renderCompetitorsView()
	case StepQueries:
		body = m.renderQueriesView()
	case StepCollectors:
		body = m.renderCollectorsView()
	case StepEnrichment:
		body = m.renderEnrichmentView()
	case StepComplete:
		body = m.renderCompleteView()
	}

	if m.pendingStartOver {
		body += "\n" + errorStyle.Render("Discard this draft and start over? (y/n)")
	}
	return m.renderStepper() + "\n" + body
}

// persist mirrors the current state to the session slot. Runs strictly after
// the in-memory update, so a reload never shows a state the user hasn't seen.
func (m *Model) persist() {
	if m.submitted != nil {
		// The slot was cleared on success; don't resurrect it.
		return
	}
	sess := &models.WizardSession{
		CurrentStep: string(m.step),
		Draft:       m.draft,
		Enrichment:  m.enrichment,
		Collectors:  m.selectedCollectors(),
	}
	if err := m.store.Save(sess); err != nil {
		log.Printf("wizard: session save failed: %v", err)
	}
}

// selectedCollectors returns the enabled collectors in canonical order.
func (m Model) selectedCollectors() []string {
	var out []string
	for _, c := range models.DefaultCollectors() {
		if m.collectors[c] {
			out = append(out, c)
		}
	}
	return out
}

func (m Model) handleStartOverKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.pendingStartOver = false
	if msg.String() != "y" {
		return m, nil
	}

	cleared, err := m.store.Clear()
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	if !cleared {
		return m, nil
	}

	fresh := NewModel(m.store, m.backend, m.history, m.flavor)
	fresh.width = m.width
	fresh.height = m.height
	if m.seed != nil {
		fresh.SeedFromImport(m.seed.res, m.seed.competitors, m.seed.topics)
	}
	return fresh, nil
}

// Styles shared across step views.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			MarginBottom(1)

	stepActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	stepInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)
)
