// ABOUTME: Research waiting step
// ABOUTME: Shows the spinner while the backend researches the brand, merges the result into the draft
package wizard

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/beacon/reshape"
)

func (m Model) handleResearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		// Bump the sequence so the in-flight completion is dropped on arrival.
		m.researchSeq++
		m.researching = false
		m.goTo(StepInput)
		return m, nil
	}
	return m, nil
}

func (m Model) handleResearchDone(msg researchDoneMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.researchSeq || !m.researching {
		return m, nil
	}
	m.researching = false

	if msg.err != nil {
		m.goTo(StepInput)
		m.errMsg = "Research failed: " + msg.err.Error()
		return m, nil
	}

	competitors, topics := reshape.Ingest(msg.result)
	m.mergeResearch(msg.result, competitors, topics)
	m.goTo(StepBrand)
	m.persist()
	return m, nil
}

func (m Model) renderResearchView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Researching " + m.draft.BrandName))
	b.WriteString("\n\n")
	b.WriteString(m.spin.View() + " Finding competitors and search queries...")
	b.WriteString("\n" + mutedStyle.Render("This usually takes under a minute."))
	b.WriteString(helpStyle.Render("\nesc: cancel and go back"))
	return b.String()
}
