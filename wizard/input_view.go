// ABOUTME: Brand input step
// ABOUTME: Collects name, website, and country, then kicks off backend research
package wizard

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/beacon/api"
)

func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.focusIndex = (m.focusIndex + 1) % len(m.inputs)
		m.updateFormFocus()
		return m, nil

	case "shift+tab", "up":
		m.focusIndex = (m.focusIndex - 1 + len(m.inputs)) % len(m.inputs)
		m.updateFormFocus()
		return m, nil

	case "enter":
		m.syncInputDraft()
		if strings.TrimSpace(m.draft.BrandName) == "" {
			m.errMsg = "Brand name is required"
			return m, nil
		}
		if strings.TrimSpace(m.draft.WebsiteURL) == "" {
			m.errMsg = "Website URL is required"
			return m, nil
		}
		return m.startResearch()
	}

	var cmd tea.Cmd
	m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
	m.syncInputDraft()
	m.errMsg = ""
	return m, cmd
}

// syncInputDraft mirrors the form fields into the draft so persistence sees
// keystrokes, not just completed steps.
func (m *Model) syncInputDraft() {
	m.draft.BrandName = strings.TrimSpace(m.inputs[0].Value())
	m.draft.WebsiteURL = strings.TrimSpace(m.inputs[1].Value())
	m.draft.Country = strings.ToUpper(strings.TrimSpace(m.inputs[2].Value()))
}

func (m Model) startResearch() (tea.Model, tea.Cmd) {
	m.researchSeq++
	m.researching = true
	m.errMsg = ""
	m.step = StepResearch

	seq := m.researchSeq
	req := api.ResearchRequest{
		BrandName:  m.draft.BrandName,
		WebsiteURL: m.draft.WebsiteURL,
		Country:    m.draft.Country,
	}
	backend := m.backend
	return m, tea.Batch(m.spin.Tick, func() tea.Msg {
		result, err := backend.Research(context.Background(), req)
		return researchDoneMsg{seq: seq, result: result, err: err}
	})
}

func (m Model) renderInputView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Tell us about your brand"))
	b.WriteString("\n\n")

	labels := []string{"Name", "Website", "Country"}
	for i, in := range m.inputs {
		b.WriteString(fmt.Sprintf("%-9s %s\n", labels[i]+":", in.View()))
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	}
	b.WriteString(helpStyle.Render("\ntab: next field • enter: research brand • ctrl+r: start over • ctrl+c: quit"))
	return b.String()
}
