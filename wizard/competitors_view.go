// ABOUTME: Competitor list step
// ABOUTME: Reviews researched competitors with add and confirmed-remove editing
package wizard

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/beacon/models"
)

func (m Model) handleCompetitorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.adding {
		return m.handleCompetitorAddKeys(msg)
	}

	if m.pendingRemove != "" {
		name := m.pendingRemove
		m.pendingRemove = ""
		if msg.String() == "y" {
			m.draft.RemoveCompetitor(name)
			if m.compIndex >= len(m.draft.Competitors) && m.compIndex > 0 {
				m.compIndex--
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		if m.compIndex > 0 {
			m.compIndex--
		}
		return m, nil

	case "down", "j":
		if m.compIndex < len(m.draft.Competitors)-1 {
			m.compIndex++
		}
		return m, nil

	case "a":
		m.adding = true
		m.inputs = newEntryInput("Competitor name", "")
		return m, nil

	case "d":
		if len(m.draft.Competitors) > 0 {
			m.pendingRemove = m.draft.Competitors[m.compIndex].DisplayName()
		}
		return m, nil

	case "esc":
		m.goBack()
		return m, nil

	case "enter":
		m.advance()
		return m, nil
	}
	return m, nil
}

func (m Model) handleCompetitorAddKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.inputs = nil
		return m, nil

	case "enter":
		name := strings.TrimSpace(m.inputs[0].Value())
		m.adding = false
		m.inputs = nil
		if name == "" {
			return m, nil
		}
		for _, c := range m.draft.Competitors {
			if strings.EqualFold(c.DisplayName(), name) {
				m.errMsg = fmt.Sprintf("%q is already listed", name)
				return m, nil
			}
		}
		m.draft.Competitors = append(m.draft.Competitors, models.NewCompetitorEntry(name, ""))
		m.compIndex = len(m.draft.Competitors) - 1
		m.errMsg = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[0], cmd = m.inputs[0].Update(msg)
	return m, cmd
}

func (m Model) renderCompetitorsView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Competitors"))
	b.WriteString("\n\n")

	if len(m.draft.Competitors) == 0 {
		b.WriteString(mutedStyle.Render("No competitors yet. Press 'a' to add one."))
		b.WriteString("\n")
	}
	for i, c := range m.draft.Competitors {
		line := c.DisplayName()
		if c.Domain != "" {
			line += mutedStyle.Render("  " + c.Domain)
		}
		if i == m.compIndex && !m.adding {
			b.WriteString(selectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	if m.adding {
		b.WriteString("\nAdd competitor: " + m.inputs[0].View() + "\n")
	}
	if m.pendingRemove != "" {
		b.WriteString("\n" + errorStyle.Render(fmt.Sprintf("Remove %q? (y/n)", m.pendingRemove)))
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	}
	b.WriteString(helpStyle.Render("\na: add • d: remove • enter: continue • esc: back"))
	return b.String()
}
