// ABOUTME: Brand details step
// ABOUTME: Lets the user confirm or edit the researched industry and description
package wizard

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleBrandKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.focusIndex = (m.focusIndex + 1) % len(m.inputs)
		m.updateFormFocus()
		return m, nil

	case "shift+tab", "up":
		m.focusIndex = (m.focusIndex - 1 + len(m.inputs)) % len(m.inputs)
		m.updateFormFocus()
		return m, nil

	case "esc":
		m.syncBrandDraft()
		m.goBack()
		return m, nil

	case "enter":
		m.syncBrandDraft()
		m.advance()
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
	m.syncBrandDraft()
	return m, cmd
}

func (m *Model) syncBrandDraft() {
	m.draft.Industry = strings.TrimSpace(m.inputs[0].Value())
	m.draft.Description = strings.TrimSpace(m.inputs[1].Value())
}

func (m Model) renderBrandView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.draft.BrandName))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.draft.WebsiteURL))
	b.WriteString("\n\n")

	labels := []string{"Industry", "About"}
	for i, in := range m.inputs {
		b.WriteString(fmt.Sprintf("%-10s %s\n", labels[i]+":", in.View()))
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	}
	b.WriteString(helpStyle.Render("\ntab: next field • enter: continue • esc: back"))
	return b.String()
}
