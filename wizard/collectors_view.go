// ABOUTME: Assistant selection step
// ABOUTME: Toggles which AI assistants the backend will poll for this brand
package wizard

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/beacon/models"
)

var collectorLabels = map[string]string{
	models.CollectorChatGPT:    "ChatGPT",
	models.CollectorClaude:     "Claude",
	models.CollectorGemini:     "Gemini",
	models.CollectorPerplexity: "Perplexity",
}

func (m Model) handleCollectorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	all := models.DefaultCollectors()

	switch msg.String() {
	case "up", "k":
		if m.collIndex > 0 {
			m.collIndex--
		}
		return m, nil

	case "down", "j":
		if m.collIndex < len(all)-1 {
			m.collIndex++
		}
		return m, nil

	case " ", "space":
		name := all[m.collIndex]
		m.collectors[name] = !m.collectors[name]
		m.errMsg = ""
		return m, nil

	case "esc":
		m.goBack()
		return m, nil

	case "enter":
		if len(m.selectedCollectors()) == 0 {
			m.errMsg = "Select at least one assistant"
			return m, nil
		}
		m.advance()
		return m, nil
	}
	return m, nil
}

func (m Model) renderCollectorsView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("AI assistants"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Your queries will be run against the selected assistants."))
	b.WriteString("\n\n")

	for i, name := range models.DefaultCollectors() {
		mark := "[ ]"
		if m.collectors[name] {
			mark = "[x]"
		}
		line := mark + " " + collectorLabels[name]
		if i == m.collIndex {
			b.WriteString(selectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	}
	b.WriteString(helpStyle.Render("\nspace: toggle • enter: continue • esc: back"))
	return b.String()
}
