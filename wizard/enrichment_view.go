// ABOUTME: Enrichment step
// ABOUTME: Edits synonym and product lists for the brand and each competitor
package wizard

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// enrichSections lists the editable section labels: the brand's two lists
// first, then a synonym and product list per competitor. Removed competitors
// keep their map entries but lose their sections.
func (m *Model) enrichSections() []string {
	sections := []string{"Brand synonyms", "Brand products"}
	for _, c := range m.draft.Competitors {
		name := c.DisplayName()
		sections = append(sections, name+" synonyms", name+" products")
	}
	return sections
}

// sectionItems returns the current section's list.
func (m *Model) sectionItems() []string {
	if max := len(m.enrichSections()); m.sectionIndex >= max {
		m.sectionIndex = max - 1
	}
	switch idx := m.sectionIndex; {
	case idx == 0:
		return m.enrichment.BrandSynonyms
	case idx == 1:
		return m.enrichment.BrandProducts
	default:
		// Competitor sections alternate synonyms/products in draft order.
		comp := m.draft.Competitors[(idx-2)/2].DisplayName()
		if (idx-2)%2 == 0 {
			return m.enrichment.CompetitorSynonyms[comp]
		}
		return m.enrichment.CompetitorProducts[comp]
	}
}

// setSectionItems writes the current section's list back to its home.
func (m *Model) setSectionItems(items []string) {
	switch idx := m.sectionIndex; {
	case idx == 0:
		m.enrichment.BrandSynonyms = items
	case idx == 1:
		m.enrichment.BrandProducts = items
	default:
		comp := m.draft.Competitors[(idx-2)/2].DisplayName()
		if (idx-2)%2 == 0 {
			m.enrichment.CompetitorSynonyms[comp] = items
		} else {
			m.enrichment.CompetitorProducts[comp] = items
		}
	}
}

func (m Model) handleEnrichmentKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.adding {
		return m.handleEnrichmentAddKeys(msg)
	}

	sections := m.enrichSections()

	switch msg.String() {
	case "left", "h":
		if m.sectionIndex > 0 {
			m.sectionIndex--
			m.queryIndex = 0
		}
		return m, nil

	case "right", "l":
		if m.sectionIndex < len(sections)-1 {
			m.sectionIndex++
			m.queryIndex = 0
		}
		return m, nil

	case "up", "k":
		if m.queryIndex > 0 {
			m.queryIndex--
		}
		return m, nil

	case "down", "j":
		if m.queryIndex < len(m.sectionItems())-1 {
			m.queryIndex++
		}
		return m, nil

	case "a":
		m.adding = true
		m.inputs = newEntryInput("New entry", "")
		return m, nil

	case "d":
		items := m.sectionItems()
		if len(items) > 0 {
			if m.queryIndex >= len(items) {
				m.queryIndex = len(items) - 1
			}
			items = append(items[:m.queryIndex], items[m.queryIndex+1:]...)
			m.setSectionItems(items)
			if m.queryIndex >= len(items) && m.queryIndex > 0 {
				m.queryIndex--
			}
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

func (m Model) handleEnrichmentAddKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.inputs = nil
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.inputs[0].Value())
		m.adding = false
		m.inputs = nil
		if value == "" {
			return m, nil
		}
		items := m.sectionItems()
		for _, existing := range items {
			if strings.EqualFold(existing, value) {
				return m, nil
			}
		}
		m.setSectionItems(append(items, value))
		m.queryIndex = len(items)
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[0], cmd = m.inputs[0].Update(msg)
	return m, cmd
}

func (m Model) renderEnrichmentView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Synonyms & products"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Synonyms help match mentions that don't use the exact brand name."))
	b.WriteString("\n\n")

	sections := m.enrichSections()
	idx := m.sectionIndex
	if idx >= len(sections) {
		idx = len(sections) - 1
	}
	b.WriteString(fmt.Sprintf("%s %s %s\n\n",
		mutedStyle.Render("◀"),
		stepActiveStyle.Render(fmt.Sprintf("%s (%d/%d)", sections[idx], idx+1, len(sections))),
		mutedStyle.Render("▶")))

	items := m.sectionItems()
	if len(items) == 0 {
		b.WriteString(mutedStyle.Render("Empty. Press 'a' to add an entry.") + "\n")
	}
	for i, item := range items {
		if i == m.queryIndex && !m.adding {
			b.WriteString(selectedStyle.Render("> "+item) + "\n")
		} else {
			b.WriteString("  " + item + "\n")
		}
	}

	if m.adding {
		b.WriteString("\n" + m.inputs[0].View() + "\n")
	}
	b.WriteString(helpStyle.Render("\n←/→: section • ↑/↓: entry • a: add • d: delete • enter: continue • esc: back"))
	return b.String()
}
