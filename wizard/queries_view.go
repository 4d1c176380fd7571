// ABOUTME: Topic and query editing step
// ABOUTME: Navigates topics side to side and queries up and down, with inline add, rename, and delete
package wizard

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/harperreed/beacon/models"
)

const topicRemovePrefix = "topic:"

func (m Model) handleQueryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.adding || m.renaming {
		return m.handleQueryEditKeys(msg)
	}

	if m.pendingRemove != "" {
		pending := m.pendingRemove
		m.pendingRemove = ""
		if msg.String() == "y" && strings.HasPrefix(pending, topicRemovePrefix) {
			m.removeTopic(strings.TrimPrefix(pending, topicRemovePrefix))
		}
		return m, nil
	}

	topic := m.currentTopic()

	switch msg.String() {
	case "left", "h":
		if m.topicIndex > 0 {
			m.topicIndex--
			m.queryIndex = 0
		}
		return m, nil

	case "right", "l":
		if m.topicIndex < len(m.draft.Topics)-1 {
			m.topicIndex++
			m.queryIndex = 0
		}
		return m, nil

	case "up", "k":
		if m.queryIndex > 0 {
			m.queryIndex--
		}
		return m, nil

	case "down", "j":
		if topic != nil && m.queryIndex < len(topic.Queries)-1 {
			m.queryIndex++
		}
		return m, nil

	case "a":
		if topic != nil {
			m.adding = true
			m.inputs = newEntryInput("New query", "")
		}
		return m, nil

	case "d":
		if topic != nil && len(topic.Queries) > 0 {
			if m.queryIndex >= len(topic.Queries) {
				m.queryIndex = len(topic.Queries) - 1
			}
			topic.Queries = append(topic.Queries[:m.queryIndex], topic.Queries[m.queryIndex+1:]...)
			if m.queryIndex >= len(topic.Queries) && m.queryIndex > 0 {
				m.queryIndex--
			}
		}
		return m, nil

	case "r":
		if topic != nil {
			m.renaming = true
			m.inputs = newEntryInput("Topic name", topic.Name)
		}
		return m, nil

	case "t":
		m.adding = true
		m.renaming = true // both flags set means "new topic"
		m.inputs = newEntryInput("New topic name", "")
		return m, nil

	case "x":
		if topic != nil {
			m.pendingRemove = topicRemovePrefix + topic.Key
		}
		return m, nil

	case "c":
		if topic != nil {
			if topic.Classification == models.ClassificationBranded {
				topic.Classification = models.ClassificationNeutral
			} else {
				topic.Classification = models.ClassificationBranded
			}
		}
		return m, nil

	case "esc":
		m.goBack()
		return m, nil

	case "enter":
		if m.draft.QueryCount() == 0 {
			m.errMsg = "Add at least one query before continuing"
			return m, nil
		}
		m.advance()
		return m, nil
	}
	return m, nil
}

func (m Model) handleQueryEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.renaming = false
		m.inputs = nil
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.inputs[0].Value())
		newTopic := m.adding && m.renaming
		addQuery := m.adding && !m.renaming
		rename := m.renaming && !m.adding
		m.adding = false
		m.renaming = false
		m.inputs = nil
		if value == "" {
			return m, nil
		}

		switch {
		case newTopic:
			m.draft.Topics = append(m.draft.Topics, models.TopicEntry{
				ID:             uuid.New(),
				Key:            topicKey(value),
				Name:           value,
				Classification: models.ClassificationNeutral,
				Queries:        []string{},
			})
			m.topicIndex = len(m.draft.Topics) - 1
			m.queryIndex = 0

		case addQuery:
			if topic := m.currentTopic(); topic != nil {
				topic.Queries = append(topic.Queries, value)
				m.queryIndex = len(topic.Queries) - 1
			}

		case rename:
			if topic := m.currentTopic(); topic != nil {
				topic.Name = value
			}
		}
		m.errMsg = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[0], cmd = m.inputs[0].Update(msg)
	return m, cmd
}

// currentTopic returns the selected topic, or nil when there are none.
func (m *Model) currentTopic() *models.TopicEntry {
	if len(m.draft.Topics) == 0 {
		return nil
	}
	if m.topicIndex >= len(m.draft.Topics) {
		m.topicIndex = len(m.draft.Topics) - 1
	}
	return &m.draft.Topics[m.topicIndex]
}

// removeTopic removes by key, the stable identity that survives display-name
// collisions.
func (m *Model) removeTopic(key string) {
	for i, t := range m.draft.Topics {
		if t.Key == key {
			m.draft.Topics = append(m.draft.Topics[:i], m.draft.Topics[i+1:]...)
			break
		}
	}
	if m.topicIndex >= len(m.draft.Topics) && m.topicIndex > 0 {
		m.topicIndex--
	}
	m.queryIndex = 0
}

func topicKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

func (m Model) renderQueriesView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Search queries"))
	b.WriteString("\n\n")

	if len(m.draft.Topics) == 0 {
		b.WriteString(mutedStyle.Render("No topics yet. Press 't' to create one."))
		b.WriteString("\n")
	} else {
		active := m.topicIndex
		if active >= len(m.draft.Topics) {
			active = len(m.draft.Topics) - 1
		}

		var tabs []string
		for i, t := range m.draft.Topics {
			label := fmt.Sprintf("%s (%d)", t.Name, len(t.Queries))
			if i == active {
				tabs = append(tabs, stepActiveStyle.Render(label))
			} else {
				tabs = append(tabs, stepInactiveStyle.Render(label))
			}
		}
		b.WriteString(strings.Join(tabs, "  ") + "\n")

		topic := m.draft.Topics[active]
		b.WriteString(mutedStyle.Render(string(topic.Classification)) + "\n\n")

		if len(topic.Queries) == 0 {
			b.WriteString(mutedStyle.Render("No queries in this topic.") + "\n")
		}
		for i, q := range topic.Queries {
			if i == m.queryIndex && !m.adding && !m.renaming {
				b.WriteString(selectedStyle.Render("> "+q) + "\n")
			} else {
				b.WriteString("  " + q + "\n")
			}
		}
	}

	if m.adding || m.renaming {
		b.WriteString("\n" + m.inputs[0].View() + "\n")
	}
	if strings.HasPrefix(m.pendingRemove, topicRemovePrefix) {
		b.WriteString("\n" + errorStyle.Render("Delete this topic and all its queries? (y/n)"))
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	}
	b.WriteString(helpStyle.Render("\n←/→: topic • ↑/↓: query • a: add query • d: delete query • r: rename • t: new topic • x: delete topic • c: toggle branded • enter: continue • esc: back"))
	return b.String()
}
