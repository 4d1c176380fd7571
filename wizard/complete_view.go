// ABOUTME: Review and submit step
// ABOUTME: Summarizes the draft, submits it, and records the result in local history
package wizard

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/beacon/api"
	"github.com/harperreed/beacon/db"
	"github.com/harperreed/beacon/models"
	"github.com/harperreed/beacon/reshape"
)

func (m Model) handleCompleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	if m.submitted != nil {
		switch msg.String() {
		case "enter", "q", "esc":
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.goBack()
		return m, nil

	case "r":
		// Retry after a failed submission; the draft is untouched.
		if m.serverErr != "" {
			return m.startSubmit()
		}
		return m, nil

	case "enter", "s":
		return m.startSubmit()
	}
	return m, nil
}

func (m Model) startSubmit() (tea.Model, tea.Cmd) {
	m.submitting = true
	m.serverErr = ""
	m.errMsg = ""

	payload := reshape.BuildSubmission(m.draft, m.enrichment, m.selectedCollectors())
	backend := m.backend
	return m, tea.Batch(m.spin.Tick, func() tea.Msg {
		result, err := backend.CreateBrand(context.Background(), payload)
		return submitDoneMsg{result: result, err: err}
	})
}

func (m Model) handleSubmitDone(msg submitDoneMsg) (tea.Model, tea.Cmd) {
	if !m.submitting {
		return m, nil
	}
	m.submitting = false

	if msg.err != nil {
		var apiErr *api.APIError
		if errors.As(msg.err, &apiErr) {
			m.serverErr = apiErr.Message
		} else {
			m.serverErr = "Network error: " + msg.err.Error()
		}
		return m, nil
	}

	m.submitted = msg.result
	m.recordSubmission(msg.result)

	// The draft served its purpose; the next run starts clean.
	if _, err := m.store.Clear(); err != nil {
		log.Printf("wizard: failed to clear submitted draft: %v", err)
	}
	return m, nil
}

// recordSubmission writes the local history row. History is best-effort: a
// write failure never disturbs a successful submission.
func (m *Model) recordSubmission(result *api.CreateBrandResult) {
	if m.history == nil {
		return
	}

	branded, neutral := 0, 0
	for _, t := range m.draft.Topics {
		if t.Classification == models.ClassificationBranded {
			branded += len(t.Queries)
		} else {
			neutral += len(t.Queries)
		}
	}

	err := db.RecordSubmission(m.history, &db.Submission{
		BrandID:         result.Brand.ID,
		BrandName:       m.draft.BrandName,
		ArtifactID:      result.ArtifactID,
		Flavor:          string(m.flavor),
		BrandedCount:    branded,
		NeutralCount:    neutral,
		CompetitorCount: len(m.draft.Competitors),
	})
	if err != nil {
		log.Printf("wizard: failed to record submission: %v", err)
	}
}

func (m Model) renderCompleteView() string {
	var b strings.Builder

	if m.submitted != nil {
		b.WriteString(successStyle.Render("✓ Brand submitted"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("Brand ID:    %s\n", m.submitted.Brand.ID))
		if m.submitted.ArtifactID != "" {
			b.WriteString(fmt.Sprintf("Artifact ID: %s\n", m.submitted.ArtifactID))
		}
		if m.submitted.Message != "" {
			b.WriteString("\n" + m.submitted.Message + "\n")
		}
		b.WriteString(helpStyle.Render("\nenter: done"))
		return b.String()
	}

	b.WriteString(titleStyle.Render("Review & submit"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Brand:       %s\n", m.draft.BrandName))
	b.WriteString(fmt.Sprintf("Website:     %s\n", m.draft.WebsiteURL))
	if m.draft.Industry != "" {
		b.WriteString(fmt.Sprintf("Industry:    %s\n", m.draft.Industry))
	}
	b.WriteString(fmt.Sprintf("Competitors: %d\n", len(m.draft.Competitors)))
	b.WriteString(fmt.Sprintf("Topics:      %d\n", len(m.draft.Topics)))
	b.WriteString(fmt.Sprintf("Queries:     %d\n", m.draft.QueryCount()))
	b.WriteString(fmt.Sprintf("Assistants:  %s\n", strings.Join(m.selectedCollectors(), ", ")))

	if m.submitting {
		b.WriteString("\n" + m.spin.View() + " Submitting...")
		return b.String()
	}

	if m.serverErr != "" {
		b.WriteString("\n" + errorStyle.Render("Submission failed: "+m.serverErr))
		b.WriteString(helpStyle.Render("\nr: retry • esc: back"))
		return b.String()
	}

	b.WriteString(helpStyle.Render("\nenter: submit • esc: back"))
	return b.String()
}
