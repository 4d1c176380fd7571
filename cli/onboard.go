// ABOUTME: Onboarding wizard CLI command
// ABOUTME: Launches the research-flavored wizard TUI with session resume
package cli

import (
	"database/sql"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/beacon/api"
	"github.com/harperreed/beacon/charm"
	"github.com/harperreed/beacon/session"
	"github.com/harperreed/beacon/wizard"
)

// OnboardCommand runs the research onboarding wizard.
func OnboardCommand(client *api.Client, history *sql.DB) error {
	kv, err := charm.GetClient()
	if err != nil {
		return fmt.Errorf("failed to open session storage: %w", err)
	}

	store := session.NewStore(kv, session.FlavorResearch, nil)
	model := wizard.NewModel(store, client, history, session.FlavorResearch)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}
	return nil
}
