// ABOUTME: Import wizard CLI command
// ABOUTME: Validates a research JSON file and launches the import-flavored wizard pre-seeded from it
package cli

import (
	"database/sql"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/beacon/api"
	"github.com/harperreed/beacon/charm"
	"github.com/harperreed/beacon/reshape"
	"github.com/harperreed/beacon/session"
	"github.com/harperreed/beacon/wizard"
)

// ImportCommand validates an exported research file and runs the import
// wizard. Validation happens before the TUI starts so a bad file fails fast
// with a usable error.
func ImportCommand(client *api.Client, history *sql.DB, args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	file := fs.String("file", "", "Path to the research JSON file (required)")
	fs.Parse(args)

	if *file == "" {
		return fmt.Errorf("--file is required")
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", *file, err)
	}

	result, err := reshape.ParseUpload(data)
	if err != nil {
		return fmt.Errorf("invalid research file: %w", err)
	}

	kv, err := charm.GetClient()
	if err != nil {
		return fmt.Errorf("failed to open session storage: %w", err)
	}

	store := session.NewStore(kv, session.FlavorImport, nil)
	model := wizard.NewModel(store, client, history, session.FlavorImport)

	competitors, topics := reshape.Ingest(result)
	model.SeedFromImport(result, competitors, topics)

	fmt.Printf("✓ Validated %s: %d competitors, %d topics\n",
		*file, len(competitors), len(topics))
	if model.Resumed() {
		fmt.Println("Resuming your saved import draft; press ctrl+r in the wizard to discard it and start from the file")
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}
	return nil
}
