// ABOUTME: Migration utility for moving file-based wizard drafts into KV session slots.
// ABOUTME: Provides dry-run and backup capabilities for safe draft migration.

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/harperreed/beacon/charm"
	"github.com/harperreed/beacon/models"
	"github.com/harperreed/beacon/session"
)

func main() {
	file := flag.String("file", "", "Path to legacy draft file (default: ~/.local/share/beacon/session.json)")
	flavor := flag.String("flavor", "research", "Wizard flavor to migrate into (research or import)")
	dryRun := flag.Bool("dry-run", false, "Show what would happen without making changes")
	backup := flag.Bool("backup", true, "Create backup before removing the legacy file")
	flag.Parse()

	path := *file
	if path == "" {
		path = filepath.Join(xdg.DataHome, "beacon", "session.json")
	}

	f := session.Flavor(*flavor)
	if f != session.FlavorResearch && f != session.FlavorImport {
		log.Fatalf("Error: unknown flavor %q", *flavor)
	}

	if err := migrate(path, f, *dryRun, *backup); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migration completed successfully")
}

func migrate(path string, flavor session.Flavor, dryRun, createBackup bool) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("legacy draft file does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("failed to read draft file: %w", err)
	}

	var sess models.WizardSession
	if err := json.Unmarshal(data, &sess); err != nil {
		return fmt.Errorf("failed to parse draft file: %w", err)
	}
	if sess.Pristine() {
		return fmt.Errorf("draft file holds no user input, nothing to migrate")
	}

	log.Printf("Found draft for %q at step %q (%d competitors, %d topics)",
		sess.Draft.BrandName, sess.CurrentStep, len(sess.Draft.Competitors), len(sess.Draft.Topics))

	if dryRun {
		log.Printf("[DRY RUN] Would perform the following actions:")
		log.Printf("[DRY RUN] - Write draft into the %s session slot", flavor)
		if createBackup {
			log.Printf("[DRY RUN] - Back up and remove %s", path)
		}
		return nil
	}

	client, err := charm.GetClient()
	if err != nil {
		return fmt.Errorf("failed to open session storage: %w", err)
	}

	store := session.NewStore(client, flavor, nil)
	if existing := store.Load(); existing != nil {
		return fmt.Errorf("the %s slot already holds a draft for %q; clear it first", flavor, existing.Draft.BrandName)
	}

	if err := store.Save(&sess); err != nil {
		return fmt.Errorf("failed to write session slot: %w", err)
	}
	log.Printf("Draft written to the %s session slot", flavor)

	if createBackup {
		backupPath := fmt.Sprintf("%s.backup.%s", path, time.Now().Format("20060102-150405"))
		if err := os.WriteFile(backupPath, data, 0600); err != nil {
			return fmt.Errorf("failed to create backup: %w", err)
		}
		log.Printf("Backup created: %s", backupPath)
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove legacy file: %w", err)
	}
	log.Printf("Removed legacy file: %s", path)

	return nil
}
