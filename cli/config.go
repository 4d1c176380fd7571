// ABOUTME: Configuration CLI command
// ABOUTME: Shows backend and KV settings, updates them, and triggers manual session sync
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/harperreed/beacon/api"
	"github.com/harperreed/beacon/charm"
)

// ConfigCommand shows or updates the backend configuration.
func ConfigCommand(args []string) error {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	baseURL := fs.String("url", "", "Backend base URL")
	setToken := fs.Bool("set-token", false, "Prompt for an API token (hidden input)")
	syncNow := fs.Bool("sync", false, "Sync saved drafts with the KV server now")
	fs.Parse(args)

	if *syncNow {
		kv, err := charm.GetClient()
		if err != nil {
			return fmt.Errorf("failed to open session storage: %w", err)
		}
		if err := kv.Sync(); err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}
		fmt.Println("✓ Saved drafts synced")
		return nil
	}

	cfg := api.LoadConfig()

	if *baseURL == "" && !*setToken {
		showConfig(cfg)
		return nil
	}

	if *baseURL != "" {
		cfg.BaseURL = strings.TrimRight(*baseURL, "/")
	}

	if *setToken {
		fmt.Print("API token: ")
		token, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
		cfg.Token = strings.TrimSpace(string(token))
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println("✓ Configuration saved")
	return nil
}

func showConfig(cfg *api.Config) {
	fmt.Printf("Backend URL: %s\n", cfg.BaseURL)
	if cfg.Token != "" {
		fmt.Println("API token:   (set)")
	} else {
		fmt.Println("API token:   (not set)")
	}

	kv, err := charm.GetClient()
	if err != nil {
		fmt.Printf("Drafts:      unavailable (%v)\n", err)
		return
	}

	fmt.Printf("KV host:     %s\n", kv.Config().Host)
	if !kv.IsConnected() {
		fmt.Println("KV account:  (offline, drafts stay local)")
		return
	}
	if id, err := kv.ID(); err == nil {
		fmt.Printf("KV account:  %s\n", id)
	}
}
