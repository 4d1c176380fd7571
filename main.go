// ABOUTME: Entry point for the Beacon brand onboarding CLI
// ABOUTME: Routes to the wizard, brand admin commands, or MCP server based on arguments
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/harperreed/beacon/api"
	"github.com/harperreed/beacon/cli"
	"github.com/harperreed/beacon/db"
)

const version = "0.1.0"

func main() {
	showVersion := flag.Bool("version", false, "Show version and exit")
	dbPath := flag.String("db-path", "", "History database path (default: ~/.local/share/beacon/beacon.db)")

	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("beacon version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	command := args[0]
	commandArgs := args[1:]

	switch command {
	case "onboard":
		client, database := mustSetup(*dbPath)
		defer database.Close()
		if err := cli.OnboardCommand(client, database); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "import":
		client, database := mustSetup(*dbPath)
		defer database.Close()
		if err := cli.ImportCommand(client, database, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "brands":
		client, database := mustSetup(*dbPath)
		defer database.Close()

		if len(commandArgs) == 0 {
			fmt.Println("Error: brands requires a subcommand")
			printUsage()
			os.Exit(1)
		}

		sub := commandArgs[0]
		subArgs := commandArgs[1:]

		switch sub {
		case "list":
			if err := cli.ListBrandsCommand(client, subArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "show":
			if err := cli.ShowBrandCommand(client, subArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "update":
			if err := cli.UpdateBrandCommand(client, subArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "status":
			if err := cli.BrandStatusCommand(client, database, subArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		default:
			fmt.Printf("Unknown brands command: %s\n\n", sub)
			printUsage()
			os.Exit(1)
		}

	case "history":
		_, database := mustSetup(*dbPath)
		defer database.Close()
		if err := cli.HistoryCommand(database, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "synonyms":
		if err := cli.SynonymsCommand(commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "config":
		if err := cli.ConfigCommand(commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "mcp":
		client, database := mustSetup(*dbPath)
		defer database.Close()
		if err := cli.MCPCommand(client, database); err != nil {
			log.Fatalf("MCP server failed: %v", err)
		}

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

// mustSetup opens the backend client and local history database.
func mustSetup(dbPath string) (*api.Client, *sql.DB) {
	client := api.NewClient(api.LoadConfig())

	database, err := db.OpenDatabase(getDatabasePath(dbPath))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	return client, database
}

func getDatabasePath(dbPath string) string {
	if dbPath != "" {
		return dbPath
	}
	return filepath.Join(xdg.DataHome, "beacon", "beacon.db")
}

func printUsage() {
	fmt.Printf(`beacon v%s - Brand visibility onboarding

USAGE:
  beacon [global flags] <command> [subcommand] [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --db-path <path>       History database path (default: ~/.local/share/beacon/beacon.db)

COMMANDS:
  onboard                Run the onboarding wizard (research flow)
  import                 Onboard from an exported research JSON file
  brands                 Brand admin commands
  history                List submissions recorded on this machine
  synonyms               Generate synonyms for a brand name
  config                 Show or update backend connection settings
  mcp                    Start MCP server for Claude Desktop

ONBOARDING:
  beacon onboard            Start or resume the wizard
  beacon import --file <path>  Validate a research export and onboard from it

BRAND COMMANDS:
  beacon brands list        List brands
    --query <text>            Filter by name substring

  beacon brands show <id>   Show one brand's details

  beacon brands update [flags] <id>  Update a brand
    --name <name>             Brand name
    --industry <industry>     Industry
    --collectors <list>       Comma-separated assistants (chatgpt,claude,gemini,perplexity)
    Note: flags must come before the brand ID

  beacon brands status <id> Show data-collection jobs for a brand

OTHER:
  beacon history            List local submission history
    --limit <n>               Max results (default: 20)

  beacon synonyms --name "On The Beach Group plc" --url onthebeach.co.uk

  beacon config             Show current settings and KV connectivity
    --url <url>               Set backend base URL
    --set-token               Prompt for an API token (hidden input)
    --sync                    Sync saved drafts with the KV server now

ENVIRONMENT:
  %s   Override backend base URL
  %s Override API token

EXAMPLES:
  # Onboard a new brand interactively
  beacon onboard

  # Onboard from a research export
  beacon import --file research.json

  # Check collection progress
  beacon brands status 4f1c9f2a

`, version, api.EnvBaseURL, api.EnvToken)
}
