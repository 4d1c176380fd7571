// ABOUTME: Brand CLI commands
// ABOUTME: Human-friendly commands for listing, inspecting, and updating brands
package cli

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/harperreed/beacon/api"
	"github.com/harperreed/beacon/db"
)

// ListBrandsCommand lists all brands visible to the configured token.
func ListBrandsCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("list-brands", flag.ExitOnError)
	query := fs.String("query", "", "Filter by name substring")
	fs.Parse(args)

	brands, err := client.ListBrands(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list brands: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tWEBSITE\tINDUSTRY\tID")
	fmt.Fprintln(w, "----\t-------\t--------\t--")

	count := 0
	for _, brand := range brands {
		if *query != "" && !strings.Contains(strings.ToLower(brand.Name), strings.ToLower(*query)) {
			continue
		}
		website := brand.WebsiteURL
		if website == "" {
			website = "-"
		}
		industry := brand.Industry
		if industry == "" {
			industry = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", brand.Name, website, industry, brand.ID)
		count++
	}
	w.Flush()

	if count == 0 {
		fmt.Println("No brands found")
		return nil
	}
	fmt.Printf("\nTotal: %d brand(s)\n", count)
	return nil
}

// ShowBrandCommand prints one brand's details.
func ShowBrandCommand(client *api.Client, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("brand ID is required")
	}

	brand, err := client.GetBrand(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get brand: %w", err)
	}

	fmt.Printf("Name:       %s\n", brand.Name)
	fmt.Printf("ID:         %s\n", brand.ID)
	if brand.WebsiteURL != "" {
		fmt.Printf("Website:    %s\n", brand.WebsiteURL)
	}
	if brand.Industry != "" {
		fmt.Printf("Industry:   %s\n", brand.Industry)
	}
	if len(brand.Collectors) > 0 {
		fmt.Printf("Assistants: %s\n", strings.Join(brand.Collectors, ", "))
	}
	fmt.Printf("Created:    %s\n", brand.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}

// UpdateBrandCommand applies a partial update to a brand.
func UpdateBrandCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("update-brand", flag.ExitOnError)
	name := fs.String("name", "", "Updated brand name")
	industry := fs.String("industry", "", "Updated industry")
	collectors := fs.String("collectors", "", "Comma-separated assistant list (e.g. chatgpt,claude)")
	fs.Parse(args)

	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("brand ID is required (flags must come before the ID)")
	}

	update := api.BrandUpdate{Name: *name, Industry: *industry}
	if *collectors != "" {
		for _, c := range strings.Split(*collectors, ",") {
			update.Collectors = append(update.Collectors, strings.TrimSpace(c))
		}
	}

	brand, err := client.UpdateBrand(context.Background(), rest[0], update)
	if err != nil {
		return fmt.Errorf("failed to update brand: %w", err)
	}

	fmt.Printf("✓ Brand updated: %s (ID: %s)\n", brand.Name, brand.ID)
	return nil
}

// BrandStatusCommand shows the data-collection jobs for a brand and refreshes
// the local status cache.
func BrandStatusCommand(client *api.Client, database *sql.DB, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("brand ID is required")
	}
	brandID := args[0]

	statuses, err := client.ArtifactStatuses(context.Background(), brandID)
	if err != nil {
		return fmt.Errorf("failed to get artifact statuses: %w", err)
	}

	if len(statuses) == 0 {
		fmt.Println("No collection jobs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ARTIFACT\tSTATUS\tQUERIES\tSTARTED\tFINISHED")
	fmt.Fprintln(w, "--------\t------\t-------\t-------\t--------")

	for _, s := range statuses {
		started, finished := "-", "-"
		if s.StartedAt != nil {
			started = s.StartedAt.Format("2006-01-02 15:04")
		}
		if s.FinishedAt != nil {
			finished = s.FinishedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", s.ArtifactID, s.Status, s.QueryCount, started, finished)

		if database != nil {
			if err := db.UpsertArtifactStatus(database, s); err != nil {
				log.Printf("failed to cache artifact status: %v", err)
			}
		}
	}
	w.Flush()
	return nil
}

// HistoryCommand lists locally recorded submissions.
func HistoryCommand(database *sql.DB, args []string) error {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	limit := fs.Int("limit", 20, "Maximum results")
	fs.Parse(args)

	subs, err := db.ListSubmissions(database, *limit)
	if err != nil {
		return fmt.Errorf("failed to list submissions: %w", err)
	}

	if len(subs) == 0 {
		fmt.Println("No submissions recorded yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BRAND\tFLAVOR\tBRANDED\tNEUTRAL\tCOMPETITORS\tSUBMITTED")
	fmt.Fprintln(w, "-----\t------\t-------\t-------\t-----------\t---------")

	for _, sub := range subs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n",
			sub.BrandName, sub.Flavor, sub.BrandedCount, sub.NeutralCount,
			sub.CompetitorCount, sub.SubmittedAt.Format("2006-01-02 15:04"))
	}
	w.Flush()

	fmt.Printf("\nTotal: %d submission(s)\n", len(subs))
	return nil
}
