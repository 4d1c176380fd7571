// ABOUTME: Synonym generator CLI command
// ABOUTME: Prints the deterministic synonym expansion for a name and URL
package cli

import (
	"flag"
	"fmt"

	"github.com/harperreed/beacon/synonyms"
)

// SynonymsCommand prints the generated synonyms for a brand name.
func SynonymsCommand(args []string) error {
	fs := flag.NewFlagSet("synonyms", flag.ExitOnError)
	name := fs.String("name", "", "Brand name (required)")
	url := fs.String("url", "", "Website URL for domain variants")
	fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}

	for _, s := range synonyms.Generate(*name, *url) {
		fmt.Println(s)
	}
	return nil
}
