// ABOUTME: MCP server subcommand
// ABOUTME: Exposes brand, submission, and synonym tools over stdio
package cli

import (
	"context"
	"database/sql"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/beacon/api"
	"github.com/harperreed/beacon/handlers"
)

// MCPCommand starts the MCP server on stdio.
func MCPCommand(client *api.Client, database *sql.DB) error {
	log.Println("Starting Beacon MCP Server...")

	brandHandlers := handlers.NewBrandHandlers(client)
	submissionHandlers := handlers.NewSubmissionHandlers(database)
	synonymHandlers := handlers.NewSynonymHandlers()

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "beacon",
		Version: "0.1.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_brands",
		Description: "List brands registered with the visibility backend, optionally filtered by name",
	}, brandHandlers.ListBrands)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_brand",
		Description: "Fetch one brand's details by ID",
	}, brandHandlers.GetBrand)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "brand_status",
		Description: "Show the data-collection jobs for a brand",
	}, brandHandlers.BrandStatus)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_submissions",
		Description: "List onboarding submissions recorded on this machine",
	}, submissionHandlers.ListSubmissions)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_synonyms",
		Description: "Generate deterministic name and domain synonyms for a brand or competitor",
	}, synonymHandlers.GenerateSynonyms)

	ctx := context.Background()
	return server.Run(ctx, &mcp.StdioTransport{})
}
