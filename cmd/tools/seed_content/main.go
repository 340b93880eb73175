// Command seed_content loads content documents from a JSON file into the
// documents table. Each document is checked against its advisory schema;
// warnings are printed but never block the write.
//
// Usage:
//
//	go run cmd/tools/seed_content/main.go content.json
//
// Requires DATABASE_URL environment variable to be set.
//
// The input file holds a list of documents:
//
//	{
//	  "documents": [
//	    {"collection": "public", "id": "site", "data": {"display_name_en": "..."}},
//	    {"collection": "projects", "id": "portfolio", "data": {"title": "..."}}
//	  ]
//	}
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/ymori/portfolio-server/internal/db"
	"github.com/ymori/portfolio-server/internal/observability"
	"github.com/ymori/portfolio-server/internal/schemas"
)

type seedFile struct {
	Documents []seedDocument `json:"documents"`
}

type seedDocument struct {
	Collection string         `json:"collection"`
	ID         string         `json:"id"`
	Data       map[string]any `json:"data"`
}

func main() {
	_ = godotenv.Load()

	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <content.json>\n", os.Args[0])
		os.Exit(1)
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "ERROR: DATABASE_URL environment variable not set")
		os.Exit(1)
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to read seed file: %v\n", err)
		os.Exit(1)
	}

	var seed seedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to parse seed file: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	database, err := db.Connect(ctx, dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to ensure schema: %v\n", err)
		os.Exit(1)
	}

	printer := observability.NewPrinter(os.Stdout)

	perCollection := make(map[string]int)
	for _, doc := range seed.Documents {
		perCollection[doc.Collection]++
	}
	printer.PrintSeedPlan(perCollection)

	written := 0
	warned := 0
	for _, doc := range seed.Documents {
		if doc.Collection == "" || doc.ID == "" {
			fmt.Fprintf(os.Stderr, "ERROR: Document missing collection or id: %+v\n", doc)
			os.Exit(1)
		}

		warnings, err := schemas.Check(doc.Collection, doc.ID, doc.Data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Schema check failed for %s/%s: %v\n", doc.Collection, doc.ID, err)
			os.Exit(1)
		}
		for _, w := range warnings {
			fmt.Printf("  WARNING %s/%s %s\n", doc.Collection, doc.ID, w)
		}
		warned += len(warnings)

		if err := database.PutDocument(ctx, doc.Collection, doc.ID, doc.Data); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to write %s/%s: %v\n", doc.Collection, doc.ID, err)
			os.Exit(1)
		}
		written++
		fmt.Printf("  Wrote %s/%s\n", doc.Collection, doc.ID)
	}

	printer.PrintSeedSummary(written, warned)
}
