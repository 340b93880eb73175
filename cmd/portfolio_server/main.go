// Package main provides the entry point for the portfolio site server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio_server",
	Short: "Bilingual portfolio site server",
	Long:  "Serves the server-rendered portfolio pages (résumé, sitemap, robots) from schemaless content documents stored in PostgreSQL.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
