// Package main provides the entry point for the jobscout CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobscout",
	Short: "Job listing query and statistics tool",
	Long:  "jobscout queries a paginated job listing API, filters and projects postings, detects salary evidence, scrapes company and skill data, and exports results to CSV.",
}

var useBrowser bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&useBrowser, "use-browser", false, "Render scrape targets in a headless browser (for JavaScript-only pages)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
