package main

import (
	"fmt"

	"github.com/jonathan/jobscout/internal/export"
	"github.com/jonathan/jobscout/internal/parsing"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the N most recent postings",
	Long:  "List the N most recent postings from the first listing page, sorted by publication timestamp descending.",
	RunE:  runList,
}

var (
	listCount int
	listCSV   string
)

func init() {
	listCmd.Flags().IntVarP(&listCount, "count", "n", 10, "Number of postings to show")
	listCmd.Flags().StringVar(&listCSV, "csv", "", "Export the result to this CSV file")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	jobs, err := newListingClient(cfg).FirstPage(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch postings: %w", err)
	}

	recent := parsing.MostRecent(jobs, listCount)

	printer := newPrinter()
	printer.PrintRecent(recent)
	exportIfRequested(printer, export.FromProjected(parsing.ProjectAll(recent)), listCSV)

	return nil
}
