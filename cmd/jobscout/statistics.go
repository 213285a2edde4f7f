package main

import (
	"github.com/jonathan/jobscout/internal/export"
	"github.com/jonathan/jobscout/internal/stats"
	"github.com/jonathan/jobscout/internal/types"
	"github.com/spf13/cobra"
)

var statisticsCmd = &cobra.Command{
	Use:   "statistics",
	Short: "Count postings per title and location",
	Long:  "Walk every listing page and count postings keyed by title and joined location string, then export the tallies to CSV.",
	RunE:  runStatistics,
}

var statisticsCSV string

func init() {
	statisticsCmd.Flags().StringVar(&statisticsCSV, "csv", "job_counts.csv", "CSV file to write the tallies to")

	rootCmd.AddCommand(statisticsCmd)
}

func runStatistics(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	printer := newPrinter()
	tally := stats.NewPostingTally()

	// A transport failure truncates the walk; the pages already seen
	// still feed the tallies.
	if err := newListingClient(cfg).WalkPages(cmd.Context(), func(_ int, jobs []types.JobRecord) {
		tally.Add(jobs)
	}); err != nil {
		printer.PrintMessage("Listing walk stopped early: %v", err)
	}

	counts := tally.Counts()
	printer.PrintPostingCounts(counts)
	exportIfRequested(printer, export.FromPostingCounts(counts), statisticsCSV)

	return nil
}
