package main

import (
	"fmt"

	"github.com/jonathan/jobscout/internal/export"
	"github.com/jonathan/jobscout/internal/parsing"
	"github.com/jonathan/jobscout/internal/types"
	"github.com/spf13/cobra"
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Filter Full-time postings by company and location",
	Long:  "Filter postings down to those from a company (exact, case-insensitive) that carry the Full-time tag and at least one matching location.",
	RunE:  runFilter,
}

var (
	filterCompany  string
	filterLocation string
	filterLimit    int
	filterCSV      string
)

func init() {
	filterCmd.Flags().StringVarP(&filterCompany, "company", "c", "", "Company name (required)")
	filterCmd.Flags().StringVarP(&filterLocation, "location", "l", "", "Location name (required)")
	filterCmd.Flags().IntVar(&filterLimit, "limit", 10, "Maximum number of matches to return")
	filterCmd.Flags().StringVar(&filterCSV, "csv", "", "Export the result to this CSV file")

	if err := filterCmd.MarkFlagRequired("company"); err != nil {
		panic(fmt.Sprintf("failed to mark company flag as required: %v", err))
	}
	if err := filterCmd.MarkFlagRequired("location"); err != nil {
		panic(fmt.Sprintf("failed to mark location flag as required: %v", err))
	}

	rootCmd.AddCommand(filterCmd)
}

func runFilter(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	jobs, err := newListingClient(cfg).FirstPage(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch postings: %w", err)
	}

	matched := make([]types.JobRecord, 0)
	for _, job := range jobs {
		if parsing.MatchesCompany(job, filterCompany) && parsing.IsFullTimeIn(job, filterLocation) {
			matched = append(matched, job)
		}
	}
	matched = parsing.Limit(matched, filterLimit)
	projected := parsing.ProjectAll(matched)

	printer := newPrinter()
	if len(projected) == 0 {
		printer.PrintMessage("No Full-time postings found in %q for company %q.", filterLocation, filterCompany)
	} else {
		printer.PrintJSON(projected)
	}
	exportIfRequested(printer, export.FromProjected(projected), filterCSV)

	return nil
}
