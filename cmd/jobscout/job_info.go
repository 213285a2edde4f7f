package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/jobscout/internal/export"
	"github.com/jonathan/jobscout/internal/listing"
	"github.com/jonathan/jobscout/internal/types"
	"github.com/spf13/cobra"
)

var jobInfoCmd = &cobra.Command{
	Use:   "job-info <job-id>",
	Short: "Enrich a posting with its company overview",
	Long:  "Look up a posting by identifier across all listing pages and enrich it with the company's scraped overview (rating, description, benefits).",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobInfo,
}

var jobInfoCSV string

func init() {
	jobInfoCmd.Flags().StringVar(&jobInfoCSV, "csv", "", "Export the result to this CSV file")

	rootCmd.AddCommand(jobInfoCmd)
}

func runJobInfo(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid job id %q: %w", args[0], err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	job, err := newListingClient(cfg).FindByID(cmd.Context(), id)
	if err != nil {
		if errors.Is(err, listing.ErrNotFound) {
			return fmt.Errorf("job %d not found", id)
		}
		return err
	}

	companyName := strings.TrimSpace(job.Company.Name)
	if companyName == "" {
		return fmt.Errorf("job %d has no company to look up", id)
	}

	overview, err := newScraper(cfg).CompanyOverview(cmd.Context(), companyName)
	if err != nil {
		return fmt.Errorf("failed to scrape company overview: %w", err)
	}

	enriched := types.EnrichedJob{
		JobID:       job.ID,
		CompanyName: companyName,
		Rating:      overview.Rating,
		Description: overview.Description,
		Benefits:    overview.Benefits,
	}

	printer := newPrinter()
	printer.PrintJSON(enriched)
	exportIfRequested(printer, export.FromEnriched(enriched), jobInfoCSV)

	return nil
}
