package main

import (
	"fmt"
	"time"

	"github.com/jonathan/jobscout/internal/export"
	"github.com/jonathan/jobscout/internal/parsing"
	"github.com/jonathan/jobscout/internal/types"
	"github.com/spf13/cobra"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Filter postings by required skills and date range",
	Long:  "Filter postings published within an inclusive date range whose body mentions every given skill (case-insensitive substring match).",
	RunE:  runSkills,
}

var (
	skillsList []string
	skillsFrom string
	skillsTo   string
	skillsCSV  string
)

func init() {
	skillsCmd.Flags().StringArrayVarP(&skillsList, "skill", "s", nil, "Required skill, repeatable (required)")
	skillsCmd.Flags().StringVar(&skillsFrom, "from", "", "Range start, YYYY-MM-DD (required)")
	skillsCmd.Flags().StringVar(&skillsTo, "to", "", "Range end, YYYY-MM-DD (required)")
	skillsCmd.Flags().StringVar(&skillsCSV, "csv", "", "Export the result to this CSV file")

	if err := skillsCmd.MarkFlagRequired("skill"); err != nil {
		panic(fmt.Sprintf("failed to mark skill flag as required: %v", err))
	}
	if err := skillsCmd.MarkFlagRequired("from"); err != nil {
		panic(fmt.Sprintf("failed to mark from flag as required: %v", err))
	}
	if err := skillsCmd.MarkFlagRequired("to"); err != nil {
		panic(fmt.Sprintf("failed to mark to flag as required: %v", err))
	}

	rootCmd.AddCommand(skillsCmd)
}

func runSkills(cmd *cobra.Command, args []string) error {
	start, err := time.Parse("2006-01-02", skillsFrom)
	if err != nil {
		return fmt.Errorf("invalid --from date %q: %w", skillsFrom, err)
	}
	end, err := time.Parse("2006-01-02", skillsTo)
	if err != nil {
		return fmt.Errorf("invalid --to date %q: %w", skillsTo, err)
	}

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
		if parsing.InDateRange(job, start, end) && parsing.HasAllSkills(job, skillsList) {
			matched = append(matched, job)
		}
	}
	projected := parsing.ProjectAll(matched)

	printer := newPrinter()
	printer.PrintJSON(projected)
	exportIfRequested(printer, export.FromProjected(projected), skillsCSV)

	return nil
}
