package main

import (
	"fmt"
	"strings"

	"github.com/jonathan/jobscout/internal/export"
	"github.com/jonathan/jobscout/internal/stats"
	"github.com/spf13/cobra"
)

// topSkillsLimit is how many skills the tally reports.
const topSkillsLimit = 10

var topSkillsCmd = &cobra.Command{
	Use:   "top-skills <job-title>",
	Short: "List the most demanded skills for a job title",
	Long:  "Scrape every job detail page found for a job title, tally the skill chips, and report the ten most frequent skills.",
	Args:  cobra.ExactArgs(1),
	RunE:  runTopSkills,
}

var topSkillsCSV string

func init() {
	topSkillsCmd.Flags().StringVar(&topSkillsCSV, "csv", "", "CSV file to write the tallies to (default skills_<job-title>.csv)")

	rootCmd.AddCommand(topSkillsCmd)
}

func runTopSkills(cmd *cobra.Command, args []string) error {
	jobTitle := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	scraper := newScraper(cfg)
	urls, err := scraper.JobURLs(cmd.Context(), jobTitle)
	if err != nil {
		return fmt.Errorf("failed to list job pages for %q: %w", jobTitle, err)
	}

	// One request at a time; a failed detail page aborts the run so a
	// partial tally never skews the counts.
	tokens := make([]string, 0)
	for _, url := range urls {
		skills, err := scraper.JobSkills(cmd.Context(), url)
		if err != nil {
			return fmt.Errorf("failed to scrape %s: %w", url, err)
		}
		tokens = append(tokens, skills...)
	}

	top := stats.TopSkills(tokens, topSkillsLimit)

	csvPath := topSkillsCSV
	if csvPath == "" {
		csvPath = defaultTopSkillsCSV(jobTitle)
	}

	printer := newPrinter()
	printer.PrintJSON(top)
	exportIfRequested(printer, export.FromSkillCounts(top), csvPath)

	return nil
}

// defaultTopSkillsCSV derives the export filename from the queried title.
func defaultTopSkillsCSV(jobTitle string) string {
	return fmt.Sprintf("skills_%s.csv", strings.ReplaceAll(jobTitle, " ", "-"))
}
