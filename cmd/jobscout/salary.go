package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jonathan/jobscout/internal/listing"
	"github.com/jonathan/jobscout/internal/salary"
	"github.com/spf13/cobra"
)

var salaryCmd = &cobra.Command{
	Use:   "salary <job-id>",
	Short: "Report salary evidence for one posting",
	Long:  "Look up a posting by identifier across all listing pages and report its salary: the structured wage field when present, otherwise pattern matches found in the body text.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSalary,
}

func init() {
	rootCmd.AddCommand(salaryCmd)
}

func runSalary(cmd *cobra.Command, args []string) error {
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

	newPrinter().PrintMessage("%s", salary.Extract(*job))
	return nil
}
