// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jonathan/jobscout/internal/stats"
	"github.com/jonathan/jobscout/internal/types"
)

// Printer handles formatted command output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// PrintRecent outputs one line per posting, newest first.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRecent(jobs []types.JobRecord) {
	fmt.Fprintln(p.out, "Most recent postings:")
	for _, job := range jobs {
		fmt.Fprintf(p.out, "- %s (published %s)\n", job.Title, job.PublishedAt)
	}
}

// PrintJSON outputs any value as indented JSON.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(p.out, "failed to render output: %v\n", err)
		return
	}
	fmt.Fprintln(p.out, string(data))
}

// PrintPostingCounts outputs one line per (title, location) tally.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintPostingCounts(counts []stats.PostingCount) {
	for _, c := range counts {
		fmt.Fprintf(p.out, "%d  %s (%s)\n", c.Count, c.Title, c.Location)
	}
}

// PrintMessage outputs a plain line.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintMessage(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// PrintExportResult reports the outcome of a CSV export. Empty batches
// and write failures are reported here and recovered; they never fail
// the command.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintExportResult(path string, err error) {
	if err != nil {
		fmt.Fprintf(p.out, "Nothing exported: %v\n", err)
		return
	}
	fmt.Fprintf(p.out, "CSV %q written.\n", path)
}
