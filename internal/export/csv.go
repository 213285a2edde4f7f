// Package export serializes uniform record batches into a delimited
// UTF-8 file. The column header comes from the first record's keys, in
// insertion order; every record in a batch is assumed to share them.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/jobscout/internal/stats"
	"github.com/jonathan/jobscout/internal/types"
)

// ErrNoRecords is returned when there is nothing to write. Callers treat
// it as a reportable condition, not a failure: no file is created.
var ErrNoRecords = errors.New("no records to export")

// Record is one row with ordered columns. Column order is insertion
// order, so the header a batch produces is deterministic.
type Record struct {
	cols   []string
	values map[string]string
}

// NewRecord creates an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[string]string)}
}

// Set adds or replaces a column value, remembering first-set order.
func (r *Record) Set(column, value string) *Record {
	if _, ok := r.values[column]; !ok {
		r.cols = append(r.cols, column)
	}
	r.values[column] = value
	return r
}

// Columns returns the column names in insertion order.
func (r *Record) Columns() []string {
	return r.cols
}

// Get returns the value for a column, empty if unset.
func (r *Record) Get(column string) string {
	return r.values[column]
}

// WriteCSV writes a header row derived from the first record followed by
// one row per record. An empty batch returns ErrNoRecords without
// touching the filesystem.
func WriteCSV(records []*Record, path string) error {
	if len(records) == 0 {
		return ErrNoRecords
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	writer := csv.NewWriter(file)
	header := records[0].Columns()
	if err := writer.Write(header); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, record := range records {
		row := make([]string, 0, len(header))
		for _, column := range header {
			row = append(row, record.Get(column))
		}
		if err := writer.Write(row); err != nil {
			_ = file.Close()
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	// A close failure after a clean flush still loses data, so it is
	// reported like any other write failure.
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// FromProjected converts projected jobs into export records with the
// fixed seven-column layout.
func FromProjected(jobs []types.ProjectedJob) []*Record {
	records := make([]*Record, 0, len(jobs))
	for _, job := range jobs {
		records = append(records, NewRecord().
			Set("id", job.ID).
			Set("title", job.Title).
			Set("company", job.Company).
			Set("description", job.Description).
			Set("published_at", job.PublishedAt).
			Set("salary", job.Salary).
			Set("location", job.Location))
	}
	return records
}

// FromPostingCounts converts posting tallies into export records.
func FromPostingCounts(counts []stats.PostingCount) []*Record {
	records := make([]*Record, 0, len(counts))
	for _, c := range counts {
		records = append(records, NewRecord().
			Set("title", c.Title).
			Set("location", c.Location).
			Set("postings", fmt.Sprintf("%d", c.Count)))
	}
	return records
}

// FromSkillCounts converts skill tallies into export records.
func FromSkillCounts(counts []stats.SkillCount) []*Record {
	records := make([]*Record, 0, len(counts))
	for _, c := range counts {
		records = append(records, NewRecord().
			Set("skill", c.Skill).
			Set("count", fmt.Sprintf("%d", c.Count)))
	}
	return records
}

// FromEnriched converts one enriched job into a single-record batch.
func FromEnriched(job types.EnrichedJob) []*Record {
	return []*Record{NewRecord().
		Set("job_id", fmt.Sprintf("%d", job.JobID)).
		Set("company_name", job.CompanyName).
		Set("rating", job.Rating).
		Set("company_description", job.Description).
		Set("company_benefits", job.Benefits)}
}
