package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobscout/internal/stats"
	"github.com/jonathan/jobscout/internal/types"
)

func TestWriteCSV_HeaderFromFirstRecordInsertionOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	records := []*Record{
		NewRecord().Set("b", "1").Set("a", "2"),
		NewRecord().Set("b", "3").Set("a", "4"),
	}

	require.NoError(t, WriteCSV(records, path))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"b", "a"}, rows[0])
	assert.Equal(t, []string{"1", "2"}, rows[1])
	assert.Equal(t, []string{"3", "4"}, rows[2])
}

func TestWriteCSV_EmptyBatchIsNoOp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	err := WriteCSV(nil, path)
	assert.ErrorIs(t, err, ErrNoRecords)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no file must be created for an empty batch")
}

func TestWriteCSV_ReportsDeviceWriteFailure(t *testing.T) {
	// /dev/full accepts the create but fails every write with ENOSPC,
	// exercising the flush/close error reporting.
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("requires /dev/full")
	}

	err := WriteCSV([]*Record{NewRecord().Set("a", "1")}, "/dev/full")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/dev/full")
}

func TestWriteCSV_UnwritablePath(t *testing.T) {
	err := WriteCSV([]*Record{NewRecord().Set("a", "1")}, filepath.Join(t.TempDir(), "missing", "out.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create")
}

func TestFromProjected_FixedColumns(t *testing.T) {
	records := FromProjected([]types.ProjectedJob{{
		ID:          "1",
		Title:       "Go Developer",
		Company:     "Acme",
		Description: "Build services",
		PublishedAt: "2024-01-02 10:00:00",
		Salary:      "2000",
		Location:    "Lisboa",
	}})

	require.Len(t, records, 1)
	assert.Equal(t, []string{"id", "title", "company", "description", "published_at", "salary", "location"}, records[0].Columns())
	assert.Equal(t, "2000", records[0].Get("salary"))
}

func TestFromPostingCounts(t *testing.T) {
	records := FromPostingCounts([]stats.PostingCount{{Title: "Go Developer", Location: "Lisboa", Count: 3}})

	require.Len(t, records, 1)
	assert.Equal(t, []string{"title", "location", "postings"}, records[0].Columns())
	assert.Equal(t, "3", records[0].Get("postings"))
}

func TestFromSkillCounts(t *testing.T) {
	records := FromSkillCounts([]stats.SkillCount{{Skill: "go", Count: 5}, {Skill: "sql", Count: 2}})

	require.Len(t, records, 2)
	assert.Equal(t, []string{"skill", "count"}, records[0].Columns())
	assert.Equal(t, "5", records[0].Get("count"))
}

func TestFromEnriched(t *testing.T) {
	records := FromEnriched(types.EnrichedJob{
		JobID:       9,
		CompanyName: "Acme",
		Rating:      "4.1",
		Description: "desc",
		Benefits:    "N/A",
	})

	require.Len(t, records, 1)
	assert.Equal(t, "9", records[0].Get("job_id"))
	assert.Equal(t, "4.1", records[0].Get("rating"))
}
