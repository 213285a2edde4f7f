package parsing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobscout/internal/types"
)

func TestProject_FullRecord(t *testing.T) {
	job := types.JobRecord{
		ID:          42,
		Title:       "Go Developer",
		Company:     types.Company{Name: "Acme"},
		Body:        "<p>Build services</p>",
		PublishedAt: "2024-01-02 10:00:00",
		Wage:        "2000",
		Locations:   []types.Location{{Name: "Lisboa"}, {Name: "Porto"}},
	}

	projected := Project(job)

	assert.Equal(t, "42", projected.ID)
	assert.Equal(t, "Go Developer", projected.Title)
	assert.Equal(t, "Acme", projected.Company)
	assert.Equal(t, "Build services", projected.Description)
	assert.Equal(t, "2024-01-02 10:00:00", projected.PublishedAt)
	assert.Equal(t, "2000", projected.Salary)
	assert.Equal(t, "Lisboa; Porto", projected.Location)
}

func TestProject_EmptyRecordGetsPlaceholders(t *testing.T) {
	projected := Project(types.JobRecord{})

	assert.Equal(t, types.Placeholder, projected.ID)
	assert.Equal(t, types.Placeholder, projected.Title)
	assert.Equal(t, types.Placeholder, projected.Company)
	assert.Equal(t, types.Placeholder, projected.Description)
	assert.Equal(t, types.Placeholder, projected.PublishedAt)
	assert.Equal(t, types.Placeholder, projected.Salary)
	assert.Equal(t, types.Placeholder, projected.Location)
}

func TestProject_AlwaysSevenKeys(t *testing.T) {
	// The projection must stay column-homogeneous for export even when
	// the source record is partial.
	data, err := json.Marshal(Project(types.JobRecord{Title: "Only title"}))
	require.NoError(t, err)

	var asMap map[string]string
	require.NoError(t, json.Unmarshal(data, &asMap))

	assert.Len(t, asMap, 7)
	for _, key := range []string{"id", "title", "company", "description", "published_at", "salary", "location"} {
		assert.Contains(t, asMap, key)
		assert.NotEmpty(t, asMap[key])
	}
}

func TestProjectAll_PreservesOrder(t *testing.T) {
	jobs := []types.JobRecord{
		{ID: 1, Title: "First"},
		{ID: 2, Title: "Second"},
	}

	projected := ProjectAll(jobs)

	require.Len(t, projected, 2)
	assert.Equal(t, "First", projected[0].Title)
	assert.Equal(t, "Second", projected[1].Title)
}
