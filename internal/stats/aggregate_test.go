package stats

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobscout/internal/types"
)

func posting(title string, locations ...string) types.JobRecord {
	job := types.JobRecord{Title: title}
	for _, l := range locations {
		job.Locations = append(job.Locations, types.Location{Name: l})
	}
	return job
}

func TestPostingTally_SumsAcrossPages(t *testing.T) {
	tally := NewPostingTally()

	// Duplicate (title, location) pairs span the page boundary
	tally.Add([]types.JobRecord{
		posting("Go Developer", "Lisboa"),
		posting("Data Engineer", "Porto"),
	})
	tally.Add([]types.JobRecord{
		posting("Go Developer", "Lisboa"),
		posting("Go Developer", "Porto"),
	})

	counts := tally.Counts()
	require.Len(t, counts, 3)
	assert.Equal(t, PostingCount{Title: "Go Developer", Location: "Lisboa", Count: 2}, counts[0])
	assert.Equal(t, PostingCount{Title: "Data Engineer", Location: "Porto", Count: 1}, counts[1])
	assert.Equal(t, PostingCount{Title: "Go Developer", Location: "Porto", Count: 1}, counts[2])
}

func TestPostingTally_JoinsLocationsAndPlaceholders(t *testing.T) {
	tally := NewPostingTally()
	tally.Add([]types.JobRecord{
		posting("Go Developer", "Lisboa", "Porto"),
		posting("Go Developer"),
	})

	counts := tally.Counts()
	require.Len(t, counts, 2)
	assert.Equal(t, "Lisboa, Porto", counts[0].Location)
	assert.Equal(t, types.Placeholder, counts[1].Location)
}

func TestPostingTally_EmptyWalk(t *testing.T) {
	assert.Empty(t, NewPostingTally().Counts())
}

func TestTopSkills_TruncatesToTen(t *testing.T) {
	tokens := make([]string, 0)
	for i := 0; i < 12; i++ {
		skill := fmt.Sprintf("skill-%02d", i)
		// Give each skill a distinct count so the ranking is unambiguous
		for j := 0; j <= i; j++ {
			tokens = append(tokens, skill)
		}
	}

	top := TopSkills(tokens, 10)

	require.Len(t, top, 10)
	assert.Equal(t, SkillCount{Skill: "skill-11", Count: 12}, top[0])
	assert.Equal(t, SkillCount{Skill: "skill-02", Count: 3}, top[9])
}

func TestTopSkills_TiesKeepFirstEncounteredOrder(t *testing.T) {
	tokens := []string{"sql", "go", "go", "python", "sql"}

	top := TopSkills(tokens, 10)

	require.Len(t, top, 3)
	// sql and go tie at 2; sql was seen first
	assert.Equal(t, "sql", top[0].Skill)
	assert.Equal(t, "go", top[1].Skill)
	assert.Equal(t, "python", top[2].Skill)
}

func TestTopSkills_ExactStringEquality(t *testing.T) {
	// No fuzzy matching: distinct strings are distinct keys
	top := TopSkills([]string{"go", "golang"}, 10)
	assert.Len(t, top, 2)
}

func TestTopSkills_Empty(t *testing.T) {
	assert.Empty(t, TopSkills(nil, 10))
}
