// Package stats derives occurrence tallies over walked listing pages and
// scraped skill tokens. Both modes require the full traversal to finish
// before results are read; keys are compared by exact normalized text.
package stats

import (
	"sort"

	"github.com/jonathan/jobscout/internal/parsing"
	"github.com/jonathan/jobscout/internal/types"
)

// PostingCount is one (title, joined locations) key with its tally.
type PostingCount struct {
	Title    string
	Location string
	Count    int
}

// PostingTally counts postings keyed by title plus joined location
// string, preserving first-encountered key order.
type PostingTally struct {
	order  []postingKey
	counts map[postingKey]int
}

type postingKey struct {
	title    string
	location string
}

// NewPostingTally creates an empty tally.
func NewPostingTally() *PostingTally {
	return &PostingTally{counts: make(map[postingKey]int)}
}

// Add tallies every record on one page. Records without locations count
// under the placeholder location.
func (t *PostingTally) Add(jobs []types.JobRecord) {
	for _, job := range jobs {
		location := parsing.JoinLocations(job.Locations, ", ")
		if location == "" {
			location = types.Placeholder
		}
		key := postingKey{title: job.Title, location: location}
		if _, seen := t.counts[key]; !seen {
			t.order = append(t.order, key)
		}
		t.counts[key]++
	}
}

// Counts returns every key with its total, in first-encountered order.
func (t *PostingTally) Counts() []PostingCount {
	out := make([]PostingCount, 0, len(t.order))
	for _, key := range t.order {
		out = append(out, PostingCount{
			Title:    key.title,
			Location: key.location,
			Count:    t.counts[key],
		})
	}
	return out
}

// SkillCount is one skill token with its tally.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// TopSkills tallies exact occurrences of each token and returns at most n
// entries by descending count. The sort is stable on count only, so ties
// keep first-encountered order.
func TopSkills(tokens []string, n int) []SkillCount {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, token := range tokens {
		if _, seen := counts[token]; !seen {
			order = append(order, token)
		}
		counts[token]++
	}

	ranked := make([]SkillCount, 0, len(order))
	for _, token := range order {
		ranked = append(ranked, SkillCount{Skill: token, Count: counts[token]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
