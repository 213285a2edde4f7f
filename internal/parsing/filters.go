package parsing

import (
	"sort"
	"strings"
	"time"

	"github.com/jonathan/jobscout/internal/types"
)

// fullTimeTag is the literal employment-type tag the filter requires.
// The tag comparison is case-sensitive; only the location is folded.
const fullTimeTag = "Full-time"

// MatchesCompany reports whether the record's company name equals the
// query, case-insensitively.
func MatchesCompany(job types.JobRecord, company string) bool {
	return strings.EqualFold(job.Company.Name, company)
}

// IsFullTimeIn reports whether the record carries the Full-time tag and at
// least one location matching the query case-insensitively. Both
// conditions must hold.
func IsFullTimeIn(job types.JobRecord, location string) bool {
	hasTag := false
	for _, t := range job.Types {
		if t.Name == fullTimeTag {
			hasTag = true
			break
		}
	}
	if !hasTag {
		return false
	}
	for _, loc := range job.Locations {
		if strings.EqualFold(loc.Name, location) {
			return true
		}
	}
	return false
}

// InDateRange reports whether the record's publication date (date portion
// only, time discarded) falls within the inclusive [start, end] range.
// Records with an unparseable timestamp never match.
func InDateRange(job types.JobRecord, start, end time.Time) bool {
	datePart := strings.SplitN(job.PublishedAt, " ", 2)[0]
	published, err := time.Parse("2006-01-02", datePart)
	if err != nil {
		return false
	}
	return !published.Before(start) && !published.After(end)
}

// HasAllSkills reports whether every skill appears as a case-insensitive
// substring of the record body. All must match.
func HasAllSkills(job types.JobRecord, skills []string) bool {
	body := strings.ToLower(job.Body)
	for _, skill := range skills {
		if !strings.Contains(body, strings.ToLower(skill)) {
			return false
		}
	}
	return true
}

// MostRecent returns up to n records sorted by publication timestamp,
// newest first. Records whose timestamp fails to parse sort last. The
// sort is stable, so upstream order breaks ties.
func MostRecent(jobs []types.JobRecord, n int) []types.JobRecord {
	sorted := make([]types.JobRecord, len(jobs))
	copy(sorted, jobs)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, iok := parsePublishedAt(sorted[i].PublishedAt)
		tj, jok := parsePublishedAt(sorted[j].PublishedAt)
		if iok != jok {
			return iok
		}
		return ti.After(tj)
	})
	if n >= 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// Limit truncates the filtered set to at most n records, preserving
// upstream order.
func Limit(jobs []types.JobRecord, n int) []types.JobRecord {
	if n >= 0 && n < len(jobs) {
		return jobs[:n]
	}
	return jobs
}

func parsePublishedAt(value string) (time.Time, bool) {
	t, err := time.Parse(types.PublishedAtLayout, value)
	return t, err == nil
}
