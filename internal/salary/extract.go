// Package salary implements the heuristic salary detection over job
// records: the structured wage field is authoritative when present, and
// the free-text body is pattern-scanned only as a fallback.
package salary

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/jobscout/internal/types"
)

// Source tags how a Finding was produced.
type Source int

const (
	// SourceNone means no salary evidence was found anywhere.
	SourceNone Source = iota
	// SourceField means the structured wage field was populated.
	SourceField
	// SourcePattern means tokens were matched in the free-text body.
	SourcePattern
)

// Finding is the result of salary extraction. It deliberately carries
// human-readable evidence rather than a parsed monetary value: the source
// text is uncurated and the output is advisory, not machine-consumed.
type Finding struct {
	Source Source
	// Wage is the verbatim structured field value when Source is SourceField.
	Wage string
	// Tokens are the matched body fragments, in match order, when Source
	// is SourcePattern.
	Tokens []string
}

// bodyPattern recognizes an optional currency marker before or after a
// numeric token with an optional decimal separator and an optional
// magnitude suffix (k, mil, m), allowing a single space between parts.
// Bare numbers with no currency marker match too, so years and counts
// produce tokens as well; the finding is evidence, not a parsed value.
var bodyPattern = regexp.MustCompile(`(?i)(€|\$|USD|EUR)? ?(\d+[.,]?\d*) ?(k|mil|m)? ?(€|\$|USD|EUR)?`)

// Extract yields the salary finding for one record. A populated wage
// field always wins; the body is never scanned in that case.
func Extract(job types.JobRecord) Finding {
	if job.Wage != "" {
		return Finding{Source: SourceField, Wage: job.Wage}
	}

	matches := bodyPattern.FindAllStringSubmatch(job.Body, -1)
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		parts := make([]string, 0, 4)
		for _, part := range m[1:] {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				parts = append(parts, trimmed)
			}
		}
		if len(parts) > 0 {
			tokens = append(tokens, strings.Join(parts, " "))
		}
	}

	if len(tokens) > 0 {
		return Finding{Source: SourcePattern, Tokens: tokens}
	}
	return Finding{Source: SourceNone}
}

// String renders the finding as the user-facing report.
func (f Finding) String() string {
	switch f.Source {
	case SourceField:
		return fmt.Sprintf("Salary found in structured field: %s", f.Wage)
	case SourcePattern:
		return fmt.Sprintf("Salary evidence found in body text: %s", strings.Join(f.Tokens, ", "))
	default:
		return "Salary not found in any field."
	}
}
