package salary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobscout/internal/types"
)

func TestExtract_StructuredFieldWins(t *testing.T) {
	// The body also contains a matchable amount; the field must win and
	// the body must not be scanned.
	job := types.JobRecord{
		Wage: "2000",
		Body: "We pay €50k per year.",
	}

	finding := Extract(job)

	assert.Equal(t, SourceField, finding.Source)
	assert.Equal(t, "2000", finding.Wage)
	assert.Empty(t, finding.Tokens)
}

func TestExtract_PatternFromBody(t *testing.T) {
	job := types.JobRecord{Body: "Compensation is €50k plus bonus."}

	finding := Extract(job)

	assert.Equal(t, SourcePattern, finding.Source)
	require.NotEmpty(t, finding.Tokens)
	assert.Contains(t, finding.Tokens[0], "50")
	assert.Contains(t, finding.Tokens[0], "€")
	assert.Contains(t, finding.Tokens[0], "k")
}

func TestExtract_CurrencyAfterNumber(t *testing.T) {
	job := types.JobRecord{Body: "up to 45000 EUR gross"}

	finding := Extract(job)

	assert.Equal(t, SourcePattern, finding.Source)
	require.NotEmpty(t, finding.Tokens)
	assert.Contains(t, finding.Tokens[0], "45000")
	assert.Contains(t, finding.Tokens[0], "EUR")
}

func TestExtract_MultipleMatchesInOrder(t *testing.T) {
	job := types.JobRecord{Body: "between $40k and $55k"}

	finding := Extract(job)

	assert.Equal(t, SourcePattern, finding.Source)
	require.Len(t, finding.Tokens, 2)
	assert.Contains(t, finding.Tokens[0], "40")
	assert.Contains(t, finding.Tokens[1], "55")
}

func TestExtract_BareNumbersMatch(t *testing.T) {
	// Documented over-match: generic numbers produce tokens too.
	job := types.JobRecord{Body: "Founded in 2010."}

	finding := Extract(job)

	assert.Equal(t, SourcePattern, finding.Source)
}

func TestExtract_DecimalSeparators(t *testing.T) {
	job := types.JobRecord{Body: "pays 1.500,00 monthly"}

	finding := Extract(job)

	assert.Equal(t, SourcePattern, finding.Source)
	assert.NotEmpty(t, finding.Tokens)
}

func TestExtract_NothingFound(t *testing.T) {
	job := types.JobRecord{Body: "Great culture, remote friendly."}

	finding := Extract(job)

	assert.Equal(t, SourceNone, finding.Source)
	assert.Empty(t, finding.Tokens)
	assert.Empty(t, finding.Wage)
}

func TestFinding_String(t *testing.T) {
	assert.Contains(t, Finding{Source: SourceField, Wage: "2000"}.String(), "2000")
	assert.Contains(t, Finding{Source: SourcePattern, Tokens: []string{"€ 50 k", "60"}}.String(), "€ 50 k, 60")
	assert.Contains(t, Finding{Source: SourceNone}.String(), "not found")
}
