package parsing

import (
	"strconv"
	"strings"

	"github.com/jonathan/jobscout/internal/types"
)

// Project maps a raw record into its normalized projection. It is total:
// every output field is populated, with types.Placeholder substituted for
// anything the source left empty, so a projected batch always carries the
// same column set.
func Project(job types.JobRecord) types.ProjectedJob {
	return types.ProjectedJob{
		ID:          orPlaceholderInt(job.ID),
		Title:       orPlaceholder(job.Title),
		Company:     orPlaceholder(job.Company.Name),
		Description: orPlaceholder(StripTags(job.Body)),
		PublishedAt: orPlaceholder(job.PublishedAt),
		Salary:      orPlaceholder(job.Wage),
		Location:    orPlaceholder(JoinLocations(job.Locations, "; ")),
	}
}

// ProjectAll projects every record in order.
func ProjectAll(jobs []types.JobRecord) []types.ProjectedJob {
	projected := make([]types.ProjectedJob, 0, len(jobs))
	for _, job := range jobs {
		projected = append(projected, Project(job))
	}
	return projected
}

// JoinLocations joins location names with the given separator.
func JoinLocations(locations []types.Location, sep string) string {
	names := make([]string, 0, len(locations))
	for _, loc := range locations {
		names = append(names, loc.Name)
	}
	return strings.Join(names, sep)
}

func orPlaceholder(value string) string {
	if value == "" {
		return types.Placeholder
	}
	return value
}

func orPlaceholderInt(value int) string {
	if value == 0 {
		return types.Placeholder
	}
	return strconv.Itoa(value)
}
