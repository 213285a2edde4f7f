// Package types provides type definitions for structured data used throughout the jobscout system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Placeholder is substituted for any field the listing source leaves empty.
const Placeholder = "N/A"

// PublishedAtLayout is the timestamp format used by the listing resource.
const PublishedAtLayout = "2006-01-02 15:04:05"

// JobRecord represents a single posting as returned by the listing resource.
// Any field may be absent in the source payload; consumers substitute
// Placeholder rather than failing.
type JobRecord struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Company     Company    `json:"company"`
	Body        string     `json:"body"`
	PublishedAt string     `json:"publishedAt"`
	Wage        string     `json:"wage"`
	Locations   []Location `json:"locations"`
	Types       []JobType  `json:"types"`
}

// Company is the employer attached to a posting
type Company struct {
	Name string `json:"name"`
}

// Location is a named place attached to a posting
type Location struct {
	Name string `json:"name"`
}

// JobType is an employment-type tag such as "Full-time"
type JobType struct {
	Name string `json:"name"`
}

// ListingPage is one page of the paginated listing endpoint
type ListingPage struct {
	Results []JobRecord `json:"results"`
}

// ProjectedJob is the normalized, export-ready form of a JobRecord.
// Every field is always populated; missing source data degrades to
// Placeholder so batches stay column-homogeneous for export.
type ProjectedJob struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
	PublishedAt string `json:"published_at"`
	Salary      string `json:"salary"`
	Location    string `json:"location"`
}

// CompanyOverview holds the fields scraped from a company overview page
type CompanyOverview struct {
	Rating      string `json:"rating"`
	Description string `json:"description"`
	Benefits    string `json:"benefits"`
}

// EnrichedJob joins a posting with its scraped company overview
type EnrichedJob struct {
	JobID       int    `json:"job_id"`
	CompanyName string `json:"company_name"`
	Rating      string `json:"rating"`
	Description string `json:"company_description"`
	Benefits    string `json:"company_benefits"`
}
