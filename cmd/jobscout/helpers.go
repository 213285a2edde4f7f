package main

import (
	"os"

	"github.com/jonathan/jobscout/internal/config"
	"github.com/jonathan/jobscout/internal/export"
	"github.com/jonathan/jobscout/internal/listing"
	"github.com/jonathan/jobscout/internal/observability"
	"github.com/jonathan/jobscout/internal/scrape"
)

// loadConfig builds the run configuration from the environment plus the
// persistent flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	cfg.UseBrowser = useBrowser
	return cfg, nil
}

func newListingClient(cfg *config.Config) *listing.Client {
	return listing.New(cfg)
}

func newScraper(cfg *config.Config) *scrape.Scraper {
	return scrape.New(cfg)
}

func newPrinter() *observability.Printer {
	return observability.NewPrinter(os.Stdout)
}

// exportIfRequested writes the batch when a path was given. Empty batches
// and write failures are reported through the printer and recovered; the
// command still exits normally.
func exportIfRequested(p *observability.Printer, records []*export.Record, path string) {
	if path == "" {
		return
	}
	p.PrintExportResult(path, export.WriteCSV(records, path))
}
