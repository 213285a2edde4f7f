// Package scrape extracts company overviews and per-job skill chips from
// the AmbitionBox pages via CSS selectors.
package scrape

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/jobscout/internal/config"
	"github.com/jonathan/jobscout/internal/fetch"
	"github.com/jonathan/jobscout/internal/types"
)

// Selectors for the markers the pages currently expose. These are brittle
// by nature; a missing marker degrades to a placeholder, never an error.
const (
	ratingSelector      = "span.css-1jxf684"
	descriptionSelector = "div[data-test='company-description']"
	benefitsSelector    = "div[data-test='company-benefits']"
	skillChipSelector   = "a.body-medium.chip"
	jobCardSelector     = "div.jobsInfoCardCont"
)

// Scraper fetches and parses the scrape target's pages.
type Scraper struct {
	cfg  *config.Config
	opts *fetch.Options
}

// New creates a scraper from the injected configuration.
func New(cfg *config.Config) *Scraper {
	return &Scraper{
		cfg: cfg,
		opts: &fetch.Options{
			Timeout:   cfg.Timeout,
			UserAgent: cfg.UserAgent,
		},
	}
}

// CompanyOverview scrapes the overview page for a company. A non-success
// response yields an all-placeholder overview rather than an error, and
// each missing marker degrades to a placeholder independently.
func (s *Scraper) CompanyOverview(ctx context.Context, companyName string) (*types.CompanyOverview, error) {
	url := fmt.Sprintf("%s/overview/%s-overview", s.cfg.ScrapeURL, slugify(companyName))

	html, err := s.fetchHTML(ctx, url)
	if err != nil {
		var fetchErr *fetch.Error
		if errors.As(err, &fetchErr) && fetchErr.Status != 0 {
			return &types.CompanyOverview{
				Rating:      types.Placeholder,
				Description: types.Placeholder,
				Benefits:    types.Placeholder,
			}, nil
		}
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse overview page: %w", err)
	}

	return &types.CompanyOverview{
		Rating:      selectText(doc, ratingSelector),
		Description: selectText(doc, descriptionSelector),
		Benefits:    selectText(doc, benefitsSelector),
	}, nil
}

// JobURLs scrapes the listing page for a job title and returns the
// absolute detail-page URL of every job card, in document order.
func (s *Scraper) JobURLs(ctx context.Context, jobTitle string) ([]string, error) {
	url := fmt.Sprintf("%s/jobs/%s-jobs-prf", s.cfg.ScrapeURL, strings.ReplaceAll(jobTitle, " ", "-"))

	html, err := s.fetchHTML(ctx, url)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse jobs page: %w", err)
	}

	urls := make([]string, 0)
	doc.Find(jobCardSelector).Each(func(_ int, card *goquery.Selection) {
		href, exists := card.Find("a[href]").First().Attr("href")
		if !exists || href == "" {
			return
		}
		urls = append(urls, s.cfg.ScrapeURL+href)
	})
	return urls, nil
}

// JobSkills scrapes the skill chips from one job detail page and returns
// them lowercased, in document order.
func (s *Scraper) JobSkills(ctx context.Context, jobURL string) ([]string, error) {
	html, err := s.fetchHTML(ctx, jobURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse job page: %w", err)
	}

	skills := make([]string, 0)
	doc.Find(skillChipSelector).Each(func(_ int, chip *goquery.Selection) {
		if text := strings.TrimSpace(chip.Text()); text != "" {
			skills = append(skills, strings.ToLower(text))
		}
	})
	return skills, nil
}

// fetchHTML retrieves a page over plain HTTP, or through the headless
// browser when configured for script-rendered targets.
func (s *Scraper) fetchHTML(ctx context.Context, url string) (string, error) {
	if s.cfg.UseBrowser {
		return fetch.WithBrowser(ctx, url, s.cfg.Timeout)
	}
	result, err := fetch.Get(ctx, url, s.opts)
	if err != nil {
		return "", err
	}
	return result.Body, nil
}

// selectText returns the trimmed text of the first node matching the
// selector, or the placeholder when nothing matches.
func selectText(doc *goquery.Document, selector string) string {
	node := doc.Find(selector).First()
	if node.Length() == 0 {
		return types.Placeholder
	}
	text := strings.TrimSpace(node.Text())
	if text == "" {
		return types.Placeholder
	}
	return text
}

// slugify turns a company name into its overview-page URL segment.
func slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}
