// Package listing provides the client for the paginated job listing
// resource. Pagination starts at page 1 and advances one page at a time;
// an empty results array signals exhaustion.
package listing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/jonathan/jobscout/internal/config"
	"github.com/jonathan/jobscout/internal/fetch"
	"github.com/jonathan/jobscout/internal/types"
)

// ErrNotFound is returned by FindByID when every page has been scanned
// without a match.
var ErrNotFound = errors.New("job not found")

// Client talks to the listing endpoint. Each call issues exactly one
// request at a time; there is no concurrency and no retry.
type Client struct {
	cfg  *config.Config
	opts *fetch.Options
}

// New creates a listing client from the injected configuration.
func New(cfg *config.Config) *Client {
	return &Client{
		cfg: cfg,
		opts: &fetch.Options{
			Timeout:   cfg.Timeout,
			UserAgent: cfg.UserAgent,
		},
	}
}

// pageURL builds the endpoint URL for one page, carrying the API key.
func (c *Client) pageURL(page int) string {
	q := url.Values{}
	q.Set("api_key", c.cfg.APIKey)
	q.Set("page", fmt.Sprintf("%d", page))
	return c.cfg.ListingURL + "?" + q.Encode()
}

// FetchPage retrieves a single page of results. A non-2xx status is
// surfaced as a *fetch.Error (transport failure).
func (c *Client) FetchPage(ctx context.Context, page int) ([]types.JobRecord, error) {
	result, err := fetch.Get(ctx, c.pageURL(page), c.opts)
	if err != nil {
		return nil, fmt.Errorf("listing page %d: %w", page, err)
	}

	var body types.ListingPage
	if err := json.Unmarshal([]byte(result.Body), &body); err != nil {
		return nil, fmt.Errorf("listing page %d: failed to decode response: %w", page, err)
	}
	return body.Results, nil
}

// FirstPage retrieves page 1 only. The simple query commands operate on
// the first page of results, matching the source's single-request model.
func (c *Client) FirstPage(ctx context.Context) ([]types.JobRecord, error) {
	return c.FetchPage(ctx, 1)
}

// FindByID scans successive pages for the record with the given
// identifier. The three terminal outcomes are distinct: the record
// (found), ErrNotFound (a page came back empty before a match), or a
// transport error (the walk could not continue).
func (c *Client) FindByID(ctx context.Context, id int) (*types.JobRecord, error) {
	for page := 1; ; page++ {
		jobs, err := c.FetchPage(ctx, page)
		if err != nil {
			return nil, err
		}
		for i := range jobs {
			if jobs[i].ID == id {
				return &jobs[i], nil
			}
		}
		if len(jobs) == 0 {
			return nil, ErrNotFound
		}
	}
}

// WalkPages visits every page exactly once, in increasing order starting
// at 1, invoking fn with each non-empty page. It returns nil on
// exhaustion (first empty page) and the transport error if a fetch fails
// mid-walk; pages already handed to fn remain valid, so callers may
// aggregate the partial walk.
func (c *Client) WalkPages(ctx context.Context, fn func(page int, jobs []types.JobRecord)) error {
	for page := 1; ; page++ {
		jobs, err := c.FetchPage(ctx, page)
		if err != nil {
			return err
		}
		if len(jobs) == 0 {
			return nil
		}
		fn(page, jobs)
	}
}
