// Package contentapi fetches episode listings from the content grouping
// search endpoint, one category at a time.
package contentapi

import (
	"context"
	"strings"
	"time"

	"github.com/catein/episodemap/internal/transport"
	"github.com/catein/episodemap/pkg/constants"
	"github.com/catein/episodemap/pkg/episodes"
	"github.com/catein/episodemap/pkg/errors"
	"github.com/catein/episodemap/pkg/logging"
	"github.com/catein/episodemap/pkg/sync"
)

// Config holds the endpoint and identity sent with every request.
type Config struct {
	URL            string
	Community      string
	ExperienceName string
	ViewerID       string
	Token          string
	Delay          time.Duration // Pause after each page
	Timeout        time.Duration // Per request
}

// DefaultConfig returns a config pointing at the public endpoint.
func DefaultConfig() Config {
	return Config{
		URL:            constants.DefaultAPIURL,
		Community:      constants.DefaultCommunity,
		ExperienceName: constants.DefaultExperienceName,
		ViewerID:       constants.DefaultViewerID,
		Delay:          constants.DefaultRequestDelay,
		Timeout:        constants.DefaultHTTPTimeout,
	}
}

// Client implements sync.Fetcher against the content API.
type Client struct {
	transport *transport.Client
	cfg       Config
}

var _ sync.Fetcher = (*Client)(nil)

// NewClient creates a client. The token is required.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, errors.ErrTokenRequired
	}
	if cfg.URL == "" {
		return nil, &errors.ValidationError{
			Field:   "api_url",
			Message: "endpoint URL not configured",
		}
	}

	return &Client{
		transport: transport.New(&transport.BearerAuth{},
			transport.WithTimeout(cfg.Timeout),
			transport.WithHeader("x-experience-name", cfg.ExperienceName),
			transport.WithHeader("x-viewer-id", cfg.ViewerID),
		),
		cfg: cfg,
	}, nil
}

// Fetch pages through category until the API returns a page without
// groupings. Items without an id are dropped; a blank name falls back to
// the id. A category that yields nothing is an error.
func (c *Client) Fetch(ctx context.Context, category sync.Category) (episodes.Batch, error) {
	logger := logging.FromContext(ctx)
	pageSize := category.PageSize
	if pageSize <= 0 {
		pageSize = constants.DefaultPageSize
	}

	batch := make(episodes.Batch)
	for page := 1; ; page++ {
		logger.Info().Int("page", page).Msg("Fetching page")

		resp, err := c.fetchPage(ctx, category.Name, page, pageSize)
		if err != nil {
			return nil, errors.WrapFetch(category.Name, page, err)
		}

		if err := c.pause(ctx); err != nil {
			return nil, errors.WrapFetch(category.Name, page, err)
		}

		if len(resp.ContentGroupings) == 0 {
			logger.Debug().Int("page", page).Msg("Empty page, stopping")
			break
		}

		for _, group := range resp.ContentGroupings {
			for _, item := range group.ContentList {
				if item.ID == "" {
					continue
				}
				name := strings.TrimSpace(item.ShortName)
				if name == "" {
					name = item.ID
				}
				batch[item.ID] = name
			}
		}
	}

	if len(batch) == 0 {
		return nil, errors.WrapFetch(category.Name, 0, errors.ErrEmptyCategory)
	}
	logger.Info().Int("found", len(batch)).Msg("Category complete")
	return batch, nil
}

func (c *Client) fetchPage(ctx context.Context, category string, page, pageSize int) (*searchResponse, error) {
	body := searchRequest{
		Type:       category,
		Community:  c.cfg.Community,
		PageNumber: page,
		PageSize:   pageSize,
	}

	resp, err := c.transport.PostJSON(ctx, c.cfg.URL, c.cfg.Token, body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.ErrCanceled
		}
		return nil, &errors.APIError{
			Category: category,
			Message:  "request failed",
			Endpoint: c.cfg.URL,
			Err:      err,
		}
	}

	var out searchResponse
	if err := transport.DecodeResponse(resp, &out); err != nil {
		var apiErr *errors.APIError
		if errors.As(err, &apiErr) {
			apiErr.Category = category
		}
		return nil, err
	}
	return &out, nil
}

// pause waits between pages unless ctx is done first.
func (c *Client) pause(ctx context.Context) error {
	if c.cfg.Delay <= 0 {
		return nil
	}
	t := time.NewTimer(c.cfg.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return errors.ErrCanceled
	case <-t.C:
		return nil
	}
}
