// Package sync runs one catalog synchronization: fetch every configured
// category, combine the batches, merge them into the mapping file and
// report what changed.
package sync

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/catein/episodemap/pkg/constants"
	"github.com/catein/episodemap/pkg/errors"
)

// Category is one content type requested from the content API.
type Category struct {
	Name     string `mapstructure:"name" json:"name" yaml:"name"`
	PageSize int    `mapstructure:"page_size" json:"page_size" yaml:"page_size"`
}

// DefaultCategories returns the categories fetched when none are configured.
// Album comes last so its names win for items listed in both.
func DefaultCategories() []Category {
	return []Category{
		{Name: constants.CategoryEpisodeHome, PageSize: constants.EpisodeHomePageSize},
		{Name: constants.CategoryAlbum, PageSize: constants.AlbumPageSize},
	}
}

// Options controls a single Run.
type Options struct {
	Categories []Category      // Fetched in order; later categories win on duplicate IDs
	DryRun     bool            // Fetch and merge without writing the mapping file
	Timeout    time.Duration   // Timeout for the whole run, zero means none
	RunID      string          // Correlates log lines; generated when empty
	Logger     *zerolog.Logger // Base logger; the package default when nil
}

// Option is a function that configures sync Options.
type Option func(*Options)

// Defaults returns the default sync options.
func Defaults() *Options {
	return &Options{
		Categories: DefaultCategories(),
	}
}

// Apply applies the given options to the sync options.
func (o *Options) Apply(opts ...Option) *Options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Validate checks if the sync options are valid.
func (o *Options) Validate() error {
	if o.Timeout < 0 {
		return &errors.ValidationError{
			Field:   "Timeout",
			Value:   o.Timeout,
			Message: "timeout must be non-negative",
		}
	}
	if len(o.Categories) == 0 {
		return &errors.ValidationError{
			Field:   "Categories",
			Message: "at least one category is required",
		}
	}

	seen := make(map[string]bool, len(o.Categories))
	for i, c := range o.Categories {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return &errors.ValidationError{
				Field:   fmt.Sprintf("Categories[%d].Name", i),
				Message: "category name is required",
			}
		}
		if c.PageSize <= 0 {
			return &errors.ValidationError{
				Field:   fmt.Sprintf("Categories[%d].PageSize", i),
				Value:   c.PageSize,
				Message: "page size must be positive",
			}
		}
		if seen[name] {
			return &errors.ValidationError{
				Field:   fmt.Sprintf("Categories[%d].Name", i),
				Value:   name,
				Message: "category listed twice",
			}
		}
		seen[name] = true
	}
	return nil
}

// WithCategories sets the categories to fetch, in order.
func WithCategories(categories ...Category) Option {
	return func(opts *Options) {
		opts.Categories = categories
	}
}

// WithDryRun configures dry run mode.
func WithDryRun(dryRun bool) Option {
	return func(opts *Options) {
		opts.DryRun = dryRun
	}
}

// WithTimeout configures the run timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(opts *Options) {
		opts.Timeout = timeout
	}
}

// WithRunID sets the run id instead of generating one.
func WithRunID(id string) Option {
	return func(opts *Options) {
		opts.RunID = id
	}
}

// WithLogger sets the base logger for the run.
func WithLogger(logger *zerolog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}
