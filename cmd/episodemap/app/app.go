// Package app wires configuration, logging and the episode store into the
// episodemap CLI commands.
package app

import (
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/catein/episodemap/internal/appcontext"
	"github.com/catein/episodemap/internal/cmd/output"
	"github.com/catein/episodemap/internal/sources/contentapi"
	"github.com/catein/episodemap/pkg/episodes"
	"github.com/catein/episodemap/pkg/errors"
	catalogsync "github.com/catein/episodemap/pkg/sync"
)

// App represents the episodemap application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// keepLogger stops setupCommand from rebuilding a logger set by WithLogger
	keepLogger bool

	// fetcher overrides the content API client (tests)
	fetcher catalogsync.Fetcher

	// out receives command output; stdout when nil
	out io.Writer

	// Store is created lazily so it picks up flag overrides and the final logger
	mu    sync.Mutex
	store *episodes.Store
}

var _ appcontext.Interface = (*App)(nil)

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the --format value, or table on a terminal and json otherwise.
func (a *App) OutputFormat() string {
	return string(output.DetectFormat(a.config.Format))
}

// Store returns the mapping file store.
func (a *App) Store() *episodes.Store {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.store == nil {
		a.store = episodes.NewStore(a.config.MappingFile, episodes.WithLogger(a.logger))
	}
	return a.store
}

// Mapping loads the current mapping file.
func (a *App) Mapping() (*episodes.Mapping, error) {
	m, stats, err := a.Store().Load()
	if err != nil {
		return nil, err
	}
	if stats.Missing {
		a.logger.Warn().Str("path", a.config.MappingFile).Msg("Mapping file not found, run sync first")
	}
	return m, nil
}

// Fetcher returns a content API client authenticated with token.
func (a *App) Fetcher(token string) (catalogsync.Fetcher, error) {
	if a.fetcher != nil {
		return a.fetcher, nil
	}

	client, err := contentapi.NewClient(contentapi.Config{
		URL:            a.config.APIURL,
		Community:      a.config.Community,
		ExperienceName: a.config.ExperienceName,
		ViewerID:       a.config.ViewerID,
		Token:          token,
		Delay:          a.config.RequestDelay,
		Timeout:        a.config.HTTPTimeout,
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}

// SyncOptions returns run options derived from configuration.
func (a *App) SyncOptions() []catalogsync.Option {
	return []catalogsync.Option{
		catalogsync.WithCategories(a.config.Categories...),
		catalogsync.WithLogger(a.logger),
	}
}

// resetStore drops the cached store after flags change the mapping path or logger.
func (a *App) resetStore() {
	a.mu.Lock()
	a.store = nil
	a.mu.Unlock()
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if err := config.Validate(); err != nil {
			return err
		}
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		a.keepLogger = true
		return nil
	}
}

// WithFetcher replaces the content API client (useful for testing).
func WithFetcher(f catalogsync.Fetcher) Option {
	return func(a *App) error {
		a.fetcher = f
		return nil
	}
}

// WithOutput sends command output to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(a *App) error {
		a.out = w
		return nil
	}
}
