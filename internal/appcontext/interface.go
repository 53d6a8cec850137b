// Package appcontext provides the shared application context interface
// used by all commands.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/catein/episodemap/pkg/episodes"
	"github.com/catein/episodemap/pkg/sync"
)

// Interface defines what commands need from the application.
// The App struct from cmd/episodemap/app implements it; tests use Mock.
type Interface interface {
	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml).
	OutputFormat() string

	// Store returns the mapping file store.
	Store() *episodes.Store

	// Mapping loads the current mapping file. A missing file is an empty mapping.
	Mapping() (*episodes.Mapping, error)

	// Fetcher returns a content API client authenticated with token.
	Fetcher(token string) (sync.Fetcher, error)

	// SyncOptions returns run options derived from configuration.
	SyncOptions() []sync.Option

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
