// Package logging configures zerolog for episodemap and carries loggers
// through a context.
//
// The CLI builds one logger from its flags and config, installs it with
// SetDefault, and every sync run derives child loggers tagged with the run
// id, the category being fetched and the current step:
//
//	ctx = logging.WithRunID(ctx, runID)
//	ctx = logging.WithCategory(ctx, "Album")
//	logging.FromContext(ctx).Debug().Int("page", 3).Msg("Fetched page")
package logging

import (
	"github.com/rs/zerolog"
)

// defaultLogger backs FromContext when a context carries no logger.
var defaultLogger = NewLoggerFromConfig(DefaultConfig())

// Default returns the process-wide logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault replaces the process-wide logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
}
