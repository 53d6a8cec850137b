package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{name: "default", config: &Config{}, expected: "info"},
		{name: "verbose", config: &Config{Verbose: true}, expected: "debug"},
		{name: "quiet", config: &Config{Quiet: true}, expected: "warn"},
		{name: "verbose and quiet", config: &Config{Verbose: true, Quiet: true}, expected: "warn"},
		{name: "flag beats verbose", config: &Config{LogLevel: "error", Verbose: true}, expected: "error"},
		{name: "flag beats env", config: &Config{LogLevel: "trace", EnvLogLevel: "warn"}, expected: "trace"},
		{name: "verbose beats env", config: &Config{Verbose: true, EnvLogLevel: "error"}, expected: "debug"},
		{name: "env", config: &Config{EnvLogLevel: "warn"}, expected: "warn"},
		{name: "invalid flag", config: &Config{LogLevel: "loud"}, expected: "info"},
		{name: "invalid env", config: &Config{EnvLogLevel: "loud"}, expected: "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, determineLogLevel(tt.config))
		})
	}
}

func TestValidateLogLevel(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error"} {
		assert.Equal(t, level, validateLogLevel(level))
	}
	for _, level := range []string{"", "DEBUG", "verbose"} {
		assert.Equal(t, "info", validateLogLevel(level))
	}
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger(&Config{LogFormat: "json", LogOutput: "discard", Verbose: true})
	assert.Equal(t, "debug", logger.GetLevel().String())
}
