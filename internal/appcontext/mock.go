package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/catein/episodemap/pkg/episodes"
	"github.com/catein/episodemap/pkg/sync"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	StoreFunc        func() *episodes.Store
	MappingFunc      func() (*episodes.Mapping, error)
	FetcherFunc      func(token string) (sync.Fetcher, error)
	SyncOptionsFunc  func() []sync.Option
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

var _ Interface = (*Mock)(nil)

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns the format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Store returns a store using the mock function or nil.
func (m *Mock) Store() *episodes.Store {
	if m.StoreFunc != nil {
		return m.StoreFunc()
	}
	return nil
}

// Mapping returns a mapping using the mock function, the mock store, or an empty mapping.
func (m *Mock) Mapping() (*episodes.Mapping, error) {
	if m.MappingFunc != nil {
		return m.MappingFunc()
	}
	if store := m.Store(); store != nil {
		mapping, _, err := store.Load()
		return mapping, err
	}
	return episodes.NewMapping(), nil
}

// Fetcher returns a fetcher using the mock function or nil.
func (m *Mock) Fetcher(token string) (sync.Fetcher, error) {
	if m.FetcherFunc != nil {
		return m.FetcherFunc(token)
	}
	return nil, nil
}

// SyncOptions returns options using the mock function or none.
func (m *Mock) SyncOptions() []sync.Option {
	if m.SyncOptionsFunc != nil {
		return m.SyncOptionsFunc()
	}
	return nil
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builder using the mock function or "unknown".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "unknown"
}
