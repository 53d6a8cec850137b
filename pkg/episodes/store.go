package episodes

import (
	"bufio"
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/rs/zerolog"

	"github.com/catein/episodemap/pkg/constants"
	"github.com/catein/episodemap/pkg/errors"
	"github.com/catein/episodemap/pkg/logging"
)

// maxLineSize bounds a single mapping file line.
const maxLineSize = 1 << 20

// LoadStats reports what Load read from the mapping file.
type LoadStats struct {
	Lines   int  `json:"lines" yaml:"lines"`
	Loaded  int  `json:"loaded" yaml:"loaded"`
	Skipped int  `json:"skipped" yaml:"skipped"`
	Missing bool `json:"missing" yaml:"missing"`
}

// Store reads and writes the tab-separated mapping file.
type Store struct {
	path   string
	logger *zerolog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the logger used to report skipped lines.
func WithLogger(logger *zerolog.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore returns a store for the mapping file at path.
func NewStore(path string, opts ...StoreOption) *Store {
	s := &Store{
		path:   path,
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the mapping file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the mapping file. A missing file yields an empty mapping.
// Lines without exactly three tab-separated fields, with an invalid short
// code, or repeating a code held by another ID are skipped and counted.
// When an ID repeats, the later line replaces the earlier one, which is
// counted as skipped.
func (s *Store) Load() (*Mapping, LoadStats, error) {
	var stats LoadStats
	m := NewMapping()

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			stats.Missing = true
			s.logger.Debug().Str("path", s.path).Msg("Mapping file not found, starting empty")
			return m, stats, nil
		}
		return nil, stats, errors.WrapIO("open", s.path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			s.logger.Warn().Err(closeErr).Str("path", s.path).Msg("Failed to close mapping file")
		}
	}()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		stats.Lines++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		r, reason := parseLine(line)
		replaced := false
		if reason == "" {
			replaced, reason = addReplacing(m, r)
		}
		switch {
		case reason != "":
			stats.Skipped++
			s.logger.Debug().
				Str("path", s.path).
				Int("line", stats.Lines).
				Str("reason", reason).
				Msg("Skipping mapping line")
		case replaced:
			stats.Skipped++
			s.logger.Debug().
				Str("path", s.path).
				Int("line", stats.Lines).
				Str("id", r.ID).
				Msg("Episode ID repeated, keeping later line")
		default:
			stats.Loaded++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, errors.WrapIO("read", s.path, err)
	}

	if stats.Skipped > 0 {
		s.logger.Warn().Str("path", s.path).Int("skipped", stats.Skipped).Msg("Skipped malformed mapping lines")
	}
	return m, stats, nil
}

// addReplacing adds r to m. A record already held for the same ID is
// replaced; if r cannot be added the earlier record stays.
func addReplacing(m *Mapping, r Record) (replaced bool, reason string) {
	prev, seen := m.Get(r.ID)
	if seen {
		m.remove(r.ID)
	}
	if err := m.Add(r); err != nil {
		if seen {
			_ = m.Add(prev)
		}
		return false, err.Error()
	}
	return seen, ""
}

// parseLine splits one line into a record, or returns why it cannot.
func parseLine(line string) (Record, string) {
	fields := strings.Split(line, "\t")
	if len(fields) != 3 {
		return Record{}, "expected 3 tab-separated fields"
	}
	code, err := ParseShortCode(strings.TrimSpace(fields[0]))
	if err != nil {
		return Record{}, err.Error()
	}
	id := strings.TrimSpace(fields[1])
	if id == "" {
		return Record{}, "empty episode ID"
	}
	return Record{Code: code, ID: id, Name: strings.TrimSpace(fields[2])}, ""
}

// Encode renders the mapping in file format, ordered by the key of each name.
func Encode(m *Mapping) []byte {
	var buf bytes.Buffer
	for _, r := range m.Records() {
		buf.WriteString(string(r.Code))
		buf.WriteByte('\t')
		buf.WriteString(r.ID)
		buf.WriteByte('\t')
		buf.WriteString(r.Name)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Save replaces the mapping file with m in a single rename, so readers see
// either the old file or the new one.
func (s *Store) Save(m *Mapping) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}

	_, statErr := os.Stat(s.path)
	created := errors.Is(statErr, fs.ErrNotExist)

	if err := atomic.WriteFile(s.path, bytes.NewReader(Encode(m))); err != nil {
		return errors.WrapIO("write", s.path, err)
	}

	// atomic.WriteFile keeps the mode of an existing file but leaves new
	// files at the temp file's 0600
	if created {
		if err := os.Chmod(s.path, constants.FilePermissions); err != nil {
			return errors.WrapIO("chmod", s.path, err)
		}
	}

	s.logger.Debug().Str("path", s.path).Int("records", m.Len()).Msg("Saved mapping file")
	return nil
}
