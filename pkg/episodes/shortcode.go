package episodes

import (
	"strings"

	"github.com/catein/episodemap/pkg/constants"
	"github.com/catein/episodemap/pkg/errors"
)

const base = len(constants.ShortCodeAlphabet)

// ShortCode is a two-symbol base-62 identifier, most significant symbol first.
type ShortCode string

// EncodeShortCode converts a value in [0, 3843] to its short code.
func EncodeShortCode(n int) (ShortCode, error) {
	if n < 0 || n >= constants.ShortCodeSpace {
		return "", errors.NewValidationError("short_code", n, "value out of range (must be 0-3843)")
	}
	alphabet := constants.ShortCodeAlphabet
	return ShortCode([]byte{alphabet[n/base], alphabet[n%base]}), nil
}

// ParseShortCode validates s and returns it as a ShortCode.
func ParseShortCode(s string) (ShortCode, error) {
	c := ShortCode(s)
	if _, err := c.Value(); err != nil {
		return "", err
	}
	return c, nil
}

// Value decodes the short code back to its integer value.
func (c ShortCode) Value() (int, error) {
	if len(c) != 2 {
		return 0, errors.NewValidationError("short_code", string(c), "must be exactly two symbols")
	}
	hi := strings.IndexByte(constants.ShortCodeAlphabet, c[0])
	lo := strings.IndexByte(constants.ShortCodeAlphabet, c[1])
	if hi < 0 || lo < 0 {
		return 0, errors.NewValidationError("short_code", string(c), "symbol outside the base-62 alphabet")
	}
	return hi*base + lo, nil
}

// Valid reports whether c is a well-formed short code.
func (c ShortCode) Valid() bool {
	_, err := c.Value()
	return err == nil
}

// Allocator hands out the lowest short codes not yet in use.
// The cursor only moves forward, so one allocator serves one merge.
type Allocator struct {
	used   map[ShortCode]struct{}
	cursor int
}

// NewAllocator builds an allocator whose used set is every code in m.
func NewAllocator(m *Mapping) *Allocator {
	a := &Allocator{used: make(map[ShortCode]struct{}, m.Len())}
	for code := range m.byCode {
		a.used[code] = struct{}{}
	}
	return a
}

// Free returns how many codes remain unassigned.
func (a *Allocator) Free() int {
	return constants.ShortCodeSpace - len(a.used)
}

// Next returns the first unused code at or after the cursor and marks it used.
func (a *Allocator) Next() (ShortCode, error) {
	for a.cursor < constants.ShortCodeSpace {
		code, err := EncodeShortCode(a.cursor)
		if err != nil {
			return "", err
		}
		a.cursor++
		if _, taken := a.used[code]; taken {
			continue
		}
		a.used[code] = struct{}{}
		return code, nil
	}
	return "", errors.NewExhaustedError(1, 0)
}
