package episodes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catein/episodemap/pkg/constants"
	"github.com/catein/episodemap/pkg/errors"
)

func TestEncodeShortCode(t *testing.T) {
	tests := []struct {
		in   int
		want ShortCode
	}{
		{0, "00"},
		{1, "01"},
		{10, "0a"},
		{36, "0A"},
		{61, "0Z"},
		{62, "10"},
		{3843, "ZZ"},
	}
	for _, tt := range tests {
		got, err := EncodeShortCode(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "EncodeShortCode(%d)", tt.in)
	}

	for _, bad := range []int{-1, constants.ShortCodeSpace} {
		_, err := EncodeShortCode(bad)
		assert.True(t, errors.IsValidationError(err), "EncodeShortCode(%d)", bad)
	}
}

func TestShortCodeRoundTrip(t *testing.T) {
	seen := make(map[ShortCode]bool, constants.ShortCodeSpace)
	for n := 0; n < constants.ShortCodeSpace; n++ {
		code, err := EncodeShortCode(n)
		require.NoError(t, err)
		require.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true

		v, err := code.Value()
		require.NoError(t, err)
		require.Equal(t, n, v)
	}
}

func TestParseShortCode(t *testing.T) {
	c, err := ParseShortCode("aZ")
	require.NoError(t, err)
	assert.Equal(t, ShortCode("aZ"), c)

	for _, bad := range []string{"", "0", "000", "0-", "é"} {
		_, err := ParseShortCode(bad)
		assert.Error(t, err, "ParseShortCode(%q)", bad)
		assert.False(t, ShortCode(bad).Valid())
	}
}

func TestAllocatorFirstFit(t *testing.T) {
	m := mustMapping(t,
		Record{Code: "00", ID: "a", Name: "#1"},
		Record{Code: "02", ID: "b", Name: "#2"},
	)
	alloc := NewAllocator(m)
	assert.Equal(t, constants.ShortCodeSpace-2, alloc.Free())

	var got []ShortCode
	for i := 0; i < 3; i++ {
		code, err := alloc.Next()
		require.NoError(t, err)
		got = append(got, code)
	}
	assert.Equal(t, []ShortCode{"01", "03", "04"}, got)
	assert.Equal(t, constants.ShortCodeSpace-5, alloc.Free())
}

func TestAllocatorExhausted(t *testing.T) {
	alloc := NewAllocator(fullMapping(t))
	assert.Zero(t, alloc.Free())

	_, err := alloc.Next()
	assert.True(t, errors.IsExhausted(err))
}
