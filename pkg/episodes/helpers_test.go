package episodes

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/catein/episodemap/pkg/constants"
)

func mustMapping(t *testing.T, records ...Record) *Mapping {
	t.Helper()
	m, err := NewMappingFromRecords(records...)
	require.NoError(t, err)
	return m
}

// fullMapping occupies every short code.
func fullMapping(t *testing.T) *Mapping {
	t.Helper()
	m := NewMapping()
	for n := 0; n < constants.ShortCodeSpace; n++ {
		code, err := EncodeShortCode(n)
		require.NoError(t, err)
		require.NoError(t, m.Add(Record{Code: code, ID: fmt.Sprintf("id%04d", n), Name: fmt.Sprintf("#%d", n)}))
	}
	return m
}

func codesByID(m *Mapping) map[string]ShortCode {
	out := make(map[string]ShortCode, m.Len())
	for _, r := range m.Records() {
		out[r.ID] = r.Code
	}
	return out
}
