package episodes

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catein/episodemap/pkg/errors"
)

func TestMappingAddRejectsDuplicates(t *testing.T) {
	m := mustMapping(t, Record{Code: "00", ID: "a3A", Name: "#1 A"})

	tests := []struct {
		name   string
		record Record
	}{
		{name: "duplicate id", record: Record{Code: "01", ID: "a3A", Name: "#1 again"}},
		{name: "duplicate code", record: Record{Code: "00", ID: "a3B", Name: "#2 B"}},
		{name: "invalid code", record: Record{Code: "0", ID: "a3C", Name: "#3 C"}},
		{name: "empty id", record: Record{Code: "05", ID: "", Name: "#4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := m.Add(tt.record)
			assert.True(t, errors.IsValidationError(err), "got %v", err)
			assert.Equal(t, 1, m.Len())
		})
	}
}

func TestMappingLookup(t *testing.T) {
	m := mustMapping(t,
		Record{Code: "00", ID: "a3A", Name: "#1 A"},
		Record{Code: "01", ID: "a3B", Name: "#2 B"},
	)

	r, err := m.Lookup("01")
	require.NoError(t, err)
	assert.Equal(t, "a3B", r.ID)

	r, err = m.Lookup("a3A")
	require.NoError(t, err)
	assert.Equal(t, ShortCode("00"), r.Code)

	_, err = m.Lookup("zz")
	assert.True(t, errors.IsNotFound(err))
}

func TestMappingRecordsOrder(t *testing.T) {
	m := mustMapping(t,
		Record{Code: "04", ID: "e", Name: "Bonus Content"},
		Record{Code: "00", ID: "c", Name: "#10b Finale"},
		Record{Code: "01", ID: "a", Name: "#2 Next"},
		Record{Code: "03", ID: "f", Name: "Another Extra"},
		Record{Code: "02", ID: "d", Name: "#10a Climax"},
		Record{Code: "05", ID: "b", Name: "#1 Intro"},
	)

	want := []Record{
		{Code: "05", ID: "b", Name: "#1 Intro"},
		{Code: "01", ID: "a", Name: "#2 Next"},
		{Code: "02", ID: "d", Name: "#10a Climax"},
		{Code: "00", ID: "c", Name: "#10b Finale"},
		// unnumbered names tie on key and fall back to code order
		{Code: "03", ID: "f", Name: "Another Extra"},
		{Code: "04", ID: "e", Name: "Bonus Content"},
	}
	if diff := cmp.Diff(want, m.Records()); diff != "" {
		t.Errorf("Records() mismatch (-want +got):\n%s", diff)
	}
}

func TestMappingClone(t *testing.T) {
	m := mustMapping(t, Record{Code: "00", ID: "a", Name: "#1"})
	c := m.Clone()
	require.NoError(t, c.Add(Record{Code: "01", ID: "b", Name: "#2"}))
	c.rename("a", "#1 renamed")

	assert.Equal(t, 1, m.Len())
	r, _ := m.Get("a")
	assert.Equal(t, "#1", r.Name)
	_, ok := m.ByCode("01")
	assert.False(t, ok)
}
