package episodes

import (
	"slices"
	"strings"

	"github.com/catein/episodemap/pkg/errors"
)

// MergeResult describes what a merge changed.
type MergeResult struct {
	Added     []Record `json:"added" yaml:"added"`
	Renamed   []Record `json:"renamed" yaml:"renamed"`
	Unchanged int      `json:"unchanged" yaml:"unchanged"`
	Ignored   int      `json:"ignored" yaml:"ignored"` // batch entries without an ID
}

// Merge folds a fresh batch into existing and returns the merged mapping.
//
// Known IDs keep their short code and take the batch's name. Unknown IDs are
// sorted by the key of their name (ties by ID) and given the lowest free
// codes in that order. If the batch holds more unknown IDs than free codes,
// Merge returns an ExhaustedError and assigns nothing. Entries with a blank
// ID are ignored and counted. existing is never modified.
func Merge(existing *Mapping, batch Batch) (*Mapping, MergeResult, error) {
	merged := existing.Clone()
	var result MergeResult

	var fresh []Item
	for id, name := range batch {
		if strings.TrimSpace(id) == "" {
			result.Ignored++
			continue
		}
		prev, known := merged.Get(id)
		if !known {
			fresh = append(fresh, Item{ID: id, Name: name})
			continue
		}
		if prev.Name == name {
			result.Unchanged++
			continue
		}
		r, _ := merged.rename(id, name)
		result.Renamed = append(result.Renamed, r)
	}
	slices.SortFunc(result.Renamed, compareRecords)

	alloc := NewAllocator(merged)
	if len(fresh) > alloc.Free() {
		return nil, MergeResult{}, errors.NewExhaustedError(len(fresh), alloc.Free())
	}

	slices.SortFunc(fresh, func(a, b Item) int {
		if c := ExtractKey(a.Name).Compare(ExtractKey(b.Name)); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	for _, item := range fresh {
		code, err := alloc.Next()
		if err != nil {
			return nil, MergeResult{}, err
		}
		r := Record{Code: code, ID: item.ID, Name: item.Name}
		if err := merged.Add(r); err != nil {
			return nil, MergeResult{}, err
		}
		result.Added = append(result.Added, r)
	}

	return merged, result, nil
}
