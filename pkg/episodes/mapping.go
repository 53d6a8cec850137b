package episodes

import (
	"slices"

	"github.com/catein/episodemap/pkg/errors"
)

// Item is an episode as reported by the content API.
type Item struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Batch maps episode IDs to display names for one fetch.
type Batch map[string]string

// Record is one line of the mapping file.
type Record struct {
	Code ShortCode `json:"code" yaml:"code"`
	ID   string    `json:"id" yaml:"id"`
	Name string    `json:"name" yaml:"name"`
}

// Key returns the ordering key of the record's current name.
func (r Record) Key() Key {
	return ExtractKey(r.Name)
}

// Mapping is the set of records keyed uniquely by episode ID,
// with every short code held by at most one record.
type Mapping struct {
	byID   map[string]Record
	byCode map[ShortCode]string
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{
		byID:   make(map[string]Record),
		byCode: make(map[ShortCode]string),
	}
}

// NewMappingFromRecords builds a mapping, rejecting duplicate IDs or codes.
func NewMappingFromRecords(records ...Record) (*Mapping, error) {
	m := NewMapping()
	for _, r := range records {
		if err := m.Add(r); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Add inserts a new record. The ID and the code must both be unused.
func (m *Mapping) Add(r Record) error {
	if r.ID == "" {
		return errors.NewValidationError("id", r.ID, "episode ID is empty")
	}
	if !r.Code.Valid() {
		return errors.NewValidationError("code", string(r.Code), "invalid short code")
	}
	if _, exists := m.byID[r.ID]; exists {
		return errors.NewValidationError("id", r.ID, "episode ID already mapped")
	}
	if owner, taken := m.byCode[r.Code]; taken {
		return errors.NewValidationError("code", string(r.Code), "short code already held by "+owner)
	}
	m.byID[r.ID] = r
	m.byCode[r.Code] = r.ID
	return nil
}

// remove deletes the record for id and frees its code.
func (m *Mapping) remove(id string) {
	r, ok := m.byID[id]
	if !ok {
		return
	}
	delete(m.byID, id)
	delete(m.byCode, r.Code)
}

// rename replaces the display name of an existing record, keeping its code.
func (m *Mapping) rename(id, name string) (Record, bool) {
	r, ok := m.byID[id]
	if !ok {
		return Record{}, false
	}
	r.Name = name
	m.byID[id] = r
	return r, true
}

// Get returns the record for an episode ID.
func (m *Mapping) Get(id string) (Record, bool) {
	r, ok := m.byID[id]
	return r, ok
}

// ByCode returns the record holding a short code.
func (m *Mapping) ByCode(code ShortCode) (Record, bool) {
	id, ok := m.byCode[code]
	if !ok {
		return Record{}, false
	}
	return m.byID[id], true
}

// Lookup resolves a key that is either a short code or an episode ID.
// Short codes win when a two-character ID happens to collide with one.
func (m *Mapping) Lookup(key string) (Record, error) {
	if r, ok := m.ByCode(ShortCode(key)); ok {
		return r, nil
	}
	if r, ok := m.Get(key); ok {
		return r, nil
	}
	return Record{}, errors.NewNotFoundError("episode", key)
}

// Len returns the number of records.
func (m *Mapping) Len() int {
	return len(m.byID)
}

// Records returns every record ordered by the key of its name,
// ties broken by short code so the order is deterministic.
func (m *Mapping) Records() []Record {
	records := make([]Record, 0, len(m.byID))
	for _, r := range m.byID {
		records = append(records, r)
	}
	slices.SortFunc(records, compareRecords)
	return records
}

// Clone returns an independent copy of the mapping.
func (m *Mapping) Clone() *Mapping {
	c := &Mapping{
		byID:   make(map[string]Record, len(m.byID)),
		byCode: make(map[ShortCode]string, len(m.byCode)),
	}
	for id, r := range m.byID {
		c.byID[id] = r
	}
	for code, id := range m.byCode {
		c.byCode[code] = id
	}
	return c
}

func compareRecords(a, b Record) int {
	if c := a.Key().Compare(b.Key()); c != 0 {
		return c
	}
	av, _ := a.Code.Value()
	bv, _ := b.Code.Value()
	return av - bv
}
