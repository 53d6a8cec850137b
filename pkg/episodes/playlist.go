package episodes

import (
	"strings"

	"github.com/catein/episodemap/pkg/constants"
)

// playlistSeparator joins entries in a shared playlist string.
const playlistSeparator = "."

// EncodePlaylist renders episode IDs as a shareable string, replacing each
// mapped ID with its short code. Unmapped IDs are kept verbatim.
func EncodePlaylist(m *Mapping, ids []string) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		if r, ok := m.Get(id); ok {
			parts = append(parts, string(r.Code))
			continue
		}
		parts = append(parts, id)
	}
	return strings.Join(parts, playlistSeparator)
}

// DecodedPlaylist is the result of DecodePlaylist.
type DecodedPlaylist struct {
	IDs        []string `json:"ids" yaml:"ids"`
	Unresolved []string `json:"unresolved,omitempty" yaml:"unresolved,omitempty"`
}

// DecodePlaylist reverses EncodePlaylist. Parts that are not known short
// codes pass through when they look like raw episode IDs and are reported
// as unresolved otherwise. Order and duplicates are preserved.
func DecodePlaylist(m *Mapping, encoded string) DecodedPlaylist {
	var out DecodedPlaylist
	if strings.TrimSpace(encoded) == "" {
		return out
	}

	for _, part := range strings.Split(encoded, playlistSeparator) {
		part = strings.TrimSpace(part)
		if r, ok := m.ByCode(ShortCode(part)); ok {
			out.IDs = append(out.IDs, r.ID)
			continue
		}
		if strings.HasPrefix(part, constants.RawIDPrefix) {
			out.IDs = append(out.IDs, part)
			continue
		}
		out.Unresolved = append(out.Unresolved, part)
	}
	return out
}
