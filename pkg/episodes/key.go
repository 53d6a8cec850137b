package episodes

import (
	"regexp"
	"strconv"

	"github.com/catein/episodemap/pkg/constants"
)

// episodeNumberPattern matches "#12" or "#12b" at the very start of a name.
var episodeNumberPattern = regexp.MustCompile(`^#([0-9]+)([a-z]?)`)

// Key orders episodes by their "#<number><letter>" prefix.
// It is used only for sorting, never for identity.
type Key struct {
	Number int
	Suffix int // character code of the trailing letter, 0 if none
}

// Unnumbered is the key of every name without a "#<number>" prefix.
var Unnumbered = Key{Number: constants.UnnumberedEpisode}

// ExtractKey returns the ordering key of an episode name.
// "#10b Finale" yields {10, 'b'}; names without the prefix yield Unnumbered.
func ExtractKey(name string) Key {
	m := episodeNumberPattern.FindStringSubmatch(name)
	if m == nil {
		return Unnumbered
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return Unnumbered
	}

	key := Key{Number: n}
	if m[2] != "" {
		key.Suffix = int(m[2][0])
	}
	return key
}

// Compare returns -1, 0 or +1 depending on whether k sorts before, with, or after other.
func (k Key) Compare(other Key) int {
	switch {
	case k.Number < other.Number:
		return -1
	case k.Number > other.Number:
		return 1
	case k.Suffix < other.Suffix:
		return -1
	case k.Suffix > other.Suffix:
		return 1
	}
	return 0
}

// Less reports whether k sorts before other.
func (k Key) Less(other Key) bool {
	return k.Compare(other) < 0
}

// String renders the key the way it appears in a name, e.g. "#10b".
func (k Key) String() string {
	if k == Unnumbered {
		return "-"
	}
	s := "#" + strconv.Itoa(k.Number)
	if k.Suffix != 0 {
		s += string(rune(k.Suffix))
	}
	return s
}

// maxNumberPattern finds "#<number>:" anywhere in a name.
var maxNumberPattern = regexp.MustCompile(`#([0-9]+):`)

// MaxEpisodeNumber returns the highest "#N:" episode number in the mapping,
// or 0 when no name carries one.
func MaxEpisodeNumber(m *Mapping) int {
	highest := 0
	for _, r := range m.byID {
		match := maxNumberPattern.FindStringSubmatch(r.Name)
		if match == nil {
			continue
		}
		if n, err := strconv.Atoi(match[1]); err == nil && n > highest {
			highest = n
		}
	}
	return highest
}
