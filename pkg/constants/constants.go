// Package constants provides shared constants used throughout the episodemap codebase.
// This includes timeouts, file permissions, page sizes and the bounds of the
// short code address space.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for a single content API request
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultRequestDelay is the pause between consecutive page requests
	DefaultRequestDelay = 500 * time.Millisecond
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Content API defaults
const (
	// DefaultAPIURL is the content grouping search endpoint
	DefaultAPIURL = "https://fotf.my.site.com/aio/services/apexrest/v1/contentgrouping/search"

	// DefaultCommunity is sent with every search request
	DefaultCommunity = "Adventures in Odyssey"

	// DefaultExperienceName is sent as the x-experience-name header
	DefaultExperienceName = "Adventures In Odyssey"

	// DefaultViewerID is sent as the x-viewer-id header. Club content depends
	// on the viewer, so most users should configure their own.
	DefaultViewerID = "a3J4W000002wGlvUAE"

	// DefaultPageSize is used for categories without an explicit page size
	DefaultPageSize = 500

	// CategoryEpisodeHome is the category holding regular episodes
	CategoryEpisodeHome = "Episode Home"

	// CategoryAlbum is the category holding album episodes
	CategoryAlbum = "Album"

	// EpisodeHomePageSize is the page size for CategoryEpisodeHome
	EpisodeHomePageSize = 500

	// AlbumPageSize is the page size for CategoryAlbum
	AlbumPageSize = 2000
)

// Mapping file constants
const (
	// DefaultMappingFile is the mapping file written when none is configured
	DefaultMappingFile = "episode_names.txt"

	// ShortCodeAlphabet lists the base-62 symbols in value order
	ShortCodeAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// ShortCodeSpace is the number of distinct two-symbol short codes (62*62)
	ShortCodeSpace = 62 * 62

	// UnnumberedEpisode is the ordering number given to names without a "#N" prefix
	UnnumberedEpisode = 99999

	// RawIDPrefix marks an untranslated episode ID inside an encoded playlist
	RawIDPrefix = "a3"

	// DefaultSearchLimit caps the number of search results
	DefaultSearchLimit = 15
)
