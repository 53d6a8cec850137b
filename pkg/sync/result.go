package sync

import (
	"fmt"
	"strings"

	"github.com/catein/episodemap/pkg/episodes"
)

// Result represents the complete result of a sync run.
type Result struct {
	RunID       string `json:"run_id" yaml:"run_id"`
	MappingFile string `json:"mapping_file" yaml:"mapping_file"`
	DryRun      bool   `json:"dry_run" yaml:"dry_run"`

	// Fetch statistics
	Categories []CategoryResult `json:"categories" yaml:"categories"`
	Combined   int              `json:"combined" yaml:"combined"` // Unique items across all categories

	// Merge statistics
	Added     []episodes.Record `json:"added" yaml:"added"`
	Renamed   []episodes.Record `json:"renamed" yaml:"renamed"`
	Unchanged int               `json:"unchanged" yaml:"unchanged"`
	Ignored   int               `json:"ignored" yaml:"ignored"` // Fetched items without an ID
	Total     int               `json:"total" yaml:"total"` // Records in the merged mapping

	// Existing file statistics
	Load episodes.LoadStats `json:"load" yaml:"load"`
}

// CategoryResult is the outcome of fetching one category.
type CategoryResult struct {
	Name    string `json:"name" yaml:"name"`
	Fetched int    `json:"fetched" yaml:"fetched"`
}

// HasChanges returns true if the merge added or renamed anything.
func (r *Result) HasChanges() bool {
	return len(r.Added) > 0 || len(r.Renamed) > 0
}

// Summary returns a human-readable summary of the sync result.
func (r *Result) Summary() string {
	var b strings.Builder
	if r.HasChanges() {
		fmt.Fprintf(&b, "%d added, %d renamed", len(r.Added), len(r.Renamed))
	} else {
		b.WriteString("No changes detected")
	}
	fmt.Fprintf(&b, "; %d episodes in %s", r.Total, r.MappingFile)
	if r.DryRun {
		b.WriteString(" (dry run)")
	}
	return b.String()
}
