package table

import (
	"strconv"

	"github.com/catein/episodemap/pkg/episodes"
	"github.com/catein/episodemap/pkg/sync"
)

// RecordsToTableData converts mapping records to table format.
func RecordsToTableData(records []episodes.Record) Data {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{string(r.Code), r.ID, r.Name})
	}
	return Data{
		Headers:         []string{"Code", "ID", "Name"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignLeft},
	}
}

// SyncResultToTableData converts a sync result to a two column summary.
func SyncResultToTableData(r *sync.Result) Data {
	rows := make([][]string, 0, len(r.Categories)+8)
	for _, c := range r.Categories {
		rows = append(rows, []string{"Fetched " + c.Name, strconv.Itoa(c.Fetched)})
	}
	rows = append(rows,
		[]string{"Combined", strconv.Itoa(r.Combined)},
		[]string{"Added", strconv.Itoa(len(r.Added))},
		[]string{"Renamed", strconv.Itoa(len(r.Renamed))},
		[]string{"Unchanged", strconv.Itoa(r.Unchanged)},
	)
	if r.Ignored > 0 {
		rows = append(rows, []string{"Ignored Items", strconv.Itoa(r.Ignored)})
	}
	if r.Load.Skipped > 0 {
		rows = append(rows, []string{"Skipped Lines", strconv.Itoa(r.Load.Skipped)})
	}
	rows = append(rows,
		[]string{"Total", strconv.Itoa(r.Total)},
		[]string{"Mapping File", r.MappingFile},
		[]string{"Dry Run", strconv.FormatBool(r.DryRun)},
	)
	return Data{
		Headers:         []string{"Metric", "Value"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
}

// PlaylistToTableData lists decoded playlist entries with their names when known.
func PlaylistToTableData(m *episodes.Mapping, p episodes.DecodedPlaylist) Data {
	rows := make([][]string, 0, len(p.IDs)+len(p.Unresolved))
	for i, id := range p.IDs {
		code, name := "", ""
		if r, ok := m.Get(id); ok {
			code, name = string(r.Code), r.Name
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), code, id, name})
	}
	for _, part := range p.Unresolved {
		rows = append(rows, []string{"-", part, "", "(unresolved)"})
	}
	return Data{
		Headers:         []string{"#", "Code", "ID", "Name"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignLeft, AlignLeft, AlignLeft},
	}
}
