// Package search provides the search command.
package search

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/catein/episodemap/internal/appcontext"
	"github.com/catein/episodemap/internal/cmd/output"
	"github.com/catein/episodemap/internal/cmd/table"
	"github.com/catein/episodemap/pkg/constants"
	"github.com/catein/episodemap/pkg/episodes"
)

// NewCommand creates the search command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "search QUERY",
		GroupID: "query",
		Short:   "Find episodes by name",
		Long: `Search matches QUERY against episode names, ignoring case. Results are
ranked by where in the name the match starts.`,
		Example: `  episodemap search whit
  episodemap search "the case of" --limit 5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.Mapping()
			if err != nil {
				return err
			}

			results := episodes.Search(m, strings.Join(args, " "), limit)
			if results == nil {
				results = []episodes.Record{}
			}
			app.Logger().Debug().Int("results", len(results)).Msg("Search complete")

			tableData := table.RecordsToTableData(results)
			return output.Write(cmd.OutOrStdout(), output.Format(app.OutputFormat()), results, &tableData)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", constants.DefaultSearchLimit, "maximum number of results (0 for all)")

	return cmd
}
