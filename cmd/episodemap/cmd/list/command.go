// Package list provides the list command.
package list

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/catein/episodemap/internal/appcontext"
	"github.com/catein/episodemap/internal/cmd/output"
	"github.com/catein/episodemap/internal/cmd/table"
	"github.com/catein/episodemap/pkg/episodes"
)

// NewCommand creates the list command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		GroupID: "core",
		Short:   "Print the mapping file",
		Long: `List prints every mapping record (code, episode id, name) in file order:
numbered episodes first, by number and part letter, then everything else.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := app.Mapping()
			if err != nil {
				return err
			}

			records := m.Records()
			format := output.Format(app.OutputFormat())
			tableData := table.RecordsToTableData(records)
			if err := output.Write(cmd.OutOrStdout(), format, records, &tableData); err != nil {
				return err
			}

			if format == output.FormatTable {
				fmt.Fprintf(cmd.OutOrStdout(), "%d episodes", len(records))
				if highest := episodes.MaxEpisodeNumber(m); highest > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), ", highest #%d", highest)
				}
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
