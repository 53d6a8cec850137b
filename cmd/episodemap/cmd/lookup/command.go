// Package lookup provides the lookup command.
package lookup

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/catein/episodemap/internal/appcontext"
	"github.com/catein/episodemap/internal/cmd/output"
	"github.com/catein/episodemap/internal/cmd/table"
	"github.com/catein/episodemap/pkg/episodes"
	"github.com/catein/episodemap/pkg/errors"
)

// NewCommand creates the lookup command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "lookup KEY...",
		GroupID: "query",
		Short:   "Resolve short codes or episode ids",
		Long: `Lookup resolves each KEY as a short code first and as an episode id
otherwise. Keys that match nothing are reported after the results.`,
		Example: `  episodemap lookup 0a
  episodemap lookup 0a 1B a3J4W000001AbcdEFG`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.Mapping()
			if err != nil {
				return err
			}

			found := make([]episodes.Record, 0, len(args))
			var missing []string
			for _, key := range args {
				r, err := m.Lookup(strings.TrimSpace(key))
				if err != nil {
					if errors.IsNotFound(err) {
						missing = append(missing, key)
						continue
					}
					return err
				}
				found = append(found, r)
			}

			if len(found) > 0 {
				tableData := table.RecordsToTableData(found)
				if err := output.Write(cmd.OutOrStdout(), output.Format(app.OutputFormat()), found, &tableData); err != nil {
					return err
				}
			}
			if len(missing) > 0 {
				return errors.NewNotFoundError("episode", strings.Join(missing, ", "))
			}
			return nil
		},
	}
}
