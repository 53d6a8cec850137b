// Package sync provides the sync command, which fetches the content catalog
// and merges it into the mapping file.
package sync

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/catein/episodemap/internal/appcontext"
	"github.com/catein/episodemap/internal/cmd/output"
	"github.com/catein/episodemap/internal/cmd/table"
	"github.com/catein/episodemap/pkg/errors"
	catalogsync "github.com/catein/episodemap/pkg/sync"
)

// NewCommand creates the sync command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "sync TOKEN",
		GroupID: "core",
		Short:   "Fetch the catalog and assign short codes to new episodes",
		Long: `Sync fetches every configured category from the content API, merges the
results into the mapping file and assigns short codes to episodes seen for
the first time. Existing codes are never changed; renamed episodes keep
their code.

TOKEN is the bearer token of a signed-in session. The "Bearer " prefix is
optional. If any category fails to fetch, the mapping file is left as is.`,
		Example: `  episodemap sync eyJhbGciOi...          # Update episode_names.txt
  episodemap sync "Bearer eyJ..." --dry-run  # Show what would change
  episodemap sync TOKEN -f data/names.txt -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token := strings.TrimSpace(args[0])
			if token == "" {
				return errors.ErrTokenRequired
			}

			fetcher, err := app.Fetcher(token)
			if err != nil {
				return err
			}

			opts := append(app.SyncOptions(), catalogsync.WithDryRun(dryRun))
			result, err := catalogsync.Run(cmd.Context(), fetcher, app.Store(), opts...)
			if err != nil {
				return err
			}

			format := output.Format(app.OutputFormat())
			tableData := table.SyncResultToTableData(result)
			if err := output.Write(cmd.OutOrStdout(), format, result, &tableData); err != nil {
				return err
			}
			if format == output.FormatTable {
				fmt.Fprintln(cmd.OutOrStdout(), result.Summary())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "fetch and merge without writing the mapping file")

	return cmd
}
