// Package playlist provides commands that convert between episode ids and
// the compact playlist strings used in share links.
package playlist

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/catein/episodemap/internal/appcontext"
	"github.com/catein/episodemap/internal/cmd/output"
	"github.com/catein/episodemap/internal/cmd/table"
	"github.com/catein/episodemap/pkg/episodes"
)

// shareParam is the query parameter holding an encoded playlist in share links.
const shareParam = "e"

// NewCommand creates the playlist command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "playlist",
		GroupID: "query",
		Short:   "Encode or decode shared playlists",
		Long: `A playlist string lists episodes separated by dots. Episodes with a short
code are written as the code; anything else is written as its full id.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newEncodeCommand(app))
	cmd.AddCommand(newDecodeCommand(app))

	return cmd
}

// Encoded is the machine readable result of playlist encode.
type Encoded struct {
	Playlist string `json:"playlist" yaml:"playlist"`
	Count    int    `json:"count" yaml:"count"`
}

func newEncodeCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "encode ID...",
		Short: "Turn episode ids into a playlist string",
		Example: `  episodemap playlist encode a3J4W000001AbcdEFG a3J4W000001HijkLMN
  episodemap playlist encode a3J4W000001AbcdEFG,a3J4W000001HijkLMN`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.Mapping()
			if err != nil {
				return err
			}

			ids := splitIDs(args)
			encoded := episodes.EncodePlaylist(m, ids)

			format := output.Format(app.OutputFormat())
			if format == output.FormatTable {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), encoded)
				return err
			}
			return output.Write(cmd.OutOrStdout(), format, Encoded{Playlist: encoded, Count: len(ids)}, nil)
		},
	}
}

func newDecodeCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "decode PLAYLIST",
		Short: "Turn a playlist string or share link back into episode ids",
		Example: `  episodemap playlist decode 0a.0b.a3J4W000001AbcdEFG
  episodemap playlist decode "https://example.com/?e=0a.0b"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.Mapping()
			if err != nil {
				return err
			}

			decoded := episodes.DecodePlaylist(m, playlistParam(args[0]))
			if len(decoded.Unresolved) > 0 {
				app.Logger().Warn().Strs("parts", decoded.Unresolved).Msg("Unresolved playlist entries")
			}

			tableData := table.PlaylistToTableData(m, decoded)
			return output.Write(cmd.OutOrStdout(), output.Format(app.OutputFormat()), decoded, &tableData)
		},
	}
}

// splitIDs accepts ids as separate arguments, comma separated, or both.
func splitIDs(args []string) []string {
	var ids []string
	for _, arg := range args {
		for _, id := range strings.Split(arg, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// playlistParam extracts the playlist from a share link, or returns s as is.
func playlistParam(s string) string {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "?") {
		return s
	}
	u, err := url.Parse(s)
	if err != nil {
		return s
	}
	if e := u.Query().Get(shareParam); e != "" {
		return e
	}
	return s
}
