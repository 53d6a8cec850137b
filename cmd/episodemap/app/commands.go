package app

import (
	"github.com/spf13/cobra"

	"github.com/catein/episodemap/cmd/episodemap/cmd/list"
	"github.com/catein/episodemap/cmd/episodemap/cmd/lookup"
	"github.com/catein/episodemap/cmd/episodemap/cmd/playlist"
	"github.com/catein/episodemap/cmd/episodemap/cmd/search"
	synccmd "github.com/catein/episodemap/cmd/episodemap/cmd/sync"
	"github.com/catein/episodemap/cmd/episodemap/cmd/version"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(synccmd.NewCommand(a))
	rootCmd.AddCommand(list.NewCommand(a))

	// Query commands
	rootCmd.AddCommand(lookup.NewCommand(a))
	rootCmd.AddCommand(search.NewCommand(a))
	rootCmd.AddCommand(playlist.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(version.NewCommand(a))
}
