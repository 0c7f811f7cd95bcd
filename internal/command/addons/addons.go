// Package addons implements the addons command chain.
package addons

import (
	"github.com/spf13/cobra"

	"github.com/superfly/herokuctl/internal/command"
)

// New initializes and returns a new addons Command.
func New() *cobra.Command {
	const (
		short = "Work with add-ons"
		long  = "Commands for working with the add-ons of your apps."
	)

	cmd := command.New("addons", short, long, nil)

	cmd.AddCommand(
		newOpen(),
	)

	return cmd
}

// NewOpenAlias returns the open command under its topic:command name,
// addons:open.
func NewOpenAlias() *cobra.Command {
	cmd := newOpen()
	cmd.Use = "addons:open <addon>"
	cmd.Hidden = true

	return cmd
}
