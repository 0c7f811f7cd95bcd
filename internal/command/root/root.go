// Package root implements the root command.
package root

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/superfly/herokuctl/internal/command"
	"github.com/superfly/herokuctl/internal/command/addons"
	"github.com/superfly/herokuctl/internal/command/version"
	"github.com/superfly/herokuctl/internal/flag"
)

// New initializes and returns a reference to a new root command.
func New() *cobra.Command {
	const short = "A command line client for the Heroku platform"

	long := heredoc.Doc(`
		herokuctl is a command line client for the Heroku platform API.

		* Open an add-on's dashboard with the addons open command
	`)

	root := command.New("herokuctl", short, long, nil)
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
	}

	flag.Add(root,
		flag.APIKey(),
		flag.Verbose(),
	)

	root.AddCommand(
		version.New(),
		addons.New(),
		addons.NewOpenAlias(),
	)

	return root
}
