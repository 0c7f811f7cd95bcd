// Package version implements the version command.
package version

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/superfly/herokuctl/iostreams"

	"github.com/superfly/herokuctl/internal/buildinfo"
	"github.com/superfly/herokuctl/internal/command"
	"github.com/superfly/herokuctl/internal/flag"
	"github.com/superfly/herokuctl/internal/flag/flagnames"
)

func New() *cobra.Command {
	const short = "Print the herokuctl version"

	long := heredoc.Doc(`
		Print the version, commit, build date and platform of this herokuctl
		binary. Pass --json for machine readable output.
	`)

	cmd := command.New("version", short, long, run)
	cmd.Args = cobra.NoArgs

	flag.Add(cmd, flag.JSONOutput())

	return cmd
}

func run(ctx context.Context) error {
	out := iostreams.FromContext(ctx).Out
	info := buildinfo.Info()

	if !flag.GetBool(ctx, flagnames.JSONOutput) {
		_, err := fmt.Fprintln(out, info)

		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	return enc.Encode(info)
}
