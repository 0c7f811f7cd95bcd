package addons

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/superfly/herokuctl/iostreams"

	"github.com/superfly/herokuctl/internal/addons"
	"github.com/superfly/herokuctl/internal/command"
	"github.com/superfly/herokuctl/internal/config"
	"github.com/superfly/herokuctl/internal/flag"
	"github.com/superfly/herokuctl/internal/platform"
	"github.com/superfly/herokuctl/internal/state"
)

func newOpen() *cobra.Command {
	const (
		short = "Open an add-on's dashboard in your browser"
		usage = "open <addon>"
	)

	long := heredoc.Doc(`
		Open an add-on's dashboard in your browser.

		The add-on may be named by its name, by the name of one of its
		attachments or, qualified with its service, as SERVICE::NAME
		(e.g. heroku-redis::redis-123). Unqualified names are looked up in
		the app given by --app, HEROKU_APP or the git remote first.

		With HEROKU_SUDO set the dashboard is opened via single sign-on
		instead.
	`)

	cmd := command.New(usage, short, long, runOpen,
		command.RequireSession,
		command.LoadAppName,
	)

	cmd.Args = cobra.ExactArgs(1)

	flag.Add(cmd,
		flag.App(),
		flag.Remote(),
	)

	return cmd
}

func runOpen(ctx context.Context) error {
	io := iostreams.FromContext(ctx)

	opener := &addons.Opener{
		API:     platform.FromContext(ctx),
		Browser: addons.NewSystemBrowser(io),
	}

	return open(ctx, opener)
}

func open(ctx context.Context, opener *addons.Opener) error {
	var (
		io  = iostreams.FromContext(ctx)
		cfg = config.FromContext(ctx)
		app = state.AppName(ctx)
		id  = flag.FirstArg(ctx)
	)

	mode := addons.ModeResolve
	if cfg.Sudo {
		mode = addons.ModeSSO
	}

	io.StartProgressIndicatorMsg(fmt.Sprintf("Looking up %s", id))
	defer io.StopProgressIndicator()

	opener.Browser = &quietBrowser{Browser: opener.Browser, io: io}

	return opener.Open(ctx, mode, app, id)
}

// quietBrowser stops the progress indicator before handing off to Browser.
type quietBrowser struct {
	addons.Browser
	io *iostreams.IOStreams
}

func (b *quietBrowser) Open(ctx context.Context, url string) error {
	b.io.StopProgressIndicator()

	return b.Browser.Open(ctx, url)
}
